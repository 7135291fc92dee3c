package common

//Field identifies one statistics bucket. Context keeps fields that share a
//name but not a meaning (entry time vs. a timing phase) apart.
type Field struct {
	Context string `json:"context"`
	Name    string `json:"name"`
}

func (f Field) String() string {
	return f.Context + "." + f.Name
}

//Tracked is a field that is reported, with the divisor applied to its values
type Tracked struct {
	Field
	Scale float64
}

var (
	FieldTime = Field{Context: "entry", Name: "time"}
	FieldSize = Field{Context: "content", Name: "size"}

	//declared order of the HAR timing phases
	TimingFields = []Field{
		{Context: "timings", Name: "wait"},
		{Context: "timings", Name: "receive"},
		{Context: "timings", Name: "blocked"},
		{Context: "timings", Name: "send"},
		{Context: "timings", Name: "dns"},
		{Context: "timings", Name: "connect"},
		{Context: "timings", Name: "ssl"},
	}
)

const (
	ScaleMillis    = 1.0
	ScaleKiloBytes = 1000.0
)

// ReportOrder lists the tracked fields in the order they are reported:
// total time, the timing phases, then content size in kilobytes.
func ReportOrder() []Tracked {
	order := make([]Tracked, 0, len(TimingFields)+2)
	order = append(order, Tracked{Field: FieldTime, Scale: ScaleMillis})
	for _, f := range TimingFields {
		order = append(order, Tracked{Field: f, Scale: ScaleMillis})
	}
	order = append(order, Tracked{Field: FieldSize, Scale: ScaleKiloBytes})
	return order
}
