package harlog

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Kind is the JSON kind of a decoded Value.
type Kind int

const (
	Absent Kind = iota
	Null
	Text
	Integer
	Real
	Boolean
	Array
	Object
)

var kindNames = [...]string{"absent", "null", "text", "integer", "real", "boolean", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value wraps one node of a decoded HAR document. The zero Value is Absent.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	arr  []interface{}
	obj  map[string]interface{}
}

// NewValue classifies a node produced by a decoder running with UseNumber.
func NewValue(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{kind: Null}
	case string:
		return Value{kind: Text, str: v}
	case bool:
		return Value{kind: Boolean}
	case []interface{}:
		return Value{kind: Array, arr: v}
	case map[string]interface{}:
		return Value{kind: Object, obj: v}
	case float64:
		return Value{kind: Real, f: v}
	case int:
		return Value{kind: Integer, i: int64(v)}
	case int64:
		return Value{kind: Integer, i: v}
	}
	if lit, ok := jsoniter.CastJsonNumber(raw); ok {
		return numberValue(lit)
	}
	return Value{}
}

func numberValue(lit string) Value {
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Value{kind: Integer, i: i}
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// out of range for float64, nothing sensible to render
		return Value{kind: Real, f: -1}
	}
	return Value{kind: Real, f: f}
}

func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether the value is present and not null.
func (v Value) IsSet() bool { return v.kind != Absent && v.kind != Null }

// Get returns the member named key, or an Absent value when v is not an
// object or has no such member.
func (v Value) Get(key string) Value {
	if v.kind != Object {
		return Value{}
	}
	raw, ok := v.obj[key]
	if !ok {
		return Value{}
	}
	return NewValue(raw)
}

// Len is the number of elements of an array, zero for any other kind.
func (v Value) Len() int {
	if v.kind != Array {
		return 0
	}
	return len(v.arr)
}

func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return NewValue(v.arr[i])
}

func (v Value) Text() (string, bool) {
	return v.str, v.kind == Text
}

// Float returns the numeric value of an Integer or Real.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case Integer:
		return float64(v.i), true
	case Real:
		return v.f, true
	}
	return 0, false
}

// NumberText renders an Integer or Real in canonical decimal form.
func (v Value) NumberText() (string, bool) {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.i, 10), true
	case Real:
		f := v.f
		if f == 0 {
			f = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}
