package harcsv

import (
	"hartools/common"
	"hartools/harlog"
)

// nodes holds the sub-trees of one entry that columns read from.
type nodes struct {
	entry    harlog.Value
	request  harlog.Value
	headers  harlog.Value
	response harlog.Value
	content  harlog.Value
	timings  harlog.Value
}

func resolve(e harlog.Entry) (*nodes, error) {
	n := &nodes{entry: e.Node()}
	var err error
	if n.request, err = e.Request(); err != nil {
		return nil, err
	}
	if n.response, err = e.Response(); err != nil {
		return nil, err
	}
	if n.content, err = e.Content(); err != nil {
		return nil, err
	}
	if n.timings, err = e.Timings(); err != nil {
		return nil, err
	}
	if n.headers, err = e.Headers(); err != nil {
		return nil, err
	}
	return n, nil
}

type column struct {
	header string
	value  func(n *nodes) string
	// tracked columns feed the aggregator
	track *common.Field
}

func scalar(pick func(n *nodes) harlog.Value, key string) func(n *nodes) string {
	return func(n *nodes) string {
		return harlog.ExtractScalar(pick(n), key)
	}
}

func tracked(f common.Field) *common.Field { return &f }

var columns = buildColumns()

func buildColumns() []column {
	entry := func(n *nodes) harlog.Value { return n.entry }
	request := func(n *nodes) harlog.Value { return n.request }
	response := func(n *nodes) harlog.Value { return n.response }
	content := func(n *nodes) harlog.Value { return n.content }
	timings := func(n *nodes) harlog.Value { return n.timings }

	cols := []column{
		{header: "url", value: scalar(request, "url")},
		{header: "method", value: scalar(request, "method")},
		{header: "startedDateTime", value: scalar(entry, "startedDateTime")},
		{header: "time", value: scalar(entry, "time"), track: tracked(common.FieldTime)},
		{header: "Response status", value: scalar(response, "status")},
		{header: "Response content mimeType", value: scalar(content, "mimeType")},
		{header: "Response content size", value: scalar(content, "size"), track: tracked(common.FieldSize)},
		{header: "Response headersSize", value: scalar(response, "headersSize")},
		{header: "Response bodySize", value: scalar(response, "bodySize")},
		{header: "Referer", value: func(n *nodes) string {
			return harlog.ExtractFromNamedList(n.headers, "Referer")
		}},
	}
	for _, f := range common.TimingFields {
		cols = append(cols, column{
			header: "Timing " + f.Name,
			value:  scalar(timings, f.Name),
			track:  tracked(f),
		})
	}
	return cols
}

// Header returns the column names in output order.
func Header() []string {
	h := make([]string, len(columns))
	for i, c := range columns {
		h[i] = c.header
	}
	return h
}
