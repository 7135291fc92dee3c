package harlog

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// json keeps numbers as literals so integers and reals can be told apart.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// ErrMalformedInput is returned when the document is not valid JSON or lacks
// a structure every HAR entry must have.
var ErrMalformedInput = errors.New("malformed HAR input")

// Document is a decoded HAR log.
type Document struct {
	root    Value
	entries []Entry
}

// Entry is one recorded HTTP transaction, log.entries[Index].
type Entry struct {
	Index int
	node  Value
}

// Parse decodes a whole HAR document held in memory. Anything but
// whitespace after the top-level value is malformed.
func Parse(data []byte) (*Document, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "decode json: %v", err)
	}
	root := NewValue(raw)
	if root.Kind() != Object {
		return nil, errors.Wrapf(ErrMalformedInput, "document is %s, not an object", root.Kind())
	}
	log := root.Get("log")
	if log.Kind() != Object {
		return nil, errors.Wrap(ErrMalformedInput, "missing log object")
	}
	list := log.Get("entries")
	if list.Kind() != Array {
		return nil, errors.Wrap(ErrMalformedInput, "missing log.entries array")
	}
	doc := &Document{root: root, entries: make([]Entry, 0, list.Len())}
	for i := 0; i < list.Len(); i++ {
		node := list.Index(i)
		if node.Kind() != Object {
			return nil, errors.Wrapf(ErrMalformedInput, "entry %d is %s, not an object", i, node.Kind())
		}
		doc.entries = append(doc.entries, Entry{Index: i, node: node})
	}
	return doc, nil
}

// Decode reads r to the end and parses it.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read HAR")
	}
	return Parse(data)
}

func (d *Document) Entries() []Entry { return d.entries }

// Creator returns log.creator.name, empty when the producer did not say.
func (d *Document) Creator() string {
	return ExtractScalar(d.root.Get("log").Get("creator"), "name")
}

// Version returns log.version.
func (d *Document) Version() string {
	return ExtractScalar(d.root.Get("log"), "version")
}

func (e Entry) Node() Value { return e.node }

func (e Entry) Request() (Value, error) { return e.required(e.node, "request") }

func (e Entry) Response() (Value, error) { return e.required(e.node, "response") }

func (e Entry) Timings() (Value, error) { return e.required(e.node, "timings") }

// Content returns response.content.
func (e Entry) Content() (Value, error) {
	resp, err := e.Response()
	if err != nil {
		return Value{}, err
	}
	return e.required(resp, "content")
}

// Headers returns request.headers; a missing list is returned as Absent.
func (e Entry) Headers() (Value, error) {
	req, err := e.Request()
	if err != nil {
		return Value{}, err
	}
	return req.Get("headers"), nil
}

func (e Entry) required(parent Value, key string) (Value, error) {
	v := parent.Get(key)
	if v.Kind() != Object {
		return Value{}, errors.Wrapf(ErrMalformedInput, "entry %d: missing %s", e.Index, key)
	}
	return v, nil
}
