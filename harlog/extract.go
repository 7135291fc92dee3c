package harlog

import "strings"

// ExtractScalar returns the text form of node[key]. Missing keys, nulls,
// negative numbers and non-scalar kinds all yield an empty string.
func ExtractScalar(node Value, key string) string {
	return scalarText(node.Get(key))
}

func scalarText(v Value) string {
	switch v.Kind() {
	case Text:
		s, _ := v.Text()
		return s
	case Integer, Real:
		if f, _ := v.Float(); f < 0 {
			return ""
		}
		s, _ := v.NumberText()
		return s
	}
	return ""
}

// ExtractFromNamedList scans a list of {name, value} pairs, such as HAR
// headers, and returns the scalar value of the first entry whose name matches
// case-insensitively.
func ExtractFromNamedList(list Value, name string) string {
	for i := 0; i < list.Len(); i++ {
		pair := list.Index(i)
		n, ok := pair.Get("name").Text()
		if !ok {
			continue
		}
		if strings.EqualFold(n, name) {
			return ExtractScalar(pair, "value")
		}
	}
	return ""
}
