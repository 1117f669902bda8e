package content

import (
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Props is the untyped field bag of a CMS entry or content block. Values are
// the generic shapes produced by JSON parsing: string, float64, bool, nil,
// []any and map[string]any.
type Props map[string]any

// Parse decodes raw CMS JSON into its generic representation.
func Parse(data []byte) (any, error) {
	return oj.Parse(data)
}

// String returns the string value for key, or "" when absent or not a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Int returns the numeric value for key truncated to int, or 0.
func (p Props) Int(key string) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// Bool returns the boolean value for key, or false.
func (p Props) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Slice returns the list value for key, or nil.
func (p Props) Slice(key string) []any {
	s, _ := p[key].([]any)
	return s
}

// Map returns the nested object for key as a Props, or nil.
func (p Props) Map(key string) Props {
	m, _ := p[key].(map[string]any)
	return Props(m)
}

// Maps returns the list value for key with every object element converted to
// Props. Non-object elements are skipped.
func (p Props) Maps(key string) []Props {
	var out []Props
	for _, v := range p.Slice(key) {
		if m, ok := v.(map[string]any); ok {
			out = append(out, Props(m))
		}
	}
	return out
}

// Lookup evaluates a JSONPath expression against the props bag and returns
// the first match. It is used for reaching into deeply nested CMS shapes
// (image objects, link wrappers) without intermediate type assertions.
func (p Props) Lookup(path string) (any, bool) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, false
	}
	results := expr.Get(map[string]any(p))
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

// LookupString is Lookup narrowed to string results.
func (p Props) LookupString(path string) string {
	v, ok := p.Lookup(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Merged returns a copy of p overlaid with every entry of extra. Neither
// input is modified.
func (p Props) Merged(extra Props) Props {
	out := make(Props, len(p)+len(extra))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
