package flickr

import (
	"fmt"
	"reflect"
	"strings"
)

// Params is the argument bag of a remote call. A nil value, typed nils
// included, means the parameter is absent and is never sent or signed.
// Pointers are sent as the value they point to. Other values are sent as
// text: []string is joined with commas, anything else goes through fmt.
type Params map[string]any

func (p Params) encode() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if s, ok := paramValue(v); ok {
			out[k] = s
		}
	}
	return out
}

// With returns a copy of p with other's entries layered on top.
func (p Params) With(other Params) Params {
	out := make(Params, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func paramValue(v any) (string, bool) {
	if v == nil || isNil(reflect.ValueOf(v)) {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case []string:
		return strings.Join(v, ","), true
	case fmt.Stringer:
		return v.String(), true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		return paramValue(rv.Elem().Interface())
	}
	return fmt.Sprint(v), true
}

// isNil reports typed nils: nil pointers, slices, maps and the like.
func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
