package flickr

import (
	"fmt"
	"strconv"
)

// Response is a decoded payload with the status field removed. Leaves are
// strings, nested elements are map[string]any and repeated elements []any.
type Response map[string]any

// APIError is a failure reported by the service itself.
type APIError struct {
	Method  string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: flickr error %s: %s", e.Method, e.Code, e.Message)
}

func checkStatus(method string, decoded map[string]any) (Response, error) {
	switch stat := Text(decoded["stat"]); stat {
	case "ok":
		resp := make(Response, len(decoded))
		for k, v := range decoded {
			if k != "stat" {
				resp[k] = v
			}
		}
		return resp, nil
	case "fail":
		apiErr := &APIError{Method: method}
		if e := rowOf(decoded["err"]); e != nil {
			apiErr.Code = Text(e["code"])
			apiErr.Message = Text(e["msg"])
		} else {
			apiErr.Code = Text(decoded["code"])
			apiErr.Message = Text(decoded["message"])
		}
		return nil, apiErr
	default:
		return nil, fmt.Errorf("%s: unexpected response status %q", method, stat)
	}
}

// CoerceToList collapses the one-or-many ambiguity of decoded responses: nil
// and "" (an empty element) become an empty list, a list is returned as is and
// anything else is wrapped in a one-element list.
func CoerceToList(v any) []any {
	switch v := v.(type) {
	case nil:
		return []any{}
	case string:
		if v == "" {
			return []any{}
		}
		return []any{v}
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i, row := range v {
			out[i] = row
		}
		return out
	default:
		return []any{v}
	}
}

// Rows returns the mappings in CoerceToList(v), skipping any other values.
func Rows(v any) []map[string]any {
	var rows []map[string]any
	for _, item := range CoerceToList(v) {
		if row := rowOf(item); row != nil {
			rows = append(rows, row)
		}
	}
	return rows
}

// Dig follows path through nested mappings, returning nil when any step is
// missing.
func Dig(v any, path ...string) any {
	for _, key := range path {
		row := rowOf(v)
		if row == nil {
			return nil
		}
		v = row[key]
	}
	return v
}

// Text returns the text content of a decoded value. Elements carrying both
// attributes and text keep the text under "content".
func Text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		return Text(v["content"])
	case Response:
		return Text(v["content"])
	case []any:
		if len(v) == 0 {
			return ""
		}
		return Text(v[0])
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func rowOf(v any) map[string]any {
	switch v := v.(type) {
	case map[string]any:
		return v
	case Response:
		return v
	default:
		return nil
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
