package flickr

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/clbanning/mxj/v2"
	"strconv"
	"strings"
)

// Decoder turns a raw response body into its top-level envelope mapping, the
// one holding "stat".
type Decoder func(body []byte) (map[string]any, error)

var errMissingEnvelope = errors.New("response has no rsp element")

// DecodeXML decodes a REST (XML) response. Attributes and child elements
// both become keys of the element's mapping, text next to attributes is kept
// under "content" and repeated children become a list.
func DecodeXML(body []byte) (map[string]any, error) {
	m, err := mxj.NewMapXml(bytes.TrimSpace(body))
	if err != nil {
		return nil, err
	}

	var rsp map[string]any
	switch v := m["rsp"].(type) {
	case map[string]any:
		rsp = v
	case mxj.Map:
		rsp = v
	default:
		return nil, errMissingEnvelope
	}

	out, _ := reshapeXML(rsp).(map[string]any)
	return out, nil
}

func reshapeXML(v any) any {
	switch v := v.(type) {
	case mxj.Map:
		return reshapeXML(map[string]any(v))
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			switch {
			case k == "#text":
				k = "content"
			case strings.HasPrefix(k, "-"):
				k = k[1:]
			}
			out[k] = reshapeXML(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = reshapeXML(item)
		}
		return out
	default:
		return v
	}
}

// DecodeJSON decodes a response requested with format=json&nojsoncallback=1
// into the same shape DecodeXML produces: "_content" becomes "content" and
// numbers and booleans become text.
func DecodeJSON(body []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	out, _ := reshapeJSON(m).(map[string]any)
	return out, nil
}

func reshapeJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			if k == "_content" {
				k = "content"
			}
			out[k] = reshapeJSON(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = reshapeJSON(item)
		}
		return out
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return v
	}
}
