package flickr

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const namespace = "flickr"

// MethodName maps a local call name onto the remote method it stands for by
// turning underscores into dots: "photos_getInfo" becomes "photos.getInfo".
func MethodName(name string) string {
	return strings.ReplaceAll(name, "_", ".")
}

func qualify(method string) string {
	if strings.HasPrefix(method, namespace+".") {
		return method
	}
	return namespace + "." + method
}

// requestURL builds the signed GET URL for method. method, api_key and
// auth_token (when held) come first, then the call's own parameters sorted by
// key, then api_sig when the client can sign. A caller's own api_sig is
// ignored.
func (c *Client) requestURL(method string, params Params) string {
	fixed := []string{"method", "api_key"}
	all := Params{
		"method":  qualify(method),
		"api_key": c.apiKey,
	}
	if c.authToken != "" {
		fixed = append(fixed, "auth_token")
		all["auth_token"] = c.authToken
	}
	if c.format == FormatJSON {
		fixed = append(fixed, "format", "nojsoncallback")
		all["format"] = "json"
		all["nojsoncallback"] = "1"
	}

	var keys []string
	for k, v := range params {
		if _, isFixed := all[k]; isFixed || k == "api_sig" {
			continue
		}
		all[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	encoded := all.encode()
	var b strings.Builder
	b.WriteString(c.endpoint)
	b.WriteString("/?")
	write := func(k, v string) {
		if b.Len() > len(c.endpoint)+2 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}

	for _, k := range fixed {
		write(k, encoded[k])
	}
	for _, k := range keys {
		if v, ok := encoded[k]; ok {
			write(k, v)
		}
	}
	if sig := Signature(c.sharedSecret, all); sig != "" {
		write("api_sig", sig)
	}
	return b.String()
}

// Invoke calls the remote method and returns the response payload with the
// status stripped. method may be given with or without the "flickr." prefix.
// A response with stat="fail" is returned as an *APIError. Transport errors
// are returned unchanged. Exactly one request is sent per call.
func (c *Client) Invoke(ctx context.Context, method string, params Params) (Response, error) {
	method = qualify(method)
	c.log.Debug("flickr request", "method", method)

	body, err := c.transport.Get(ctx, c.requestURL(method, params))
	if err != nil {
		return nil, err
	}

	decoded, err := c.decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}

	resp, err := checkStatus(method, decoded)
	if err != nil {
		c.log.Warn("flickr request failed", "method", method, "err", err)
		return nil, err
	}
	return resp, nil
}
