package flickr

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Signature computes the api_sig for params: the MD5 hex digest of the shared
// secret followed by every key and value, sorted by key. Parameters with a nil
// value are left out. It returns "" when secret is empty.
func Signature(secret string, params Params) string {
	if secret == "" {
		return ""
	}

	values := params.encode()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(secret)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(values[k])
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
