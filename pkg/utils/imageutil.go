package utils

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const GIFDataURLPrefix = "data:image/gif;base64,"

// HasHTTPPrefix reports whether src looks like an http(s) URL. Only the prefix is checked.
func HasHTTPPrefix(src string) bool {
	return strings.HasPrefix(src, "http")
}

// QueryValues returns every value of key in rawQuery. Pairs are split on '&' only,
// so a ';' inside a value is kept as-is. Values that fail to unescape are returned raw.
func QueryValues(rawQuery, key string) []string {
	var values []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(k); err == nil {
			k = unescaped
		}
		if k != key {
			continue
		}
		if unescaped, err := url.QueryUnescape(v); err == nil {
			v = unescaped
		}
		values = append(values, v)
	}
	return values
}

// GIFDataURL wraps an encoded GIF in a data URL.
func GIFDataURL(gif []byte) string {
	var sb strings.Builder
	sb.Grow(len(GIFDataURLPrefix) + base64.StdEncoding.EncodedLen(len(gif)))
	sb.WriteString(GIFDataURLPrefix)
	sb.WriteString(base64.StdEncoding.EncodeToString(gif))
	return sb.String()
}

// TruncateURL shortens a URL for logging.
func TruncateURL(url string) string {
	if len(url) > 60 {
		return url[:57] + "..."
	}
	return url
}

func NewID() string {
	return uuid.New().String()
}
