// Package cookiex parses raw HTTP Cookie headers into key/value maps.
//
// The grammar is deliberately loose: pairs are separated by ';' and may be
// space-padded; a pair without '=' or with an empty key or empty value is
// silently dropped; when a key appears more than once the last occurrence
// wins. Values are used verbatim, with no percent-decoding.
package cookiex

import "strings"

// Parse converts a raw Cookie header into a map. The result is never nil.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)

	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)

		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			continue
		}
		cookies[key] = value
	}

	return cookies
}

// Get returns the value for key in header, or "" when absent.
func Get(header, key string) string {
	return Parse(header)[key]
}
