package cookiex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			"single pair",
			"sessionid=abc123",
			map[string]string{"sessionid": "abc123"},
		},
		{
			"multiple pairs with padding",
			"sessionid=abc123; theme=dark ;lang=en",
			map[string]string{"sessionid": "abc123", "theme": "dark", "lang": "en"},
		},
		{
			"pairs without separator or with empty parts are dropped",
			"a=1;b=;c",
			map[string]string{"a": "1"},
		},
		{
			"empty key dropped",
			"=value;x=1",
			map[string]string{"x": "1"},
		},
		{
			"duplicate keys resolve to the last value",
			"k=first;k=second",
			map[string]string{"k": "second"},
		},
		{
			"values are not decoded",
			"k=a%20b",
			map[string]string{"k": "a%20b"},
		},
		{
			"empty header",
			"",
			map[string]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.header))
		})
	}
}

func TestGet(t *testing.T) {
	assert.Equal(t, "abc", Get("sessionid=abc; other=1", "sessionid"))
	assert.Equal(t, "", Get("other=1", "sessionid"))
	assert.Equal(t, "", Get("", "sessionid"))
}
