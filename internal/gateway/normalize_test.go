package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare hostname gets https", raw: "example.com", want: "https://example.com"},
		{name: "leading and trailing whitespace trimmed", raw: "  example.com  ", want: "https://example.com"},
		{name: "empty input", raw: "", want: ""},
		{name: "whitespace only", raw: "   \t ", want: ""},
		{name: "existing https untouched", raw: "https://example.com", want: "https://example.com"},
		{name: "existing http untouched", raw: "http://example.com", want: "http://example.com"},
		{name: "mixed-case scheme left as typed", raw: "HTTP://example.com", want: "HTTP://example.com"},
		{name: "uppercase https left as typed", raw: "HTTPS://Example.COM", want: "HTTPS://Example.COM"},
		{name: "path and query preserved", raw: "example.com/a/b?c=d", want: "https://example.com/a/b?c=d"},
		{name: "scheme-like text elsewhere still prefixed", raw: "say http:// out loud", want: "https://say http:// out loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"example.com", "  ftp.example.com ", "https://a.b", "HTTP://x", ""} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", raw)
	}
}
