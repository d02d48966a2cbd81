package url

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string gets the bare scheme",
			input: "",
			want:  "https:",
		},
		{
			name:  "bare domain gets https prefix without slashes",
			input: "example.com",
			want:  "https:example.com",
		},
		{
			name:  "domain with path is lowercased",
			input: "Example.COM/Some/Path",
			want:  "https:example.com/some/path",
		},
		{
			name:  "https scheme unchanged",
			input: "https://example.com",
			want:  "https://example.com",
		},
		{
			name:  "uppercase scheme is lowercased, not prefixed",
			input: "HTTP://Example.com",
			want:  "http://example.com",
		},
		{
			name:  "about scheme unchanged",
			input: "about:blank",
			want:  "about:blank",
		},
		{
			name:  "file scheme unchanged",
			input: "file:///tmp/index.html",
			want:  "file:///tmp/index.html",
		},
		{
			name:  "already normalized opaque form unchanged",
			input: "https:example.com",
			want:  "https:example.com",
		},
		{
			name:  "host with port is not mistaken for a scheme",
			input: "localhost:8080",
			want:  "https:localhost:8080",
		},
		{
			name:  "search-like text still prefixed",
			input: "hello world",
			want:  "https:hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_IdempotentForSchemeInputs(t *testing.T) {
	inputs := []string{
		"https://example.com/",
		"HTTPS://Example.com/A?b=C",
		"http:example.com",
		"about:blank",
		"file:///home/user/Page.html",
		"data:text/plain,Hello",
		"view-source:https://example.com",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			once := Normalize(s)
			assert.Equal(t, once, Normalize(once))
		})
	}
}

func TestNormalize_SchemelessEqualsPrefixedLowercase(t *testing.T) {
	inputs := []string{
		"",
		"example.com",
		"Example.com/Path",
		"news.ycombinator.com/item?id=1",
		"localhost:5173",
		"github.com/NGrani",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			require.False(t, HasScheme(s))
			assert.Equal(t, Normalize("https:"+strings.ToLower(s)), Normalize(s))
		})
	}
}

func TestHasScheme(t *testing.T) {
	assert.True(t, HasScheme("https://example.com"))
	assert.True(t, HasScheme("HTTPS:example.com"))
	assert.True(t, HasScheme("about:blank"))
	assert.True(t, HasScheme("mailto:someone@example.com"))
	assert.False(t, HasScheme("example.com"))
	assert.False(t, HasScheme("localhost:8080"))
	assert.False(t, HasScheme("httpsexample.com"))
	assert.False(t, HasScheme(""))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "opaque https address", input: "https:example.com"},
		{name: "hierarchical https address", input: "https://example.com/path?q=1"},
		{name: "about blank", input: "about:blank"},
		{name: "relative text parses", input: "example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "scheme only", input: "https:", wantErr: true},
		{name: "contains space", input: "https:hello world", wantErr: true},
		{name: "contains tab", input: "https://example.com/\tx", wantErr: true},
		{name: "bad escape in fragment", input: "https:example.com#%zz", wantErr: true},
		{name: "bad escape in host", input: "https://exa%zzmple.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAddress))
				assert.Nil(t, parsed)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, parsed)
		})
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve("Example.com")
	require.NoError(t, err)
	assert.Equal(t, "https:example.com", got)

	got, err = Resolve("https://Example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", got)

	_, err = Resolve("not a url")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = Resolve("")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "example.com", ExtractDomain("https://www.example.com/path"))
	assert.Equal(t, "example.com", ExtractDomain("https:example.com/path"))
	assert.Equal(t, "localhost:8080", ExtractDomain("http://localhost:8080"))
	assert.Equal(t, "", ExtractDomain(""))
	assert.Equal(t, "", ExtractDomain("about:"))
}
