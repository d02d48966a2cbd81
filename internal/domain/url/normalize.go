// Package url provides address normalization and parsing for the address bar.
package url

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

// DefaultScheme is prefixed to submitted text that carries no recognizable scheme.
// The prefix is written without "//": "example.com" becomes "https:example.com".
// WebKit parses special schemes per WHATWG, which tolerates the missing slashes.
const DefaultScheme = "https"

// ErrInvalidAddress is returned when text cannot be parsed as a navigable address.
var ErrInvalidAddress = errors.New("invalid address")

// knownSchemes lists the scheme prefixes treated as already present.
var knownSchemes = []string{
	"http:",
	"https:",
	"file:",
	"about:",
	"data:",
	"blob:",
	"ftp:",
	"mailto:",
	"view-source:",
	"ws:",
	"wss:",
}

// HasScheme reports whether input starts with a recognizable scheme.
// The check is case-insensitive.
func HasScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, scheme := range knownSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// Normalize lowercases input and prefixes DefaultScheme when no scheme is present.
// Empty input yields "https:", which Parse rejects.
//
// Examples:
//
//	"example.com"          → "https:example.com"
//	"Example.COM/Path"     → "https:example.com/path"
//	"HTTP://example.com"   → "http://example.com"
//	"about:blank"          → "about:blank"
func Normalize(input string) string {
	lower := strings.ToLower(input)
	if HasScheme(lower) {
		return lower
	}
	return DefaultScheme + ":" + lower
}

// Parse parses text as a navigable address without normalizing it.
// Empty text, text containing whitespace or control characters, and text that
// net/url rejects all fail with ErrInvalidAddress.
func Parse(text string) (*url.URL, error) {
	if text == "" {
		return nil, ErrInvalidAddress
	}

	if strings.IndexFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return nil, ErrInvalidAddress
	}

	parsed, err := url.Parse(text)
	if err != nil {
		return nil, errors.Join(ErrInvalidAddress, err)
	}

	// "https:" alone parses but names nothing.
	if parsed.Scheme != "" && parsed.Opaque == "" && parsed.Host == "" && parsed.Path == "" {
		return nil, ErrInvalidAddress
	}

	return parsed, nil
}

// Resolve normalizes raw user input and parses the result.
// It returns the normalized text, which is what gets handed to the engine.
func Resolve(raw string) (string, error) {
	normalized := Normalize(raw)
	if _, err := Parse(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Strips the "www." prefix so youtube.com and www.youtube.com resolve to the same value.
// Opaque addresses such as "https:example.com" yield the opaque part's host segment.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := parsed.Host
	if host == "" && parsed.Opaque != "" {
		host, _, _ = strings.Cut(parsed.Opaque, "/")
	}
	return strings.TrimPrefix(host, "www.")
}
