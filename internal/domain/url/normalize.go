// Package url provides URL handling for pane navigation targets.
package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Blank is the placeholder page used for panes without a usable URL.
const Blank = "about:blank"

var (
	errEmpty     = errors.New("empty url")
	errNoScheme  = errors.New("missing scheme")
	errNoHost    = errors.New("missing host")
	errHasSpaces = errors.New("contains whitespace")
)

// opaqueSchemes never carry a host.
var opaqueSchemes = map[string]bool{
	"about": true,
	"data":  true,
	"file":  true,
}

// Validate checks that raw is an absolute URL a pane can navigate to.
// It returns the parsed form on success.
func Validate(raw string) (string, error) {
	if raw == "" {
		return "", errEmpty
	}
	if strings.ContainsAny(raw, " \t\r\n") {
		return "", errHasSpaces
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	if parsed.Scheme == "" {
		return "", errNoScheme
	}

	scheme := strings.ToLower(parsed.Scheme)
	if !opaqueSchemes[scheme] && parsed.Host == "" {
		return "", errNoHost
	}
	return parsed.String(), nil
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(input, "http://"),
		strings.HasPrefix(input, "https://"),
		strings.HasPrefix(input, "file://"),
		strings.HasPrefix(input, "about:"),
		strings.HasPrefix(input, "data:"):
		return input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}
