// Package hostname canonicalizes domains extracted from result links.
package hostname

import (
	"net/url"
	"strings"
)

// Unknown is the sentinel returned for links that do not parse as URLs.
const Unknown = "unknown"

// Normalize extracts the lower-cased hostname from rawURL with a leading
// "www." stripped. A malformed or host-less URL maps to the Unknown sentinel;
// parse failure is a normal case, never an error.
func Normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Unknown
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Unknown
	}

	return strings.TrimPrefix(host, "www.")
}

// FromLink is like Normalize but returns "" instead of the sentinel, for
// callers that want an absent value (the report's topDomain field).
func FromLink(rawURL string) string {
	if h := Normalize(rawURL); h != Unknown {
		return h
	}
	return ""
}
