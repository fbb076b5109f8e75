package core

import (
	"regexp"
	"strings"
)

const (
	linkedInRootDomain = "linkedin.com"
	linkedInCanonical  = "www.linkedin.com"
	linkedInProfile    = "/in/"
)

var profileURLPattern = regexp.MustCompile(`(?i)^(https?://)?([^/]+)(/.*)?$`)

// NormalizeLinkedInURL canonicalizes a LinkedIn profile URL.
//
// The host must end in linkedin.com, the scheme is forced to https, a bare
// linkedin.com host becomes www.linkedin.com, the path must start with /in/
// and trailing slashes are removed. Returns false when any rule fails.
func NormalizeLinkedInURL(raw string) (string, bool) {
	m := profileURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", false
	}
	host, path := m[2], m[3]

	if !strings.HasSuffix(host, linkedInRootDomain) {
		return "", false
	}
	if host == linkedInRootDomain {
		host = linkedInCanonical
	}

	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, linkedInProfile) || len(path) == len(linkedInProfile) {
		return "", false
	}

	return "https://" + host + path, true
}

// TrimTrailingSlash strips a single trailing slash, as done for company page URLs.
func TrimTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// IsASCII reports whether every byte of s is 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
