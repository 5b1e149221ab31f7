package utils

import "strings"

// SafeNextPath validates a post-login redirect target. Only same-site paths
// are honored: the target must start with a single "/". Targets starting with
// "//" or "/\" are protocol-relative URLs to browsers and would leave the
// site, so they fall back to the landing page like any other external target.
func SafeNextPath(next string) string {
	if next == "" || next[0] != '/' {
		return "/"
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
