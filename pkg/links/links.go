// Package links parses approved link lists and audits generated body text
// for approved-URL usage.
package links

import (
	"strings"
)

// ApprovedLink is one operator-curated URL with its description.
type ApprovedLink struct {
	URL         string
	Description string
}

// ParseList extracts (URL, description) pairs from raw approved-list text,
// one entry per line in the form "<url>: <description>". The separator is
// the first ": " occurrence, since the URL itself contains a colon. Lines
// without a separator remain part of the raw context text sent to the model
// but are excluded here. Order and duplicates are preserved.
func ParseList(raw string) []ApprovedLink {
	var out []ApprovedLink
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ": ")
		if idx < 0 {
			continue
		}
		url := strings.TrimSpace(line[:idx])
		if url == "" {
			continue
		}
		out = append(out, ApprovedLink{
			URL:         url,
			Description: strings.TrimSpace(line[idx+2:]),
		})
	}
	return out
}

// Audit returns the approved URLs that occur in body, checked as exact
// byte-for-byte substrings (no scheme/case/trailing-slash normalization).
// Results preserve approved-list order, not order of appearance in the
// body, and duplicate approved entries yield duplicate matches.
func Audit(body string, internal, external []ApprovedLink) (matchedInternal, matchedExternal []string) {
	return match(body, internal), match(body, external)
}

func match(body string, approved []ApprovedLink) []string {
	var out []string
	for _, l := range approved {
		if strings.Contains(body, l.URL) {
			out = append(out, l.URL)
		}
	}
	return out
}

// Joined formats matched URLs the way the results CSV stores them.
func Joined(urls []string) string {
	return strings.Join(urls, " | ")
}
