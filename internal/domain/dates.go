package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var publishedPhraseRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` + // YYYY-MM-DD
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}` +
		`|` +
		`\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{4}` +
		`|` +
		`today|yesterday` +
		`)`,
)

// ParsePublishedDate parses a publication timestamp as found in page metadata
// (RFC3339, ISO dates, "March 5, 2024", ...).
func ParsePublishedDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractPublishedDate finds the first date phrase in a byline such as
// "Published Mar 5, 2024 · 6 min read".
func ExtractPublishedDate(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := publishedPhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.TrimSpace(m[1]))

	if t, ok := resolveRelative(token, ref, loc); ok {
		return t, true
	}

	token = strings.ReplaceAll(token, ".", "")
	return ParsePublishedDate(token, loc)
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = dateOnly(ref.In(loc))

	switch token {
	case "today":
		return ref, true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
