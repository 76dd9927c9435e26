package compositor

import (
	"strings"
	"time"
)

// Present marks an ongoing date range and is never reformatted
const Present = "Present"

var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	time.RFC3339,
	"2006",
	"Jan 2006",
	"January 2006",
	"01/2006",
}

// FormatDate renders a stored date as "Jan 2006". Empty stays empty,
// "Present" is kept, and anything unparsable is returned unchanged.
func FormatDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.EqualFold(trimmed, Present) {
		return Present
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// FormatRange renders "start - end". A missing end drops the separator;
// a missing start leaves only the end.
func FormatRange(start, end string) string {
	s, e := FormatDate(start), FormatDate(end)
	switch {
	case s == "":
		return e
	case e == "":
		return s
	}
	return s + " - " + e
}
