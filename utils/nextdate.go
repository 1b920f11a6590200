package utils

import (
	"fmt"
	"strings"
	"time"
)

// FallbackNextShowing is rendered when NEXT_DT is absent or unparsable.
const FallbackNextShowing = "NEXT_DT is missing or not a valid date"

// Accepted NEXT_DT layouts. Parsing keeps the written wall-clock components;
// the display never converts between zones.
var nextShowingLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatNextShowing renders an ISO-8601 datetime as a compact schedule line:
// "MM / DD - H00" when the minute is zero, otherwise "MM / DD - H:MM".
// Month and day are zero-padded, the 24-hour hour carries no leading zero.
// Anything that does not parse yields FallbackNextShowing; it never panics.
func FormatNextShowing(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FallbackNextShowing
	}

	var parsed time.Time
	ok := false
	for _, layout := range nextShowingLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			parsed, ok = t, true
			break
		}
	}
	if !ok {
		return FallbackNextShowing
	}

	if parsed.Minute() == 0 {
		return fmt.Sprintf("%02d / %02d - %d00", int(parsed.Month()), parsed.Day(), parsed.Hour())
	}
	return fmt.Sprintf("%02d / %02d - %d:%02d", int(parsed.Month()), parsed.Day(), parsed.Hour(), parsed.Minute())
}
