package cli

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayLayout    = "2006-01-02"
	momentLayout = "2006-01-02 15:04"
)

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dayLayout)
}

func formatMoment(t time.Time) string {
	return t.Local().Format(momentLayout)
}

// parseDay reads YYYY-MM-DD as local midnight.
func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// parseWhen reads "YYYY-MM-DD HH:MM" in local time, or RFC 3339.
func parseWhen(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(momentLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected YYYY-MM-DD HH:MM", s)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
