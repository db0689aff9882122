// Package dateutil provides the calendar helpers used across the
// statement pipeline: ISO 8601 parsing, day truncation, month boundaries
// and day enumeration.
package dateutil

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isoLayouts are tried in order when parsing. Upstream sources mix plain
// dates, second-precision timestamps and full RFC 3339.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Parse parses an ISO 8601 date or timestamp. It fails on syntactically
// invalid input rather than defaulting to an epoch value.
func Parse(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// DayKey truncates an ISO date or timestamp to its calendar day
// (YYYY-MM-DD).
func DayKey(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}

	return t.Format(time.DateOnly), nil
}

// MonthBoundaries returns the first and last calendar day of t's month,
// both inclusive, as ISO dates.
func MonthBoundaries(t time.Time) (string, string) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start.Format(time.DateOnly), end.Format(time.DateOnly)
}

// EnumerateDays lists every calendar day from start to end inclusive. The
// result is empty when start is after end.
func EnumerateDays(start, end string) ([]string, error) {
	from, err := Parse(start)
	if err != nil {
		return nil, err
	}

	to, err := Parse(end)
	if err != nil {
		return nil, err
	}

	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	var days []string
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		days = append(days, cursor.Format(time.DateOnly))
	}

	return days, nil
}

var monthNamesPt = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var monthTitle = cases.Title(language.BrazilianPortuguese)

// MonthLabel renders t as a Brazilian Portuguese month heading, e.g.
// "Julho 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthTitle.String(monthNamesPt[int(t.Month())-1]), t.Year())
}
