package view

import (
	"github.com/espressobank/extrato/internal/dateutil"
)

// baseMonths are the months offered by the month selector. The statement
// product covers the 2025 Q3 campaign window.
var baseMonths = []string{"2025-07-01", "2025-08-01", "2025-09-01"}

// MonthOption is one selectable month with its calendar boundaries.
type MonthOption struct {
	Key       string // YYYY-MM
	Label     string
	StartDate string
	EndDate   string
}

// MonthOptions derives the selectable months from baseMonths.
func MonthOptions() []MonthOption {
	options := make([]MonthOption, 0, len(baseMonths))

	for _, iso := range baseMonths {
		t, err := dateutil.Parse(iso)
		if err != nil {
			continue
		}

		start, end := dateutil.MonthBoundaries(t)

		options = append(options, MonthOption{
			Key:       start[:7],
			Label:     dateutil.MonthLabel(t),
			StartDate: start,
			EndDate:   end,
		})
	}

	return options
}
