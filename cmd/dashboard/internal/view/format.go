package view

import (
	"github.com/espressobank/extrato/internal/dateutil"
)

// FormatDay renders an ISO date or timestamp as DD/MM/YYYY for display.
// Unparseable input is shown as-is.
func FormatDay(iso string) string {
	t, err := dateutil.Parse(iso)
	if err != nil {
		return iso
	}

	return t.Format("02/01/2006")
}
