package invoice

import (
	"fmt"
	"strings"
)

// NormalizeDate coerces the date strings found in uploaded sheets into
// DD/MM/YYYY. Accepted inputs are DD/MM/YYYY, DD-MM-YYYY and year-first
// ISO forms; day and month are zero-padded. Anything unrecognized is
// returned unchanged since dates are never validated.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	sep := "/"
	if strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return s
	}

	// Year first means ISO; swap to day first.
	if len(parts[0]) == 4 {
		parts[0], parts[2] = parts[2], parts[0]
	}
	return fmt.Sprintf("%s/%s/%s", pad2(parts[0]), pad2(parts[1]), parts[2])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// FormatINR renders a money value with two decimal places. The currency
// symbol is supplied by the template, not here.
func FormatINR(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
