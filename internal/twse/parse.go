package twse

import (
	"strconv"
	"strings"
)

// parseFloat parses a proxy numeric string, tolerating thousands
// separators and placeholder values ("-", ""). Unparsable input
// yields 0 rather than an error.
func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt64 parses an integer column the same way parseFloat does.
func parseInt64(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Volume sometimes arrives with a decimal part; keep the whole lots.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return v
}
