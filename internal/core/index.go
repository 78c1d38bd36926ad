package core

import "strconv"

// FormatIndex pads a 0-based position to two digits. Positions of 100 and
// above widen rather than lose their leading digit.
func FormatIndex(i int) string {
	s := strconv.Itoa(i)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
