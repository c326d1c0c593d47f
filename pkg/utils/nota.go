package utils

import (
	"fmt"
	"strconv"
)

// NextNotaNumber increments the last stored nota number and re-pads it to
// the character length of the stored string. The padding width therefore
// follows whatever was last written: "007" -> "008", "7" -> "8",
// "099" -> "100". A last value that does not parse as a number starts the
// sequence at 1.
func NextNotaNumber(last string) string {
	n, err := strconv.Atoi(last)
	if err != nil {
		n = 0
	}
	return fmt.Sprintf("%0*d", len(last), n+1)
}

// FormatNota joins the prefix and number with a hyphen, e.g. "INV-008".
func FormatNota(prefix, number string) string {
	return prefix + "-" + number
}
