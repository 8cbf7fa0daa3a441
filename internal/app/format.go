package app

import (
	"strconv"
	"strings"
)

// FormatCall renders one evaluation as "name(in, ...) = out[, out...]" with
// fixed decimals, the same line the original C driver printed.
func FormatCall(name string, in, out []float64, precision int) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, v := range in {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'f', precision, 64))
	}
	b.WriteString(") = ")
	for i, v := range out {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'f', precision, 64))
	}
	return b.String()
}
