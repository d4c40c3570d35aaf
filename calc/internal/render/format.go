package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Commas formats v with the given decimals and thousands separators,
// e.g. Commas(185835.9166, 0) == "185,836".
func Commas(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// beyond int64; leave ungrouped
		return sign + s
	}
	out := sign + humanize.Comma(n)
	if hasFrac {
		out += "." + frac
	}
	if out == "-0" || strings.HasPrefix(out, "-0.") && strings.Trim(frac, "0") == "" {
		out = out[1:]
	}
	return out
}

// Float formats v in its shortest round-trip form, keeping one decimal place
// on whole numbers: 2 -> "2.0", 15.75 -> "15.75".
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Banner writes a blank line and a title framed by rules of the given rune.
func Banner(w io.Writer, title string, rule string, width int) {
	line := strings.Repeat(rule, width)
	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, line)
}

// Rule writes a single rule line.
func Rule(w io.Writer, rule string, width int) {
	fmt.Fprintln(w, strings.Repeat(rule, width))
}
