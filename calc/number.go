package calc

import (
	"regexp"
	"strconv"
	"strings"
)

// The number grammars, tried in priority order. Scale factors fold into the
// magnitude; trailing unit text is carried along as opaque annotation.
var (
	hexNumRe = regexp.MustCompile(`\A([-+]?)0[xX]([0-9a-fA-F]+)\z`)
	octNumRe = regexp.MustCompile(`\A([-+]?)0[oO]([0-7]+)\z`)
	binNumRe = regexp.MustCompile(`\A([-+]?)0[bB]([01]+)\z`)

	vlogHexRe = regexp.MustCompile(`\A([-+]?)'[hH]([0-9a-fA-F_]*[0-9a-fA-F])\z`)
	vlogDecRe = regexp.MustCompile(`\A([-+]?)'[dD]([0-9_]*[0-9])\z`)
	vlogOctRe = regexp.MustCompile(`\A([-+]?)'[oO]([0-7_]*[0-7])\z`)
	vlogBinRe = regexp.MustCompile(`\A([-+]?)'[bB]([01_]*[01])\z`)

	sciNumRe = regexp.MustCompile(`\A(\$?)([-+]?[0-9]*\.?[0-9]+[eE][-+]?[0-9]+)([a-zA-Z_]*)\z`)
	engNumRe = regexp.MustCompile(`\A(\$?)([-+]?[0-9]*\.?[0-9]+)(([YZEPTGMKk_munpfazy])([a-zA-Z_]*))?\z`)

	leadingDigitRe = regexp.MustCompile(`\A[-+]?[.0-9']`)
)

// ScaleFactors maps an SI scale letter to its power-of-ten multiplier. The
// underscore is the unity scale, used to hang units on an otherwise bare
// number ("10_V").
var ScaleFactors = map[byte]float64{
	'Y': 1e24, 'Z': 1e21, 'E': 1e18, 'P': 1e15, 'T': 1e12, 'G': 1e9,
	'M': 1e6, 'K': 1e3, 'k': 1e3, '_': 1,
	'm': 1e-3, 'u': 1e-6, 'n': 1e-9, 'p': 1e-12, 'f': 1e-15, 'a': 1e-18,
	'z': 1e-21, 'y': 1e-24,
}

// ParseNumber recognizes one numeric literal. ok is false when the token does
// not look like a number at all; err is non-nil when the token starts like a
// number but its digits are invalid for the recognized notation.
func ParseNumber(tok string) (v Value, ok bool, err error) {
	for _, grammar := range []struct {
		re   *regexp.Regexp
		base int
	}{
		{hexNumRe, 16}, {octNumRe, 8}, {binNumRe, 2},
		{vlogHexRe, 16}, {vlogDecRe, 10}, {vlogOctRe, 8}, {vlogBinRe, 2},
	} {
		if m := grammar.re.FindStringSubmatch(tok); m != nil {
			digits := strings.ReplaceAll(m[2], "_", "")
			mag, perr := strconv.ParseUint(digits, grammar.base, 64)
			if perr != nil {
				return Value{}, false, newError(ErrNumberFormat, "%s: number out of range", tok)
			}
			num := float64(mag)
			if m[1] == "-" {
				num = -num
			}
			return Real(num, ""), true, nil
		}
	}

	if m := sciNumRe.FindStringSubmatch(tok); m != nil {
		num, perr := strconv.ParseFloat(m[2], 64)
		if perr != nil {
			return Value{}, false, newError(ErrNumberFormat, "%s: malformed number", tok)
		}
		units := m[3]
		if m[1] == "$" {
			units = "$"
		}
		return Real(num, units), true, nil
	}

	if m := engNumRe.FindStringSubmatch(tok); m != nil {
		num, perr := strconv.ParseFloat(m[2], 64)
		if perr != nil {
			return Value{}, false, newError(ErrNumberFormat, "%s: malformed number", tok)
		}
		units := ""
		if m[3] != "" {
			num *= ScaleFactors[m[4][0]]
			units = m[5]
		}
		if m[1] == "$" {
			units = "$"
		}
		return Real(num, units), true, nil
	}

	if leadingDigitRe.MatchString(tok) {
		return Value{}, false, newError(ErrNumberFormat, "%s: malformed number", tok)
	}
	return Value{}, false, nil
}
