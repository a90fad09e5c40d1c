// Package format renders calculator values. The notation and precision are
// persistent interpreter state, changed only by the format-setting actions
// and never reset implicitly between lines.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Notation selects how a value is rendered.
type Notation int

const (
	SI Notation = iota // SI scale-factor letters (1.4MHz)
	Eng                // exponent constrained to a multiple of three
	Sci                // exactly one integer digit before the point
	Fix                // fixed digits after the point, no exponent
	Hex                // C-style integer bases
	Oct
	Bin
	VHex // Verilog-style integer bases
	VDec
	VOct
	VBin
)

var notationNames = map[Notation]string{
	SI: "si", Eng: "eng", Sci: "sci", Fix: "fix",
	Hex: "hex", Oct: "oct", Bin: "bin",
	VHex: "vhex", VDec: "vdec", VOct: "voct", VBin: "vbin",
}

func (n Notation) String() string {
	if name, ok := notationNames[n]; ok {
		return name
	}
	return "(wrong notation)"
}

// Lookup resolves a notation by its spelling.
func Lookup(name string) (Notation, bool) {
	for n, s := range notationNames {
		if s == name {
			return n, true
		}
	}
	return 0, false
}

// State is the persistent render configuration: the notation plus one
// integer that means precision for the real notations and digit width for
// the integer ones.
type State struct {
	notation Notation
	digits   int

	defNotation Notation
	defDigits   int
}

func New(notation Notation, digits int) *State {
	return &State{
		notation:    notation,
		digits:      digits,
		defNotation: notation,
		defDigits:   digits,
	}
}

func (s *State) Set(n Notation)     { s.notation = n }
func (s *State) SetDigits(d int)    { s.digits = d }
func (s *State) Notation() Notation { return s.notation }
func (s *State) Digits() int        { return s.digits }

// Reset restores the notation and digits the State was constructed with.
func (s *State) Reset() {
	s.notation = s.defNotation
	s.digits = s.defDigits
}

// Format renders a possibly complex value with units. override, when
// non-empty, names a notation used for this value only.
func (s *State) Format(re, im float64, units, override string) string {
	n := s.notation
	if override != "" {
		if o, ok := Lookup(override); ok {
			n = o
		}
	}
	if im == 0 {
		return s.render(n, re, units)
	}

	// complex: render both parts, suppress the imaginary when it would
	// display as zero, and fold the units into the j term
	real := s.render(n, re, units)
	imag := s.render(n, im, units)
	zero := s.render(n, 0, units)
	one := s.render(n, 1, units)
	unitsSuffix := ""
	if units != "" {
		unitsSuffix = " " + units
	}
	if imag == zero {
		return real
	}
	if imag[0] == '-' {
		imag = imag[1:]
		if imag == one {
			imag = strings.TrimSpace(unitsSuffix)
		}
		if imag == zero {
			return real
		}
		if real == zero {
			return "-j" + imag
		}
		return real + " - j" + imag
	}
	if imag == one {
		imag = unitsSuffix
	}
	if real == zero {
		return "j" + imag
	}
	return real + " + j" + imag
}

// Render renders a real number with the current notation.
func (s *State) Render(num float64, units string) string {
	return s.render(s.notation, num, units)
}

func (s *State) render(n Notation, num float64, units string) string {
	switch n {
	case SI:
		return attachUnits(siMantissa(num, s.digits, true), units)
	case Eng:
		return attachUnits(siMantissa(num, s.digits, false), units)
	case Sci:
		return attachUnits(strconv.FormatFloat(num, 'e', s.digits, 64), units)
	case Fix:
		return attachUnits(strconv.FormatFloat(num, 'f', s.digits, 64), units)
	case Hex:
		return renderInt(num, 16, s.digits, "0x")
	case Oct:
		return renderInt(num, 8, s.digits, "0o")
	case Bin:
		return renderInt(num, 2, s.digits, "0b")
	case VHex:
		return renderInt(num, 16, s.digits, "'h")
	case VDec:
		return renderInt(num, 10, s.digits, "'d")
	case VOct:
		return renderInt(num, 8, s.digits, "'o")
	case VBin:
		return renderInt(num, 2, s.digits, "'b")
	}
	return strconv.FormatFloat(num, 'g', -1, 64)
}

// siMantissa renders num with the exponent reduced to a multiple of three.
// With letters true the exponent becomes an SI scale letter when one exists;
// otherwise (and for out-of-range exponents) an e-form exponent is used.
func siMantissa(num float64, prec int, letters bool) string {
	if math.IsInf(num, 0) || math.IsNaN(num) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}

	sNum := strconv.FormatFloat(num, 'e', prec, 64)
	eIdx := strings.IndexByte(sNum, 'e')
	exp, _ := strconv.Atoi(sNum[eIdx+1:])

	// floor division so negative exponents land on the lower multiple of 3
	index := int(math.Floor(float64(exp) / 3))
	shift := exp - 3*index

	sf := ""
	if exp-shift != 0 {
		sf = "e" + strconv.Itoa(exp-shift)
	}
	if letters && index != 0 {
		const big = "KMGT"
		const small = "munpfa"
		if index > 0 && index <= len(big) {
			sf = string(big[index-1])
		} else if index < 0 && -index <= len(small) {
			sf = string(small[-index-1])
		}
	}

	mant, _ := strconv.ParseFloat(sNum[:eIdx], 64)
	mant *= math.Pow10(shift)
	decimals := prec - shift
	if decimals < 0 {
		decimals = 0
	}
	sMant := strconv.FormatFloat(mant, 'f', decimals, 64)
	if strings.ContainsRune(sMant, '.') {
		sMant = strings.TrimRight(sMant, "0")
		sMant = strings.TrimRight(sMant, ".")
	}
	return sMant + sf
}

// attachUnits places the units text: '$' leads, anything else trails, empty
// units leave the number alone.
func attachUnits(number, units string) string {
	switch units {
	case "":
		return number
	case "$":
		return "$" + number
	}
	return number + units
}

// renderInt rounds to the nearest integer and renders it in the target base,
// zero padded to width digits. Units are not representable in the integer
// notations and are dropped.
func renderInt(num float64, base, width int, prefix string) string {
	n := int64(math.Round(num))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, base)
	for len(digits) < width {
		digits = "0" + digits
	}
	return sign + prefix + digits
}
