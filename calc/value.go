package calc

// Value is one entry on the stack: a real or complex scalar plus opaque unit
// text. Units are never interpreted here; arithmetic strips them unless an
// action explicitly carries them forward, copy-style actions preserve them.
type Value struct {
	Re, Im float64
	Units  string
	// Notation, when non-empty, overrides the formatter's current notation
	// for this value only ("si", "hex", ...).
	Notation string
}

func Real(re float64, units string) Value {
	return Value{Re: re, Units: units}
}

func Complex(re, im float64, units string) Value {
	return Value{Re: re, Im: im, Units: units}
}

func (v Value) IsComplex() bool {
	return v.Im != 0
}

func (v Value) Cmplx() complex128 {
	return complex(v.Re, v.Im)
}

// WithUnits returns a copy of v carrying the given unit text.
func (v Value) WithUnits(units string) Value {
	v.Units = units
	return v
}
