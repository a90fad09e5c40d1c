package actions

import (
	"math"

	"github.com/KenKundert/ec/calc"
)

// constant builds a push-only action for a value that does not depend on the
// unit system.
func constant(key string, v calc.Value, description string) *calc.Action {
	return &calc.Action{
		Key: key, Pop: 0, Push: 1,
		Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
			return []calc.Value{v}, nil
		},
		Description: description,
		Synopsis:    "... => " + key + ", ...",
	}
}

// dualConstant builds a push-only action whose value and units follow the
// current unit system.
func dualConstant(key string, mks, cgs calc.Value, description string) *calc.Action {
	return &calc.Action{
		Key: key, Pop: 0, Push: 1,
		Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
			if c.ConstantSystem() == calc.CGS {
				return []calc.Value{cgs}, nil
			}
			return []calc.Value{mks}, nil
		},
		Description: description,
		Synopsis:    "... => " + key + ", ...",
	}
}

func constantActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Constants"),
		constant("pi", calc.Real(math.Pi, "rads"),
			"pi: the ratio of a circle's circumference to its diameter"),
		constant("2pi", calc.Real(2*math.Pi, "rads"),
			"2pi: the ratio of a circle's circumference to its radius"),
		constant("rt2", calc.Real(math.Sqrt2, ""),
			"rt2: square root of two"),
		constant("j", calc.Complex(0, 1, ""),
			"j: imaginary unit (square root of -1)"),
		constant("j2pi", calc.Complex(0, 2*math.Pi, "rads"),
			"j2pi: j*2*pi"),
		dualConstant("h",
			calc.Real(6.626070e-34, "J-s"),
			calc.Real(6.626070e-27, "erg-s"),
			"h: Planck constant"),
		dualConstant("hbar",
			calc.Real(1.054571800e-34, "J-s"),
			calc.Real(1.054571800e-27, "erg-s"),
			"hbar: reduced Planck constant"),
		dualConstant("k",
			calc.Real(1.38064852e-23, "J/K"),
			calc.Real(1.38064852e-16, "erg/K"),
			"k: Boltzmann constant"),
		dualConstant("q",
			calc.Real(1.6021766208e-19, "C"),
			calc.Real(4.80320425e-10, "statC"),
			"q: elementary charge (the charge of an electron)"),
		constant("c", calc.Real(2.99792458e8, "m/s"),
			"c: speed of light in a vacuum"),
		constant("G", calc.Real(6.6746e-14, "m^3/(g-s^2)"),
			"G: universal gravitational constant"),
		constant("g", calc.Real(9.80665, "m/s^2"),
			"g: standard acceleration of gravity"),
		constant("NA", calc.Real(6.022140857e23, "/mol"),
			"NA: Avogadro constant"),
		dualConstant("R",
			calc.Real(8.3144598, "J/(mol-K)"),
			calc.Real(8.3144598e7, "erg/(deg-mol)"),
			"R: molar gas constant"),
		constant("0C", calc.Real(273.15, "K"),
			"0C: 0 Celsius in Kelvin"),
		dualConstant("eps0",
			calc.Real(8.854187817e-12, "F/m"),
			calc.Real(0.25/math.Pi, ""),
			"eps0: permittivity of free space"),
		dualConstant("mu0",
			calc.Real(4e-7*math.Pi, "H/m"),
			calc.Real(4*math.Pi/(2.99792458e8*2.99792458e8), "s^2/m^2"),
			"mu0: permeability of free space"),
		{
			Key: "Z0", Pop: 0, Push: 1,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				if c.ConstantSystem() == calc.CGS {
					return nil, domainError("Z0 is only defined in the mks unit system")
				}
				return []calc.Value{calc.Real(119.9169832*math.Pi, "Ohms")}, nil
			},
			Description: "Z0: characteristic impedance of free space",
			Synopsis:    "... => Z0, ...",
		},
		constant("me", calc.Real(9.10938356e-28, "g"),
			"me: rest mass of an electron"),
		constant("mp", calc.Real(1.672621898e-24, "g"),
			"mp: mass of a proton"),
		constant("lP", calc.Real(1.616229e-35, "m"),
			"lP: Planck length"),
		constant("mP", calc.Real(2.176470e-5, "g"),
			"mP: Planck mass"),
		constant("mPr", calc.Real(4.341e-6, "g"),
			"mPr: reduced Planck mass"),
		constant("TP", calc.Real(1.416808e32, "K"),
			"TP: Planck temperature"),
		constant("tP", calc.Real(5.39116e-44, "s"),
			"tP: Planck time"),
		{
			Key: "mks", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.UseMKS()
				return nil
			}),
			Description: "mks: use MKS units for constants",
		},
		{
			Key: "cgs", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.UseCGS()
				return nil
			}),
			Description: "cgs: use CGS units for constants",
		},
	}
}
