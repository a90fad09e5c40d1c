package actions

import (
	"math"
	"math/cmplx"

	"github.com/KenKundert/ec/calc"
)

func complexVectorActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Complex and Vector Functions"),
		{
			Key: "abs", Aliases: []string{"mag"}, Pop: 0, Push: 1,
			Run: dupOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				return calc.Real(cmplx.Abs(x.Cmplx()), x.Units), nil
			}),
			Description: "abs: magnitude of complex number",
			Synopsis:    "x, ... => abs(x), x, ...",
		},
		{
			Key: "arg", Aliases: []string{"ph"}, Pop: 0, Push: 1,
			Run: dupOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				return calc.Real(c.FromRadians(cmplx.Phase(x.Cmplx())), c.AngleUnits()), nil
			}),
			Description: "arg: phase of complex number",
			Synopsis:    "x, ... => arg(x), x, ...",
		},
		{
			Key: "conj", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				return calc.Complex(x.Re, -x.Im, x.Units), nil
			}),
			Description: "conj: complex conjugate",
			Synopsis:    "x, ... => conj(x), ...",
		},
		{
			Key: "hypot", Aliases: []string{"len"}, Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				if x.IsComplex() || y.IsComplex() {
					return calc.Value{}, errComplex()
				}
				return calc.Real(math.Hypot(y.Re, x.Re), sameUnits(y, x)), nil
			}),
			Description: "hypot: hypotenuse",
			Synopsis:    "x, y, ... => sqrt(x**2+y**2), ...",
		},
		{
			Key: "atan2", Aliases: []string{"angle"}, Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				if x.IsComplex() || y.IsComplex() {
					return calc.Value{}, errComplex()
				}
				return calc.Real(c.FromRadians(math.Atan2(y.Re, x.Re)), c.AngleUnits()), nil
			}),
			Description: "atan2: two-argument arc tangent",
			Synopsis:    "x, y, ... => atan2(y, x), ...",
		},
		{
			// rectangular to polar: x replaced by magnitude, angle above it
			Key: "rtop", Pop: 1, Push: 2,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				x := args[0]
				mag := cmplx.Abs(x.Cmplx())
				ph := c.FromRadians(cmplx.Phase(x.Cmplx()))
				return []calc.Value{
					calc.Real(ph, c.AngleUnits()),
					calc.Real(mag, ""),
				}, nil
			},
			Description: "rtop: convert rectangular to polar coordinates",
			Synopsis:    "x, ... => abs(x), arg(x), ...",
		},
		{
			// polar to rectangular: x is the magnitude, y the angle
			Key: "ptor", Pop: 2, Push: 2,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				x, y := args[0], args[1]
				if x.IsComplex() || y.IsComplex() {
					return nil, errComplex()
				}
				ph := c.ToRadians(y.Re)
				return []calc.Value{
					calc.Real(x.Re*math.Sin(ph), ""),
					calc.Real(x.Re*math.Cos(ph), ""),
				}, nil
			},
			Description: "ptor: convert polar to rectangular coordinates",
			Synopsis:    "x, y, ... => x*cos(y), x*sin(y), ...",
		},
	}
}
