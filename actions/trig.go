package actions

import (
	"math"

	"github.com/KenKundert/ec/calc"
)

func trigActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Trigonometric Functions"),
		{
			Key: "sin", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Sin(c.ToRadians(x)), nil
			}),
			Description: "sin: trigonometric sine",
			Synopsis:    "x, ... => sin(x), ...",
		},
		{
			Key: "cos", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Cos(c.ToRadians(x)), nil
			}),
			Description: "cos: trigonometric cosine",
			Synopsis:    "x, ... => cos(x), ...",
		},
		{
			Key: "tan", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Tan(c.ToRadians(x)), nil
			}),
			Description: "tan: trigonometric tangent",
			Synopsis:    "x, ... => tan(x), ...",
		},
		{
			Key: "asin", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() {
					return calc.Value{}, errComplex()
				}
				if x.Re < -1 || x.Re > 1 {
					return calc.Value{}, domainError("arc sine requires an argument between -1 and 1")
				}
				return calc.Real(c.FromRadians(math.Asin(x.Re)), c.AngleUnits()), nil
			}),
			Description: "asin: arc sine",
			Synopsis:    "x, ... => asin(x), ...",
		},
		{
			Key: "acos", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() {
					return calc.Value{}, errComplex()
				}
				if x.Re < -1 || x.Re > 1 {
					return calc.Value{}, domainError("arc cosine requires an argument between -1 and 1")
				}
				return calc.Real(c.FromRadians(math.Acos(x.Re)), c.AngleUnits()), nil
			}),
			Description: "acos: arc cosine",
			Synopsis:    "x, ... => acos(x), ...",
		},
		{
			Key: "atan", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() {
					return calc.Value{}, errComplex()
				}
				return calc.Real(c.FromRadians(math.Atan(x.Re)), c.AngleUnits()), nil
			}),
			Description: "atan: arc tangent",
			Synopsis:    "x, ... => atan(x), ...",
		},
		{
			Key: "rads", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.UseRadians()
				return nil
			}),
			Description: "rads: use radians for angles",
		},
		{
			Key: "degs", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.UseDegrees()
				return nil
			}),
			Description: "degs: use degrees for angles",
		},
	}
}
