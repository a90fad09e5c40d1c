package actions

import (
	"math"

	"github.com/KenKundert/ec/calc"
)

func hyperbolicActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Hyperbolic Functions"),
		{
			Key: "sinh", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Sinh(x), nil
			}),
			Description: "sinh: hyperbolic sine",
			Synopsis:    "x, ... => sinh(x), ...",
		},
		{
			Key: "cosh", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Cosh(x), nil
			}),
			Description: "cosh: hyperbolic cosine",
			Synopsis:    "x, ... => cosh(x), ...",
		},
		{
			Key: "tanh", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Tanh(x), nil
			}),
			Description: "tanh: hyperbolic tangent",
			Synopsis:    "x, ... => tanh(x), ...",
		},
		{
			Key: "asinh", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Asinh(x), nil
			}),
			Description: "asinh: hyperbolic arc sine",
			Synopsis:    "x, ... => asinh(x), ...",
		},
		{
			Key: "acosh", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				if x < 1 {
					return 0, domainError("hyperbolic arc cosine requires an argument of at least 1")
				}
				return math.Acosh(x), nil
			}),
			Description: "acosh: hyperbolic arc cosine",
			Synopsis:    "x, ... => acosh(x), ...",
		},
		{
			Key: "atanh", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				if x <= -1 || x >= 1 {
					return 0, domainError("hyperbolic arc tangent requires an argument between -1 and 1")
				}
				return math.Atanh(x), nil
			}),
			Description: "atanh: hyperbolic arc tangent",
			Synopsis:    "x, ... => atanh(x), ...",
		},
	}
}
