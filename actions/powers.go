package actions

import (
	"math"
	"math/cmplx"

	"github.com/KenKundert/ec/calc"
)

func powerAndLogActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Powers, Roots, Exponentials and Logarithms"),
		{
			Key: "**", Aliases: []string{"pow", "ytox"}, Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				if !y.IsComplex() && !x.IsComplex() {
					if y.Re >= 0 || x.Re == math.Trunc(x.Re) {
						return calc.Real(math.Pow(y.Re, x.Re), ""), nil
					}
				}
				return fromCmplx(cmplx.Pow(y.Cmplx(), x.Cmplx()), ""), nil
			}),
			Description: "**: raise y to the power of x",
			Synopsis:    "x, y, ... => y**x, ...",
		},
		{
			Key: "exp", Aliases: []string{"powe"}, Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() {
					return fromCmplx(cmplx.Exp(x.Cmplx()), ""), nil
				}
				return calc.Real(math.Exp(x.Re), ""), nil
			}),
			Description: "exp: natural exponential",
			Synopsis:    "x, ... => exp(x), ...",
		},
		{
			Key: "ln", Aliases: []string{"loge"}, Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() || x.Re < 0 {
					return fromCmplx(cmplx.Log(x.Cmplx()), ""), nil
				}
				if x.Re == 0 {
					return calc.Value{}, domainError("logarithm of zero")
				}
				return calc.Real(math.Log(x.Re), ""), nil
			}),
			Description: "ln: natural logarithm",
			Synopsis:    "x, ... => ln(x), ...",
		},
		{
			Key: "pow10", Aliases: []string{"10tox"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Pow(10, x), nil
			}),
			Description: "pow10: raise 10 to the power of x",
			Synopsis:    "x, ... => 10**x, ...",
		},
		{
			Key: "log", Aliases: []string{"log10", "lg"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				if x <= 0 {
					return 0, domainError("logarithm requires a positive argument")
				}
				return math.Log10(x), nil
			}),
			Description: "log: base 10 logarithm",
			Synopsis:    "x, ... => log(x), ...",
		},
		{
			Key: "pow2", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Pow(2, x), nil
			}),
			Description: "pow2: raise 2 to the power of x",
			Synopsis:    "x, ... => 2**x, ...",
		},
		{
			Key: "log2", Aliases: []string{"lb"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				if x <= 0 {
					return 0, domainError("logarithm requires a positive argument")
				}
				return math.Log2(x), nil
			}),
			Description: "log2: base 2 logarithm",
			Synopsis:    "x, ... => log2(x), ...",
		},
		{
			Key: "sqr", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				return fromCmplx(x.Cmplx()*x.Cmplx(), ""), nil
			}),
			Description: "sqr: square",
			Synopsis:    "x, ... => x**2, ...",
		},
		{
			Key: "sqrt", Aliases: []string{"rt"}, Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() || x.Re < 0 {
					return fromCmplx(cmplx.Sqrt(x.Cmplx()), ""), nil
				}
				return calc.Real(math.Sqrt(x.Re), ""), nil
			}),
			Description: "sqrt: square root",
			Synopsis:    "x, ... => sqrt(x), ...",
		},
		{
			Key: "cbrt", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Cbrt(x), nil
			}),
			Description: "cbrt: cube root",
			Synopsis:    "x, ... => cbrt(x), ...",
		},
	}
}
