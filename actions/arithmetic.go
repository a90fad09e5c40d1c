package actions

import (
	"math"
	"math/rand"

	"github.com/KenKundert/ec/calc"
)

// sameUnits keeps the shared unit text of two operands, or strips units when
// they disagree.
func sameUnits(y, x calc.Value) string {
	if y.Units == x.Units {
		return x.Units
	}
	return ""
}

func arithmeticActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Arithmetic Operators"),
		{
			Key: "+", Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				return fromCmplx(y.Cmplx()+x.Cmplx(), sameUnits(y, x)), nil
			}),
			Description: "+: addition",
			Synopsis:    "x, y, ... => x+y, ...",
		},
		{
			Key: "-", Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				return fromCmplx(y.Cmplx()-x.Cmplx(), sameUnits(y, x)), nil
			}),
			Description: "-: subtraction",
			Synopsis:    "x, y, ... => y-x, ...",
		},
		{
			Key: "*", Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				return fromCmplx(y.Cmplx()*x.Cmplx(), ""), nil
			}),
			Description: "*: multiplication",
			Synopsis:    "x, y, ... => x*y, ...",
		},
		{
			Key: "/", Pop: 2, Push: 1,
			Run: binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
				if x.Cmplx() == 0 {
					return calc.Value{}, domainError("division by zero")
				}
				return fromCmplx(y.Cmplx()/x.Cmplx(), ""), nil
			}),
			Description: "/: true division",
			Synopsis:    "x, y, ... => y/x, ...",
		},
		{
			Key: "//", Pop: 2, Push: 1,
			Run: realBinary(func(c *calc.Calculator, y, x float64) (float64, error) {
				if x == 0 {
					return 0, domainError("division by zero")
				}
				return math.Floor(y / x), nil
			}),
			Description: "//: floor division",
			Synopsis:    "x, y, ... => y//x, ...",
		},
		{
			Key: "%", Pop: 2, Push: 1,
			Run: realBinary(func(c *calc.Calculator, y, x float64) (float64, error) {
				if x == 0 {
					return 0, domainError("division by zero")
				}
				// remainder takes the sign of the divisor
				m := math.Mod(y, x)
				if m != 0 && (m < 0) != (x < 0) {
					m += x
				}
				return m, nil
			}),
			Description: "%: modulus",
			Synopsis:    "x, y, ... => y%x, ...",
		},
		{
			Key: "%chg", Pop: 2, Push: 1,
			Run: realBinary(func(c *calc.Calculator, y, x float64) (float64, error) {
				if y == 0 {
					return 0, domainError("division by zero")
				}
				return 100 * (x - y) / y, nil
			}),
			Description: "%chg: percent change",
			Synopsis:    "x, y, ... => 100*(x-y)/y, ...",
		},
		{
			Key: "||", Pop: 2, Push: 1,
			Run: realBinary(func(c *calc.Calculator, y, x float64) (float64, error) {
				if x+y == 0 {
					return 0, domainError("division by zero")
				}
				return (x / (x + y)) * y, nil
			}),
			Description: "||: parallel combination",
			Synopsis:    "x, y, ... => 1/(1/x+1/y), ...",
		},
		{
			Key: "chs", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				return fromCmplx(-x.Cmplx(), ""), nil
			}),
			Description: "chs: change sign",
			Synopsis:    "x, ... => -x, ...",
		},
		{
			Key: "recip", Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.Cmplx() == 0 {
					return calc.Value{}, domainError("division by zero")
				}
				return fromCmplx(1/x.Cmplx(), ""), nil
			}),
			Description: "recip: reciprocal",
			Synopsis:    "x, ... => 1/x, ...",
		},
		{
			Key: "ceil", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Ceil(x), nil
			}),
			Description: "ceil: round towards positive infinity",
			Synopsis:    "x, ... => ceil(x), ...",
		},
		{
			Key: "floor", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Floor(x), nil
			}),
			Description: "floor: round towards negative infinity",
			Synopsis:    "x, ... => floor(x), ...",
		},
		{
			Key: "!", Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return factorial(x)
			}),
			Description: "!: factorial",
			Synopsis:    "x, ... => x!, ...",
		},
		{
			Key: "rand", Pop: 0, Push: 1,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				return []calc.Value{calc.Real(rand.Float64(), "")}, nil
			},
			Description: "rand: random number between 0 and 1",
			Synopsis:    "... => rand, ...",
		},
	}
}

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, domainError("factorial requires a non-negative integer")
	}
	if x > 170 {
		return 0, domainError("factorial overflows")
	}
	ret := 1.0
	for i := 2.0; i <= x; i++ {
		ret *= i
	}
	return ret, nil
}
