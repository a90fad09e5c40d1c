// Package actions is the built-in catalog of the engineering calculator: the
// ordered list of action descriptors the engine is constructed from. The
// engine itself is catalog-agnostic; everything the user can type beyond
// number literals and macros is defined here.
package actions

import (
	"github.com/KenKundert/ec/calc"
	"github.com/KenKundert/ec/format"
)

// All returns the full catalog in registration order. The order matters for
// the pattern actions: the first matching pattern wins, so the bare-name
// recall action must come last.
func All() []*calc.Action {
	ret := make([]*calc.Action, 0, 128)
	ret = append(ret, arithmeticActions()...)
	ret = append(ret, powerAndLogActions()...)
	ret = append(ret, trigActions()...)
	ret = append(ret, complexVectorActions()...)
	ret = append(ret, hyperbolicActions()...)
	ret = append(ret, decibelActions()...)
	ret = append(ret, constantActions()...)
	ret = append(ret, formatActions()...)
	ret = append(ret, variableActions()...)
	ret = append(ret, stackActions()...)
	ret = append(ret, miscActions()...)
	return ret
}

// PredefinedVariables seeds the heap. Rref is the reference resistance used
// by the dBm conversions; users may overwrite it.
func PredefinedVariables() map[string]calc.Value {
	return map[string]calc.Value{
		"Rref": calc.Real(50, "Ohms"),
	}
}

// DefaultFormat is the initial display configuration: SI scale factors with
// four digits of precision.
func DefaultFormat() *format.State {
	return format.New(format.SI, 4)
}

// handler adapters

func fromCmplx(z complex128, units string) calc.Value {
	return calc.Complex(real(z), imag(z), units)
}

// unaryOp adapts a whole-value function of x into a pop-1 push-1 handler.
func unaryOp(fn func(c *calc.Calculator, x calc.Value) (calc.Value, error)) calc.Handler {
	return func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
		v, err := fn(c, args[0])
		if err != nil {
			return nil, err
		}
		return []calc.Value{v}, nil
	}
}

// realUnary adapts a real function of x; complex operands are rejected and
// the result carries no units.
func realUnary(fn func(c *calc.Calculator, x float64) (float64, error)) calc.Handler {
	return unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
		if x.IsComplex() {
			return calc.Value{}, errComplex()
		}
		num, err := fn(c, x.Re)
		if err != nil {
			return calc.Value{}, err
		}
		return calc.Real(num, ""), nil
	})
}

// binaryOp adapts a function of (y, x) into a pop-2 push-1 handler.
func binaryOp(fn func(c *calc.Calculator, y, x calc.Value) (calc.Value, error)) calc.Handler {
	return func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
		v, err := fn(c, args[1], args[0])
		if err != nil {
			return nil, err
		}
		return []calc.Value{v}, nil
	}
}

// realBinary adapts a real function of (y, x), rejecting complex operands.
func realBinary(fn func(c *calc.Calculator, y, x float64) (float64, error)) calc.Handler {
	return binaryOp(func(c *calc.Calculator, y, x calc.Value) (calc.Value, error) {
		if x.IsComplex() || y.IsComplex() {
			return calc.Value{}, errComplex()
		}
		num, err := fn(c, y.Re, x.Re)
		if err != nil {
			return calc.Value{}, err
		}
		return calc.Real(num, ""), nil
	})
}

// dupOp adapts a function of x into a peek-and-push handler: the argument is
// observed, never consumed.
func dupOp(fn func(c *calc.Calculator, x calc.Value) (calc.Value, error)) calc.Handler {
	return func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
		v, err := fn(c, c.Stack().X())
		if err != nil {
			return nil, err
		}
		return []calc.Value{v}, nil
	}
}

// command adapts a stack-neutral procedure.
func command(fn func(c *calc.Calculator) error) calc.Handler {
	return func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
		return nil, fn(c)
	}
}

func errComplex() error {
	return calc.NewError(calc.ErrDomain, "function does not support a complex argument")
}

func domainError(format string, args ...interface{}) error {
	return calc.NewError(calc.ErrDomain, format, args...)
}
