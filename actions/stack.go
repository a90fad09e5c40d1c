package actions

import (
	"github.com/KenKundert/ec/calc"
)

func stackActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Stack Commands"),
		{
			Key: "swap", Pop: 2, Push: 2,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				// both values keep their units
				return []calc.Value{args[0], args[1]}, nil
			},
			Description: "swap: swap x and y",
			Synopsis:    "x, y, ... => y, x, ...",
			Summary:     "The values in the x and y registers are swapped.",
		},
		{
			Key: "dup", Aliases: []string{"enter"}, Pop: 0, Push: 1,
			Run: dupOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				return x, nil
			}),
			Description: "dup: duplicate x",
			Synopsis:    "x, ... => x, x, ...",
			Summary:     "The value in the x register is pushed onto the stack again.",
		},
		{
			Key: "pop", Aliases: []string{"clrx"}, Pop: 1, Push: 0,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				return nil, nil
			},
			Description: "pop: discard value of x",
			Synopsis:    "x, ... => ...",
			Summary:     "The value in the x register is pulled from the stack and discarded.",
		},
		{
			Key: "lastx", Pop: 0, Push: 1,
			Run: func(c *calc.Calculator, args []calc.Value) ([]calc.Value, error) {
				return []calc.Value{c.Stack().LastX()}, nil
			},
			Description: "lastx: recall last value of x",
			Synopsis:    "... => lastx, ...",
			Summary:     "The previous value of the x register is pushed onto the stack.",
		},
		{
			Key: "stack", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				vals := c.Stack().Values()
				for i, v := range vals {
					label := "  "
					switch len(vals) - i {
					case 1:
						label = "x:"
					case 2:
						label = "y:"
					}
					c.PrintMessage("  " + label + " " + c.Format(v))
				}
				return nil
			}),
			Description: "stack: print stack",
			Summary:     "Print all the values stored on the stack.",
		},
		{
			Key: "clstack", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.Stack().Clear()
				return nil
			}),
			Description: "clstack: clear stack",
			Synopsis:    "... =>",
			Summary:     "Remove all values from the stack.",
		},
	}
}
