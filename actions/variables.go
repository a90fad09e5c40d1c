package actions

import (
	"github.com/KenKundert/ec/calc"
)

func variableActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Variable Commands"),
		{
			Pattern: `\A=([a-zA-Z]\w*)\z`,
			Name:    "=name",
			Pop:     0, Push: 0,
			RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
				c.StoreVariable(groups[0], c.Stack().X())
				return nil, nil
			},
			Description: "=name: store value of x into a variable",
			Synopsis:    "x, ... => x, ...",
			Summary:     "Store the value in the x register into a variable with the given name.",
		},
		{
			Key: "vars", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				for _, name := range c.Heap().Names() {
					v, _ := c.Heap().Recall(name)
					c.PrintMessage("  " + name + ": " + c.Format(v))
				}
				return nil
			}),
			Description: "vars: print variables",
			Summary:     "List all defined variables and their values.",
		},
		{
			// tried after every other pattern, so any leftover identifier is
			// treated as a variable reference
			Pattern: `\A([a-zA-Z]\w*)\z`,
			Name:    "name",
			Pop:     0, Push: 1,
			RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
				v, ok := c.Heap().Recall(groups[0])
				if !ok {
					return nil, calc.NewError(calc.ErrUnknownToken, "%s: variable does not exist", groups[0])
				}
				return []calc.Value{v}, nil
			},
			Description: "name: recall value of a variable",
			Synopsis:    "... => name, ...",
			Summary:     "Place the value of the variable with the given name into the x register.",
		},
	}
}
