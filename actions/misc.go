package actions

import (
	"github.com/KenKundert/ec"
	"github.com/KenKundert/ec/calc"
)

func miscActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Miscellaneous Commands"),
		{
			Pattern: `\A"(.*)"\z`,
			Name:    "units",
			Pop:     1, Push: 1,
			RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
				return []calc.Value{args[0].WithUnits(groups[0])}, nil
			},
			Description: `"units": attach units to the value of x`,
			Synopsis:    "x, ... => x units, ...",
			Summary:     "The units given between the quotes are attached to the value in the x register.",
		},
		{
			Pattern: `\A>(\S+)\z`,
			Name:    ">units",
			Pop:     1, Push: 1,
			RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
				v, err := c.ConvertUnits(args[0], groups[0])
				if err != nil {
					return nil, err
				}
				return []calc.Value{v}, nil
			},
			Description: ">units: convert the value of x to the given units",
			Synopsis:    "x, ... => x converted to units, ...",
			Summary:     "The value in the x register is converted to the units that follow the greater-than sign.",
		},
		{
			Pattern: "\\A`(.*)`\\z",
			Name:    "print",
			Pop:     0, Push: 0,
			RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
				c.PrintMessage(c.ExpandText(groups[0]))
				return nil, nil
			},
			Description: "`text`: print text",
			Summary: "The text between the backquotes is printed after expanding embedded codes. " +
				"$N or ${N} is replaced by the value of stack register N (0 is x), " +
				"$name or ${name} by the value of a variable, and $$ by a dollar sign. " +
				"An empty string prints the value of x.",
		},
		{
			Key: "help", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				printHelpSummary(c)
				return nil
			}),
			Description: "help: print a summary of all actions",
		},
		{
			Pattern: `\A\?(\S+)?\z`,
			Name:    "?",
			Pop:     0, Push: 0,
			RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
				if groups[0] == "" {
					printHelpTopics(c)
				} else {
					printHelpTopic(c, groups[0])
				}
				return nil, nil
			},
			Description: "?[topic]: detailed help on a particular topic",
			Summary: "A topic, in the form of a symbol or name, may follow the question mark, " +
				"in which case a detailed description of that topic is printed. " +
				"With no topic the available topics are listed.",
		},
		{
			Key: "about", Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.PrintMessage("EC: Engineering Calculator")
				c.PrintMessage("Version " + ec.Version + " (" + ec.VersionDate + ").")
				return nil
			}),
			Description: "about: print information about this calculator",
		},
		{
			Key: "quit", Aliases: []string{":q"}, Pop: 0, Push: 0,
			Run: command(func(c *calc.Calculator) error {
				c.RequestQuit()
				return nil
			}),
			Description: "quit: quit (:q or ^D also works)",
		},
	}
}
