package actions

import (
	"sort"
	"strings"

	"github.com/KenKundert/ec/calc"
)

func aliasNote(a *calc.Action) string {
	switch len(a.Aliases) {
	case 0:
		return ""
	case 1:
		return " (alias: " + a.Aliases[0] + ")"
	default:
		return " (aliases: " + strings.Join(a.Aliases, ",") + ")"
	}
}

// printHelpSummary prints a one line description of every action, grouped
// under its category header.
func printHelpSummary(c *calc.Calculator) {
	for _, a := range c.Actions() {
		if a.Description == "" {
			continue
		}
		if a.IsCategory() {
			c.PrintMessage("")
			c.PrintMessage(a.Description)
			continue
		}
		c.PrintMessage("    " + a.Description + aliasNote(a))
	}
}

// printHelpTopic prints the detailed description of one action.
func printHelpTopic(c *calc.Calculator, topic string) {
	for _, a := range c.Actions() {
		if a.IsCategory() || !a.Matches(topic) {
			continue
		}
		if a.Description != "" {
			c.PrintMessage(a.Description)
		} else {
			c.PrintMessage(a.PrimaryName() + ":")
		}
		if a.Summary != "" {
			c.PrintMessage("")
			c.PrintMessage(a.Summary)
		}
		if a.Synopsis != "" || len(a.Aliases) > 0 {
			c.PrintMessage("")
		}
		if a.Synopsis != "" {
			c.PrintMessage("stack: " + a.Synopsis)
		}
		switch len(a.Aliases) {
		case 0:
		case 1:
			c.PrintMessage("alias: " + a.Aliases[0])
		default:
			c.PrintMessage("aliases: " + strings.Join(a.Aliases, ","))
		}
		return
	}
	c.PrintWarning(topic + ": not found.")
}

// printHelpTopics lists the names of all help topics in columns.
func printHelpTopics(c *calc.Calculator) {
	topics := make([]string, 0, len(c.Actions()))
	width := 0
	for _, a := range c.Actions() {
		name := a.PrimaryName()
		if a.IsCategory() || name == "" {
			continue
		}
		topics = append(topics, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(topics)

	c.PrintMessage("For a summary of all topics, use 'help'.")
	c.PrintMessage("For help on a particular topic, use '?topic'.")
	c.PrintMessage("")
	c.PrintMessage("Available topics:")

	width += 3
	perLine := 78 / width
	if perLine < 1 {
		perLine = 1
	}
	var line strings.Builder
	for i, topic := range topics {
		line.WriteString(topic)
		if (i+1)%perLine == 0 || i == len(topics)-1 {
			c.PrintMessage(line.String())
			line.Reset()
		} else {
			line.WriteString(strings.Repeat(" ", width-len(topic)))
		}
	}
}
