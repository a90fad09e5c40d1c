package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var printArgRe = regexp.MustCompile(`\$\{?(\w+|\$)\}?`)

// ExpandText interpolates a back-quoted print directive. $N and ${N} are
// replaced with the rendered value of stack register N (0 = x), $name and
// ${name} with the rendered value of a variable, and $$ with a literal
// dollar sign. An empty directive renders the x register.
func (c *Calculator) ExpandText(text string) string {
	if text == "" {
		return c.Format(c.stack.X())
	}
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "\t")

	var out strings.Builder
	prev := 0
	for _, loc := range printArgRe.FindAllStringSubmatchIndex(text, -1) {
		out.WriteString(text[prev:loc[0]])
		out.WriteString(c.expandArg(text[loc[2]:loc[3]]))
		prev = loc[1]
	}
	out.WriteString(text[prev:])
	return out.String()
}

func (c *Calculator) expandArg(arg string) string {
	if arg == "$" {
		return "$"
	}
	if reg, err := strconv.Atoi(arg); err == nil {
		if v, ok := c.stack.Peek(reg); ok {
			return c.Format(v)
		}
	} else if v, ok := c.heap.Recall(arg); ok {
		return c.Format(v)
	}
	c.PrintWarning("$" + arg + ": unknown.")
	return "$?" + arg + "?"
}
