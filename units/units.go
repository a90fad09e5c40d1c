// Package units converts values between unit pairs using affine rules:
// to = slope*from + intercept. Rules are symmetric (the inverse transform is
// applied when the lookup runs against the rule's direction) and single-hop:
// no chaining through intermediate units is ever attempted.
package units

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Rule relates two canonical units, each with a set of alias spellings.
type Rule struct {
	From      []string `yaml:"from"`
	To        []string `yaml:"to"`
	Slope     float64  `yaml:"slope"`
	Intercept float64  `yaml:"intercept"`
}

func (r Rule) matchesFrom(unit string) bool { return contains(r.From, unit) }
func (r Rule) matchesTo(unit string) bool   { return contains(r.To, unit) }

func contains(aliases []string, unit string) bool {
	for _, a := range aliases {
		if a == unit {
			return true
		}
	}
	return false
}

// NoRuleError reports a conversion request with no registered rule.
type NoRuleError struct {
	From, To string
}

func (e *NoRuleError) Error() string {
	from := e.From
	if from == "" {
		from = "(none)"
	}
	return fmt.Sprintf("no conversion from %s to %s", from, e.To)
}

// Converter is the rule registry.
type Converter struct {
	rules []Rule
}

func NewConverter(rules ...Rule) *Converter {
	c := &Converter{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		c.Add(r)
	}
	return c
}

func (c *Converter) Add(r Rule) {
	if r.Slope == 0 {
		r.Slope = 1
	}
	c.rules = append(c.rules, r)
}

// Rules returns the registered rules, for enumeration in tests and listings.
func (c *Converter) Rules() []Rule {
	ret := make([]Rule, len(c.rules))
	copy(ret, c.rules)
	return ret
}

// Convert maps value from one unit to another. Converting a unit to itself
// is the identity even without a rule.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	for _, r := range c.rules {
		if r.matchesFrom(from) && r.matchesTo(to) {
			return r.Slope*value + r.Intercept, nil
		}
		if r.matchesFrom(to) && r.matchesTo(from) {
			return (value - r.Intercept) / r.Slope, nil
		}
	}
	return 0, &NoRuleError{From: from, To: to}
}

// LoadRules reads a YAML rule list, the same schema as the embedded default
// table.
func LoadRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&rules); err != nil {
		return nil, fmt.Errorf("unit rules: %w", err)
	}
	for i := range rules {
		if len(rules[i].From) == 0 || len(rules[i].To) == 0 {
			return nil, fmt.Errorf("unit rules: rule %d lacks unit names", i)
		}
	}
	return rules, nil
}
