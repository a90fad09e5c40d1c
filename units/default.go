package units

import (
	"bytes"
	_ "embed"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Default returns a converter loaded with the built-in rule table.
func Default() *Converter {
	rules, err := LoadRules(bytes.NewReader(defaultRulesYAML))
	if err != nil {
		panic(err)
	}
	return NewConverter(rules...)
}
