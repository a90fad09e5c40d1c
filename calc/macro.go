package calc

import "sort"

// MacroTable records user-defined functions: a name bound to the token
// sequence captured verbatim at definition time. Invocation is pure textual
// inlining, so recursive definitions are legal and are cut off by the
// expansion depth guard in the dispatcher.
type MacroTable struct {
	macros map[string][]string
}

func NewMacroTable() *MacroTable {
	return &MacroTable{macros: make(map[string][]string)}
}

// Define records the body for name, replacing any earlier definition.
func (m *MacroTable) Define(name string, tokens []string) {
	body := make([]string, len(tokens))
	copy(body, tokens)
	m.macros[name] = body
}

func (m *MacroTable) Lookup(name string) ([]string, bool) {
	body, ok := m.macros[name]
	return body, ok
}

func (m *MacroTable) Names() []string {
	ret := make([]string, 0, len(m.macros))
	for name := range m.macros {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
