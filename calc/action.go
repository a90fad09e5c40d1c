package calc

import (
	"fmt"
	"regexp"
)

// Handler implements a fixed-arity action. args holds the operands in
// register order (args[0] is x, args[1] is y, ...); the returned values are
// pushed in order, so the last one becomes the new x. The stack itself is
// committed by the dispatcher: a handler that fails leaves it untouched.
type Handler func(c *Calculator, args []Value) ([]Value, error)

// MatchHandler implements a pattern action. groups are the submatches of the
// action's compiled pattern; args and results follow the Handler contract.
type MatchHandler func(c *Calculator, groups []string, args []Value) ([]Value, error)

// Action describes one operation of the catalog: either keyed by an exact
// literal (Key, plus Aliases), or by an anchored pattern tried in
// registration order. Pop/Push declare the stack arity.
type Action struct {
	Key     string
	Aliases []string
	Pattern string
	Name    string

	Pop, Push int
	Run       Handler
	RunMatch  MatchHandler

	Description string
	Synopsis    string
	Summary     string

	category bool
	regex    *regexp.Regexp
}

// NewCategory returns a pseudo-action that serves as a section header in the
// help listing and is never dispatched.
func NewCategory(description string) *Action {
	return &Action{Description: description, category: true}
}

func (a *Action) IsCategory() bool {
	return a.category
}

// PrimaryName returns the spelling used to identify the action in help.
func (a *Action) PrimaryName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Key
}

// Matches reports whether the given name is the action's key, name or alias.
func (a *Action) Matches(name string) bool {
	if name == "" {
		return false
	}
	if a.Key == name || a.Name == name {
		return true
	}
	for _, alias := range a.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}

// Registry holds the action catalog of one calculator instance, partitioned
// into an exact-key map and an ordered list of pattern actions.
type Registry struct {
	byKey   map[string]*Action
	matched []*Action
	all     []*Action
}

// NewRegistry compiles and indexes the catalog. Duplicate names are a
// programming error in the catalog and panic at construction.
func NewRegistry(actions []*Action) *Registry {
	r := &Registry{
		byKey:   make(map[string]*Action),
		matched: make([]*Action, 0),
		all:     make([]*Action, 0, len(actions)),
	}
	for _, a := range actions {
		r.all = append(r.all, a)
		switch {
		case a.category:
			// help section header only
		case a.Key != "":
			r.index(a.Key, a)
			for _, alias := range a.Aliases {
				r.index(alias, a)
			}
		case a.Pattern != "":
			a.regex = regexp.MustCompile(a.Pattern)
			r.matched = append(r.matched, a)
		default:
			panic(fmt.Errorf("action %q has neither key nor pattern", a.Name))
		}
	}
	return r
}

func (r *Registry) index(key string, a *Action) {
	if _, already := r.byKey[key]; already {
		panic(fmt.Errorf("%s: duplicate action name", key))
	}
	r.byKey[key] = a
}

// Lookup finds the exact-key action registered under name.
func (r *Registry) Lookup(name string) (*Action, bool) {
	a, ok := r.byKey[name]
	return a, ok
}

// Match tries the pattern actions in registration order and returns the first
// one whose pattern matches the token, with its submatches.
func (r *Registry) Match(tok string) (*Action, []string, bool) {
	for _, a := range r.matched {
		if m := a.regex.FindStringSubmatch(tok); m != nil {
			return a, m[1:], true
		}
	}
	return nil, nil, false
}

// Remove deletes the exact-key action registered under name, along with its
// aliases. Used when a variable shadows a built-in.
func (r *Registry) Remove(name string) {
	a, ok := r.byKey[name]
	if !ok {
		return
	}
	delete(r.byKey, a.Key)
	for _, alias := range a.Aliases {
		delete(r.byKey, alias)
	}
}

// Reserved reports whether name is taken by an exact-key action.
func (r *Registry) Reserved(name string) bool {
	_, ok := r.byKey[name]
	return ok
}

// Actions returns the full catalog in registration order, categories
// included. Used by the help machinery.
func (r *Registry) Actions() []*Action {
	return r.all
}
