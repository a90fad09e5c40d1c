package calc

import "sort"

// Heap is the calculator's long term storage: named values. Variables may
// shadow built-in action names; the calculator removes the shadowed action
// from its registry when that happens.
type Heap struct {
	vars    map[string]Value
	initial map[string]Value
}

func NewHeap(initial map[string]Value) *Heap {
	h := &Heap{initial: initial}
	h.Clear()
	return h
}

func (h *Heap) Store(name string, v Value) {
	h.vars[name] = v
}

func (h *Heap) Recall(name string) (Value, bool) {
	v, ok := h.vars[name]
	return v, ok
}

func (h *Heap) Has(name string) bool {
	_, ok := h.vars[name]
	return ok
}

// Clear resets the heap to its pre-seeded bindings.
func (h *Heap) Clear() {
	h.vars = make(map[string]Value, len(h.initial))
	for name, v := range h.initial {
		h.vars[name] = v
	}
}

// Names returns all bound names sorted alphabetically.
func (h *Heap) Names() []string {
	ret := make([]string, 0, len(h.vars))
	for name := range h.vars {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
