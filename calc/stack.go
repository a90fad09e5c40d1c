package calc

// Stack holds the values the calculator operates on. The end of the slice is
// the top: register x is the last element, y the one before it. lastx is kept
// outside the main stack and records the x value seen just before the most
// recent stack-consuming action, whether or not that action succeeded.
type Stack struct {
	vals  []Value
	lastX Value
}

// Snapshot is an opaque copy of the stack state, good for rollback.
type Snapshot struct {
	vals  []Value
	lastX Value
}

func NewStack() *Stack {
	return &Stack{vals: make([]Value, 0)}
}

func (s *Stack) Push(v Value) {
	s.vals = append(s.vals, v)
}

// Pop removes and returns x. An empty stack yields the zero value, matching
// the forgiving register semantics of peek-style actions.
func (s *Stack) Pop() Value {
	if len(s.vals) == 0 {
		return Value{}
	}
	ret := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return ret
}

// PopN removes the top n values and returns them in popped order: element 0
// is x, element 1 is y, and so on.
func (s *Stack) PopN(n int) []Value {
	ret := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, s.Pop())
	}
	return ret
}

// PeekN returns the top n values in register order without removing them.
func (s *Stack) PeekN(n int) []Value {
	ret := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, _ := s.Peek(i)
		ret = append(ret, v)
	}
	return ret
}

// Peek returns the value of register reg (0 = x, 1 = y, ...).
func (s *Stack) Peek(reg int) (Value, bool) {
	if reg < 0 || reg >= len(s.vals) {
		return Value{}, false
	}
	return s.vals[len(s.vals)-1-reg], true
}

// X returns the top of the stack, or the zero value if the stack is empty.
func (s *Stack) X() Value {
	v, _ := s.Peek(0)
	return v
}

func (s *Stack) Depth() int {
	return len(s.vals)
}

func (s *Stack) Clear() {
	s.vals = s.vals[:0]
}

// Values returns a copy of the stack from bottom to top, for display.
func (s *Stack) Values() []Value {
	ret := make([]Value, len(s.vals))
	copy(ret, s.vals)
	return ret
}

func (s *Stack) LastX() Value {
	return s.lastX
}

func (s *Stack) setLastX(v Value) {
	s.lastX = v
}

func (s *Stack) Snapshot() Snapshot {
	vals := make([]Value, len(s.vals))
	copy(vals, s.vals)
	return Snapshot{vals: vals, lastX: s.lastX}
}

func (s *Stack) Restore(snap Snapshot) {
	s.vals = make([]Value, len(snap.vals))
	copy(s.vals, snap.vals)
	s.lastX = snap.lastX
}
