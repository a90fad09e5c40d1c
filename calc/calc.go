package calc

import (
	"math"
	"strings"

	"github.com/gammazero/deque"
	"go.uber.org/zap"

	"github.com/KenKundert/ec"
	"github.com/KenKundert/ec/format"
	"github.com/KenKundert/ec/units"
)

// MaxMacroExpansions bounds the nesting depth of macro inlinings. Sequential
// invocations of the same macro do not accumulate; self-referential macros
// hit this limit instead of spinning forever.
const MaxMacroExpansions = 256

// macroEndMarker is spliced after a macro body to credit the depth counter
// back once the body has drained. A lone NUL byte is not a token any
// ordinary input line produces.
const macroEndMarker = "\x00"

// AngleMode selects the unit of angles consumed and produced by the
// trigonometric actions.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

// ConstantSystem selects which unit system the physical constants use.
type ConstantSystem int

const (
	MKS ConstantSystem = iota
	CGS
)

// Config carries the pure data a Calculator is built from: the action
// catalog, the initial format state, pre-seeded variables and the unit
// conversion rules. The core imposes nothing on how they are produced.
type Config struct {
	Actions   []*Action
	Formatter *format.State
	Variables map[string]Value
	Units     *units.Converter

	// BackUpStack makes Evaluate snapshot the stack before each line so an
	// interactive caller can roll back after an error.
	BackUpStack bool

	MessagePrinter func(string)
	WarningPrinter func(string)
	Log            *zap.SugaredLogger
}

// Calculator is one interpreter instance. All state is owned exclusively by
// the instance; it expects a single caller goroutine and does no locking.
type Calculator struct {
	reg    *Registry
	stack  *Stack
	heap   *Heap
	macros *MacroTable
	fmtr   *format.State
	conv   *units.Converter

	angle       AngleMode
	toRadians   float64
	constantSys ConstantSystem
	backUp      bool
	prev        *Snapshot
	expansions  int
	msgPrinter  func(string)
	warnPrinter func(string)
	log         *zap.SugaredLogger
	quit        bool
}

func New(cfg Config) *Calculator {
	c := &Calculator{
		reg:         NewRegistry(cfg.Actions),
		stack:       NewStack(),
		macros:      NewMacroTable(),
		fmtr:        cfg.Formatter,
		conv:        cfg.Units,
		backUp:      cfg.BackUpStack,
		msgPrinter:  cfg.MessagePrinter,
		warnPrinter: cfg.WarningPrinter,
		log:         cfg.Log,
	}
	if c.fmtr == nil {
		c.fmtr = format.New(format.SI, 4)
	}
	if c.conv == nil {
		c.conv = units.NewConverter()
	}
	vars := make(map[string]Value, len(cfg.Variables))
	for name, v := range cfg.Variables {
		vars[name] = v
	}
	c.heap = NewHeap(vars)
	c.UseDegrees()
	return c
}

// Split is the tokenizer, exposed so the caller can echo tokens.
func (c *Calculator) Split(line string) ([]string, error) {
	return Split(line)
}

// Evaluate tokenizes one line and dispatches its tokens in order. On success
// it returns the rendered x register. On failure the error describes what
// went wrong; in backup mode the caller may then RestoreStack.
func (c *Calculator) Evaluate(line string) (string, error) {
	// the snapshot must cover tokenization failures too, so a later
	// RestoreStack cannot resurrect state from an earlier line
	if c.backUp {
		snap := c.stack.Snapshot()
		c.prev = &snap
	}
	tokens, err := Split(line)
	if err != nil {
		return "", err
	}
	var queue deque.Deque[string]
	for _, tok := range tokens {
		queue.PushBack(tok)
	}
	c.expansions = 0
	for queue.Len() > 0 {
		tok := queue.PopFront()
		if err := c.dispatch(tok, &queue); err != nil {
			return "", err
		}
	}
	return c.Format(c.stack.X()), nil
}

// dispatch resolves one token. Resolution order: exact key, macro, number
// literal, pattern actions in registration order.
func (c *Calculator) dispatch(tok string, queue *deque.Deque[string]) error {
	if tok == macroEndMarker {
		c.expansions--
		return nil
	}
	if strings.HasPrefix(tok, "(") {
		return c.defineMacro(tok)
	}
	if a, ok := c.reg.Lookup(tok); ok {
		if c.log != nil {
			c.log.Debugf("%s: action", tok)
		}
		return c.invoke(a, nil)
	}
	if body, ok := c.macros.Lookup(tok); ok {
		c.expansions++
		if c.expansions > MaxMacroExpansions {
			return newError(ErrMacroRecursionLimit, "%s: macro expansion too deep", tok)
		}
		if c.log != nil {
			c.log.Debugf("%s: macro, splicing %d tokens", tok, len(body))
		}
		queue.PushFront(macroEndMarker)
		for i := len(body) - 1; i >= 0; i-- {
			queue.PushFront(body[i])
		}
		return nil
	}
	v, isNum, err := ParseNumber(tok)
	if err != nil {
		return err
	}
	if isNum {
		c.stack.Push(v)
		return nil
	}
	if a, groups, ok := c.reg.Match(tok); ok {
		return c.invoke(a, groups)
	}
	return newError(ErrUnknownToken, "%s: unrecognized", tok)
}

// invoke runs one action with the atomic commit discipline: the arity is
// checked up front, operands are peeked rather than popped, and the declared
// pop/push effect is committed only after the handler succeeds. lastx is
// updated before any consuming handler runs, even one that then fails.
func (c *Calculator) invoke(a *Action, groups []string) error {
	if c.stack.Depth() < a.Pop {
		return newError(ErrInsufficientOperands,
			"%s: too few values on the stack", a.PrimaryName())
	}
	if a.Pop >= 1 {
		c.stack.setLastX(c.stack.X())
	}
	args := c.stack.PeekN(a.Pop)
	var outs []Value
	err := ec.CatchPanicOrError(func() error {
		var runErr error
		if a.RunMatch != nil {
			outs, runErr = a.RunMatch(c, groups, args)
		} else {
			outs, runErr = a.Run(c, args)
		}
		return runErr
	})
	if err != nil {
		if _, ok := err.(*CalcError); !ok {
			err = newError(ErrDomain, "%s: %s", a.PrimaryName(), err.Error())
		}
		return err
	}
	c.stack.PopN(a.Pop)
	for _, v := range outs {
		c.stack.Push(v)
	}
	return nil
}

// defineMacro handles a "(tokens...)name" definition token. The body is
// tokenized recursively and recorded verbatim; nothing is evaluated now.
func (c *Calculator) defineMacro(tok string) error {
	closing := -1
	depth := 0
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			closing = i
			break
		}
	}
	if closing < 0 || closing+1 >= len(tok) {
		return newError(ErrSyntax, "%s: malformed macro definition", tok)
	}
	name := tok[closing+1:]
	body, err := Split(tok[1:closing])
	if err != nil {
		return err
	}
	c.macros.Define(name, body)
	return nil
}

// Format renders a value using the persistent format state, honoring any
// per-value notation override.
func (c *Calculator) Format(v Value) string {
	return c.fmtr.Format(v.Re, v.Im, v.Units, v.Notation)
}

// SnapshotStack exposes stack snapshots for the caller's own rollback
// orchestration.
func (c *Calculator) SnapshotStack() Snapshot {
	return c.stack.Snapshot()
}

// RestoreStack rolls back to the snapshot taken before the last Evaluate and
// returns the rendered x register, ready to be used as the next prompt.
func (c *Calculator) RestoreStack() string {
	if c.prev != nil {
		c.stack.Restore(*c.prev)
	}
	return c.Format(c.stack.X())
}

// RestoreTo rolls back to an explicitly taken snapshot.
func (c *Calculator) RestoreTo(snap Snapshot) {
	c.stack.Restore(snap)
}

// ClearStack empties the stack and discards any rollback snapshot, leaving
// the heap, format state and modes alone. Used by the front end between
// configuration phases so rc-file settings survive.
func (c *Calculator) ClearStack() {
	c.stack.Clear()
	c.prev = nil
}

// Clear resets the interpreter: the stack, the heap, the format state and
// the angle mode.
func (c *Calculator) Clear() {
	c.stack.Clear()
	c.prev = nil
	c.heap.Clear()
	c.fmtr.Reset()
	c.UseDegrees()
}

// StoreVariable binds name to v, shadowing and removing a built-in action of
// the same name the way the original calculator does.
func (c *Calculator) StoreVariable(name string, v Value) {
	if c.reg.Reserved(name) {
		c.PrintWarning(name + ": variable has overridden built-in.")
		c.reg.Remove(name)
	}
	c.heap.Store(name, v)
}

// ConvertUnits converts x's units to the target unit via the affine rule
// registry. Single hop only; no registered rule is a UnitMismatch.
func (c *Calculator) ConvertUnits(v Value, target string) (Value, error) {
	if v.IsComplex() {
		return Value{}, newError(ErrDomain, "cannot convert units of a complex value")
	}
	num, err := c.conv.Convert(v.Re, v.Units, target)
	if err != nil {
		return Value{}, newError(ErrUnitMismatch, "%s", err.Error())
	}
	return Real(num, target), nil
}

func (c *Calculator) UseRadians() {
	c.angle = Radians
	c.toRadians = 1
}

func (c *Calculator) UseDegrees() {
	c.angle = Degrees
	c.toRadians = math.Pi / 180
}

func (c *Calculator) AngleMode() AngleMode {
	return c.angle
}

// AngleUnits names the current angle unit, used as the units annotation of
// angle-producing actions.
func (c *Calculator) AngleUnits() string {
	if c.angle == Radians {
		return "rads"
	}
	return "degs"
}

// ToRadians converts an angle from the current mode into radians.
func (c *Calculator) ToRadians(x float64) float64 {
	return x * c.toRadians
}

// FromRadians converts an angle in radians into the current mode.
func (c *Calculator) FromRadians(x float64) float64 {
	return x / c.toRadians
}

func (c *Calculator) UseMKS() {
	c.constantSys = MKS
}

func (c *Calculator) UseCGS() {
	c.constantSys = CGS
}

func (c *Calculator) ConstantSystem() ConstantSystem {
	return c.constantSys
}

func (c *Calculator) Stack() *Stack            { return c.stack }
func (c *Calculator) Heap() *Heap              { return c.heap }
func (c *Calculator) Macros() *MacroTable      { return c.macros }
func (c *Calculator) Formatter() *format.State { return c.fmtr }
func (c *Calculator) Units() *units.Converter  { return c.conv }
func (c *Calculator) Actions() []*Action       { return c.reg.Actions() }

// RequestQuit marks the session as finished. The core never exits the
// process; the front end polls QuitRequested after each line.
func (c *Calculator) RequestQuit() {
	c.quit = true
}

func (c *Calculator) QuitRequested() bool {
	return c.quit
}

// PrintMessage delivers a line of ordinary output to the user.
func (c *Calculator) PrintMessage(msg string) {
	if c.msgPrinter != nil {
		c.msgPrinter(msg)
	}
}

// PrintWarning delivers a warning to the user.
func (c *Calculator) PrintWarning(msg string) {
	if c.warnPrinter != nil {
		c.warnPrinter(msg)
		return
	}
	if c.log != nil {
		c.log.Warnf("%s", msg)
	}
}
