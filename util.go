package ec

import "fmt"

// CatchPanicOrError runs f and converts any panic into an ordinary error.
// Numeric handlers are allowed to panic on bad input; the dispatcher traps
// the panic here so one misbehaving action cannot take down the interpreter.
func CatchPanicOrError(f func() error) error {
	var err error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}()
		err = f()
	}()
	return err
}
