package launch

import "go.uber.org/atomic"

// A bound-call closure is written by the launching goroutine, handed to the
// engine as the opaque entry argument, then read and released by the new
// thread; there is no concurrent access window. The two variants make
// "exactly one of nullary/unary is set" structural instead of a runtime
// convention.

// nullaryCall carries a bound call without an argument.
type nullaryCall[T any] struct {
	launcher *Launcher
	target   *T
	start    func(*T)
	released atomic.Bool
}

func (c *nullaryCall[T]) release() {
	if c.released.CompareAndSwap(false, true) {
		c.launcher.closuresReleased.Inc()
	}
}

// unaryCall carries a bound call plus its single argument.
type unaryCall[T any, A any] struct {
	launcher *Launcher
	target   *T
	start    func(*T, A)
	arg      A
	released atomic.Bool
}

func (c *unaryCall[T, A]) release() {
	if c.released.CompareAndSwap(false, true) {
		c.launcher.closuresReleased.Inc()
	}
}

// nullaryTrampoline is the engine entry point for argument-less launches.
// The assertion is the single point where the opaque argument becomes typed
// again; it cannot fail because trampoline and closure are instantiated for
// the same T.
func nullaryTrampoline[T any](arg any) any {
	c := arg.(*nullaryCall[T])
	c.start(c.target)
	c.release()
	c.launcher.noteCompleted()
	return nil
}

// unaryTrampoline is the engine entry point for launches with an argument.
func unaryTrampoline[T any, A any](arg any) any {
	c := arg.(*unaryCall[T, A])
	c.start(c.target, c.arg)
	c.release()
	c.launcher.noteCompleted()
	return nil
}
