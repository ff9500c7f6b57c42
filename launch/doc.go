// Package launch provides the high-level API: generic adapters that run a
// method of an object on its own thread through an engine.Engine.
//
// # Quick Start
//
//	eng := engine.NewGoroutineEngine()
//	l := launch.New(eng)
//
//	c := &Counter{}
//	var t engine.Thread
//	if err := launch.Launch(l, &t, nil, c, (*Counter).Increment); err != nil {
//	    log.Fatal(err)
//	}
//	t.Join()
//
// With a single argument:
//
//	s := &Sink{}
//	var t engine.Thread
//	if err := launch.LaunchArg(l, &t, nil, s, (*Sink).Store, 42); err != nil {
//	    log.Fatal(err)
//	}
//	t.Join()
//
// Launch and LaunchArg are package-level functions rather than Launcher
// methods because Go methods cannot introduce type parameters.
//
// # Contract
//
// Each call allocates one bound-call closure, hands it to the engine
// type-erased behind the engine's entry-function convention, and returns the
// engine's error unchanged. On success the new thread owns the closure: the
// trampoline invokes the bound method and releases the closure exactly once
// after the method returns, discarding any result. On creation failure the
// closure is released before Launch returns and the thread slot is left
// unspecified.
//
// The adapter never interprets the target, the method, or the argument. It
// does not own the target: keeping the target alive and unshared for the
// duration of the launched call is the caller's obligation. A method that
// panics propagates per Go's usual rules and terminates the process; the
// trampoline does not recover.
package launch
