// Package threadlaunch adapts strongly-typed "run this method of this object
// on a new thread" requests onto a native-style thread-creation primitive
// that only understands an entry function plus a single opaque argument.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	threadlaunch/        Root package with the Observer lifecycle interface
//	├── launch/          High-level generic launch adapter (the public API)
//	├── engine/          Thread-creation primitive: Engine, Thread, Attr
//	├── config/          YAML launch profiles and engine configuration
//	├── metrics/         Prometheus exporter for launcher lifecycle events
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Launch a method of a value on its own thread and join it:
//
//	eng := engine.NewGoroutineEngine()
//	l := launch.New(eng)
//
//	var t engine.Thread
//	if err := launch.Launch(l, &t, nil, counter, (*Counter).Increment); err != nil {
//	    log.Fatal(err)
//	}
//	t.Join()
//
// Launch with a single argument:
//
//	var t engine.Thread
//	err := launch.LaunchArg(l, &t, nil, sink, (*Sink).Store, 42)
//
// # Ownership
//
// Each launch heap-allocates a bound-call closure that is handed to the new
// thread and released there exactly once, after the bound method returns. If
// thread creation fails, the launching goroutine releases the closure before
// returning the engine's error unchanged.
//
// The target object is never owned by this library. The caller must keep it
// alive until the launched method has returned; launching against a target
// that is concurrently mutated or recycled is a caller-level race.
//
// # Concurrency
//
// Launch returns as soon as creation has been requested. It never waits for
// the launched method. Joining is the caller's job, through the Thread handle
// the engine populated. The only ordering guarantee is the creation edge: the
// closure's fields, written before creation, are visible to the new thread.
package threadlaunch
