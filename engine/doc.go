// Package engine provides the thread-creation primitive the launch adapter
// builds on.
//
// The calling convention is deliberately narrow, mirroring native thread
// primitives: an Engine accepts an entry function taking a single opaque
// argument and returning a single opaque result, plus a caller-allocated
// Thread slot it populates on success. Everything typed lives above this
// boundary, in the launch package.
//
// GoroutineEngine is the production implementation, backed by the Go
// scheduler. Creation is synchronous and never blocks: with a configured
// thread ceiling, Create fails immediately with an exhausted error instead
// of queueing.
//
// # Memory ordering
//
// Create establishes the only ordering guarantee: values written before the
// call are visible to the entry function on the new thread. No ordering
// exists between the creating thread's continuation and the new thread, nor
// between threads created concurrently.
package engine
