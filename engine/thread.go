package engine

import (
	"go.uber.org/atomic"

	"github.com/wippyai/thread-launch/errors"
)

// Thread is a handle to one created thread. The zero value is an unstarted
// handle; an Engine populates it during Create. A joined handle may be
// reused for a later Create.
//
// Thread is safe to Join from one goroutine while the thread runs; it is not
// meant to be shared between multiple joiners.
type Thread struct {
	name     string
	detached bool
	done     chan struct{}
	result   any
	started  atomic.Bool
	joined   atomic.Bool
}

// Name returns the label the thread was created with.
func (t *Thread) Name() string { return t.name }

// Started reports whether an Engine has populated this handle.
func (t *Thread) Started() bool { return t.started.Load() }

// Detached reports whether the thread was created detached.
func (t *Thread) Detached() bool { return t.detached }

// Join blocks until the thread's entry function returns and yields its
// opaque result. Joining an unstarted handle, a detached handle, or a handle
// that was already joined is an error.
func (t *Thread) Join() (any, error) {
	if !t.started.Load() {
		return nil, errors.NotStarted()
	}
	if t.detached {
		return nil, errors.Detached()
	}
	if !t.joined.CompareAndSwap(false, true) {
		return nil, errors.AlreadyJoined()
	}
	<-t.done
	return t.result, nil
}

// reset prepares the handle for a new thread. Called by engines before the
// new thread exists, so no concurrent access is possible yet.
func (t *Thread) reset(attr *Attr) {
	t.name = attr.Name
	t.detached = attr.Detached
	t.done = make(chan struct{})
	t.result = nil
	t.joined.Store(false)
	t.started.Store(true)
}

// finish records the entry's result and releases joiners. Called exactly
// once, from the thread itself.
func (t *Thread) finish(result any) {
	t.result = result
	close(t.done)
}
