package engine

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/wippyai/thread-launch/errors"
)

// GoroutineEngine is an Engine backed by the Go scheduler. One goroutine is
// started per Create call.
type GoroutineEngine struct {
	max    int
	active atomic.Int64
}

// Option configures a GoroutineEngine.
type Option func(*GoroutineEngine)

// WithMaxThreads caps the number of concurrently running threads. Create
// fails with an exhausted error while the cap is reached. Zero or negative
// means unlimited.
func WithMaxThreads(n int) Option {
	return func(e *GoroutineEngine) {
		e.max = n
	}
}

// NewGoroutineEngine creates a goroutine-backed engine.
func NewGoroutineEngine(opts ...Option) *GoroutineEngine {
	e := &GoroutineEngine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Active returns the number of threads currently running.
func (e *GoroutineEngine) Active() int64 {
	return e.active.Load()
}

// Create starts entry(arg) on a new goroutine and populates t. It returns an
// exhausted error when the thread ceiling is reached; the entry has not been
// started in that case.
func (e *GoroutineEngine) Create(t *Thread, attr *Attr, entry Entry, arg any) error {
	if t == nil {
		return errors.InvalidInput(errors.PhaseCreate, "nil thread handle")
	}
	if entry == nil {
		return errors.InvalidInput(errors.PhaseCreate, "nil entry function")
	}
	if attr == nil {
		attr = &defaultAttr
	}

	if e.max > 0 {
		for {
			n := e.active.Load()
			if n >= int64(e.max) {
				return errors.Exhausted(errors.PhaseCreate, "%d of %d threads active", n, e.max)
			}
			if e.active.CompareAndSwap(n, n+1) {
				break
			}
		}
	} else {
		e.active.Inc()
	}

	t.reset(attr)
	Logger().Debug("thread created",
		zap.String("name", attr.Name),
		zap.Bool("detached", attr.Detached),
		zap.Int64("active", e.active.Load()))

	go func() {
		result := entry(arg)
		e.active.Dec()
		t.finish(result)
	}()

	return nil
}
