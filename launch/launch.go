package launch

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	threadlaunch "github.com/wippyai/thread-launch"
	"github.com/wippyai/thread-launch/engine"
)

// Launcher binds an engine to launch accounting. Safe for concurrent use.
type Launcher struct {
	engine   engine.Engine
	observer threadlaunch.Observer

	launched          atomic.Int64
	createFailures    atomic.Int64
	completed         atomic.Int64
	closuresAllocated atomic.Int64
	closuresReleased  atomic.Int64
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithObserver attaches a lifecycle observer, e.g. a metrics exporter.
func WithObserver(o threadlaunch.Observer) Option {
	return func(l *Launcher) {
		l.observer = o
	}
}

// New creates a Launcher on top of eng.
func New(eng engine.Engine, opts ...Option) *Launcher {
	l := &Launcher{
		engine:   eng,
		observer: threadlaunch.NopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stats is a point-in-time snapshot of launcher accounting.
type Stats struct {
	Launched          int64
	CreateFailures    int64
	Completed         int64
	ClosuresAllocated int64
	ClosuresReleased  int64
}

// Stats returns current accounting. Across N successful, joined launches,
// ClosuresAllocated and ClosuresReleased both equal N.
func (l *Launcher) Stats() Stats {
	return Stats{
		Launched:          l.launched.Load(),
		CreateFailures:    l.createFailures.Load(),
		Completed:         l.completed.Load(),
		ClosuresAllocated: l.closuresAllocated.Load(),
		ClosuresReleased:  l.closuresReleased.Load(),
	}
}

// Launch runs start(target) on a new thread. attr is forwarded to the engine
// verbatim; nil requests defaults. On success t is populated and the caller
// must eventually join it (unless attr is detached). On failure the engine's
// error is returned unchanged and t's contents are unspecified.
func Launch[T any](l *Launcher, t *engine.Thread, attr *engine.Attr, target *T, start func(*T)) error {
	c := &nullaryCall[T]{launcher: l, target: target, start: start}
	l.closuresAllocated.Inc()

	if err := l.engine.Create(t, attr, nullaryTrampoline[T], c); err != nil {
		c.release()
		l.noteCreateFailed(err)
		return err
	}
	l.noteLaunched(attr)
	return nil
}

// LaunchArg runs start(target, arg) on a new thread. The argument is carried
// into the bound call without being interpreted, copied, or validated; its
// meaning and lifetime are the caller's responsibility. Instantiate A as any
// for a fully opaque slot. Otherwise identical to Launch.
func LaunchArg[T any, A any](l *Launcher, t *engine.Thread, attr *engine.Attr, target *T, start func(*T, A), arg A) error {
	c := &unaryCall[T, A]{launcher: l, target: target, start: start, arg: arg}
	l.closuresAllocated.Inc()

	if err := l.engine.Create(t, attr, unaryTrampoline[T, A], c); err != nil {
		c.release()
		l.noteCreateFailed(err)
		return err
	}
	l.noteLaunched(attr)
	return nil
}

func (l *Launcher) noteLaunched(attr *engine.Attr) {
	l.launched.Inc()
	l.observer.Launched()
	if attr != nil && attr.Name != "" {
		Logger().Debug("launched", zap.String("name", attr.Name))
	}
}

func (l *Launcher) noteCreateFailed(err error) {
	l.createFailures.Inc()
	l.observer.CreateFailed()
	Logger().Warn("thread creation failed", zap.Error(err))
}

func (l *Launcher) noteCompleted() {
	l.completed.Inc()
	l.observer.Completed()
}
