package engine

// Entry is the untyped calling convention an Engine understands: one opaque
// argument in, one opaque result out.
type Entry func(arg any) any

// Engine creates a new thread of control running entry(arg).
//
// On success the caller-allocated Thread slot is populated and the caller
// must eventually Join it (unless attr marks it detached). On failure the
// slot's contents are unspecified and the returned error is the engine's
// failure signal; implementations must not have started the entry.
//
// A nil attr requests default attributes.
type Engine interface {
	Create(t *Thread, attr *Attr, entry Entry, arg any) error
}

// Attr configures a thread at creation time. The launch adapter forwards it
// verbatim and never inspects it; interpretation belongs to the Engine.
type Attr struct {
	// Name labels the thread in logs and handles. Optional.
	Name string
	// Detached marks the thread as not joinable. Its handle reports
	// completion state but Join returns an error.
	Detached bool
}

var defaultAttr Attr
