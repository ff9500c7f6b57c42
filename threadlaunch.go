package threadlaunch

// Observer receives launcher lifecycle events. Implementations must be safe
// for concurrent use; Completed is called from the launched thread.
type Observer interface {
	// Launched is called after the engine accepted a creation request.
	Launched()
	// CreateFailed is called when the engine rejected a creation request.
	CreateFailed()
	// Completed is called after a launched method returned.
	Completed()
}

// NopObserver is an Observer that ignores all events.
type NopObserver struct{}

func (NopObserver) Launched()     {}
func (NopObserver) CreateFailed() {}
func (NopObserver) Completed()    {}
