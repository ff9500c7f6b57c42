// Package errors provides structured error types for the thread-launch
// library.
//
// Errors carry a Phase (where in processing the failure occurred) and a Kind
// (what category of failure it is), so callers can match with errors.Is
// without string comparison:
//
//	var t engine.Thread
//	if err := launch.Launch(l, &t, nil, target, (*Worker).Run); err != nil {
//	    if errors.Is(err, &tlerrors.Error{Phase: tlerrors.PhaseCreate, Kind: tlerrors.KindExhausted}) {
//	        // back off and retry
//	    }
//	}
//
// The launch package itself never synthesizes errors: creation failures are
// the engine's own errors, forwarded unchanged.
package errors
