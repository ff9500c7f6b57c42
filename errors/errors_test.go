package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseCreate,
				Kind:   KindExhausted,
				Detail: "64 threads active",
			},
			contains: []string{"[create]", "exhausted", "64 threads active"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseJoin,
				Kind:  KindAlreadyJoined,
			},
			contains: []string{"[join]", "already_joined"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidData,
				Detail: "parse profiles.yaml",
				Cause:  errors.New("yaml: line 3"),
			},
			contains: []string{"[config]", "invalid_data", "parse profiles.yaml", "caused by", "yaml: line 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseConfig,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not traverse to cause")
	}
}

func TestError_Is(t *testing.T) {
	err := Exhausted(PhaseCreate, "limit %d reached", 8)

	if !errors.Is(err, &Error{Phase: PhaseCreate, Kind: KindExhausted}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseJoin, Kind: KindExhausted}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseCreate, Kind: KindInvalidInput}) {
		t.Error("Is should not match different kind")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"Exhausted", Exhausted(PhaseCreate, "full"), PhaseCreate, KindExhausted},
		{"InvalidInput", InvalidInput(PhaseConfig, "empty name"), PhaseConfig, KindInvalidInput},
		{"NotStarted", NotStarted(), PhaseJoin, KindNotStarted},
		{"AlreadyJoined", AlreadyJoined(), PhaseJoin, KindAlreadyJoined},
		{"Detached", Detached(), PhaseJoin, KindDetached},
		{"NotFound", NotFound(PhaseConfig, "profile", "ingest"), PhaseConfig, KindNotFound},
		{"ParseFailed", ParseFailed("profiles.yaml", errors.New("bad")), PhaseConfig, KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}
}

func TestNotFound_Detail(t *testing.T) {
	err := NotFound(PhaseConfig, "profile", "ingest")
	if !strings.Contains(err.Error(), `profile "ingest" not found`) {
		t.Errorf("unexpected detail: %s", err.Error())
	}
}
