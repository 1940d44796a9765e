package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(Conflict, "username already taken")
	kind, ok := KindOf(err)
	if !ok {
		t.Fatal("KindOf should recognize an *Error")
	}
	if kind != Conflict {
		t.Errorf("kind = %v, want %v", kind, Conflict)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should not recognize a plain error")
	}
}

func TestKindOfWrappedError(t *testing.T) {
	inner := New(Timeout, "priority assignment timed out")
	outer := fmt.Errorf("await patient: %w", inner)
	kind, ok := KindOf(outer)
	if !ok || kind != Timeout {
		t.Errorf("KindOf(wrapped) = (%v, %v), want (%v, true)", kind, ok, Timeout)
	}
	if !IsTimeout(outer) {
		t.Error("IsTimeout should see through fmt.Errorf wrapping")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Persistence, "store patient", cause)
	if !errors.Is(err, cause) {
		t.Error("Wrap should keep the cause reachable via errors.Is")
	}
	if got := err.Error(); got != "store patient: connection reset" {
		t.Errorf("Error() = %q", got)
	}
	if !IsPersistence(err) {
		t.Error("wrapped error should report its kind")
	}
}

func TestKindPredicatesAreExclusive(t *testing.T) {
	err := New(NotFound, "doctor 7 not found")
	if !IsNotFound(err) {
		t.Error("IsNotFound should match")
	}
	for name, pred := range map[string]func(error) bool{
		"IsValidation":  IsValidation,
		"IsConflict":    IsConflict,
		"IsPersistence": IsPersistence,
		"IsTimeout":     IsTimeout,
	} {
		if pred(err) {
			t.Errorf("%s should not match a NotFound error", name)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Validation:  "validation",
		Conflict:    "conflict",
		NotFound:    "not_found",
		Persistence: "persistence",
		Timeout:     "timeout",
		Kind(99):    "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
