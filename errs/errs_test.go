package errs

import (
	"errors"
	"testing"
)

func TestKindIsSentinel(t *testing.T) {
	err := Wrap(InvalidInput, "inverting zero")
	if !errors.Is(err, InvalidInput) {
		t.Fatalf("expected wrapped error to match Kind via errors.Is")
	}
	if errors.Is(err, OutOfMemory) {
		t.Fatalf("wrapped error should not match an unrelated Kind")
	}
}

func TestWrapfFormats(t *testing.T) {
	err := Wrapf(NoValidConfig, "variant %s unsupported on curve %s", "lodah", "supersingular")
	if !errors.Is(err, NoValidConfig) {
		t.Fatalf("expected Wrapf result to match Kind")
	}
	want := "variant lodah unsupported on curve supersingular: no valid configuration"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
