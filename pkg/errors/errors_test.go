package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidAnnotation, "record %d: missing start/end", 3)

	if err.Code != ErrCodeInvalidAnnotation {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidAnnotation, err.Code)
	}
	if err.Message != "record 3: missing start/end" {
		t.Errorf("unexpected message: %s", err.Message)
	}
	want := "INVALID_ANNOTATION: record 3: missing start/end"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch %s", "P69905")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidWindow, "start >= end")

	if !Is(err, ErrCodeInvalidWindow) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeNetwork) {
		t.Error("Is should not match a plain error")
	}

	// Code is found through wrapping chains.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidWindow) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "slow")); got != ErrCodeTimeout {
		t.Errorf("expected TIMEOUT, got %s", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeProteinNotFound, "protein P00000 not found")
	if got := UserMessage(err); got != "protein P00000 not found" {
		t.Errorf("unexpected user message: %s", got)
	}
	plain := fmt.Errorf("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("unexpected user message for plain error: %s", got)
	}
}
