package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamWrapping(t *testing.T) {
	cause := errors.New("rate limited")
	err := Upstream(cause)

	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatal("upstream error must not be invalid input")
	}
	if got := Message(err); got != "rate limited" {
		t.Fatalf("expected cause message, got %q", got)
	}
	if again := Upstream(fmt.Errorf("call: %w", err)); !errors.Is(again, cause) {
		t.Fatalf("rewrap lost cause: %v", again)
	}
	if Upstream(nil) != nil {
		t.Fatal("Upstream(nil) should be nil")
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("%s is required", "topic")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := Message(err); got != "topic is required" {
		t.Fatalf("unexpected message %q", got)
	}
}
