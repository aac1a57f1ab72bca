package textgen

import (
	"context"
	"errors"
)

// Generator defines the interface for remote text generation.
type Generator interface {
	// Generate produces text for the given prompt. Implementations make at
	// most one remote call per invocation; callers decide what to do when
	// the call fails.
	Generate(ctx context.Context, prompt string) (string, error)
}

// --- Error Definitions ---
var (
	// ErrModelLoading signals the hosted model is still warming up and the
	// request should be treated as failed rather than retried.
	ErrModelLoading = errors.New("generation model is still loading")

	// ErrEmptyResult signals a well-formed response that carried no
	// generations.
	ErrEmptyResult = errors.New("generation response contained no results")
)
