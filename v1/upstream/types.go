package upstream

import "context"

// Client is the contract v1/batcher depends on for issuing one flush's
// worth of embedding work upstream. v1/batcher's tests substitute a mock
// implementation of this interface.
type Client interface {
	// Embed sends flatInputs as a single upstream call and returns one
	// embedding per input, in the same order, or a typed error.
	Embed(ctx context.Context, flatInputs []string) ([][]float64, error)
}
