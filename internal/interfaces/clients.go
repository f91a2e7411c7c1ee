// Package interfaces defines service contracts for TradeMind
package interfaces

import (
	"context"

	"github.com/skundu/trademind/internal/models"
)

// GenAIClient provides access to the generative model. Implementations are
// treated as an opaque asynchronous function: request in, generated text
// plus optional citations out, or an error.
type GenAIClient interface {
	// GenerateGrounded generates content with real-time search grounding
	GenerateGrounded(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResponse, error)
}
