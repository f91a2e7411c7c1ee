// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/models"
)

const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultTimeout   = 120 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the GenAIClient interface
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRateLimit sets the request rate limit (requests per second)
func WithRateLimit(rps int) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateGrounded generates content with the Google Search grounding tool
// enabled, returning the raw text plus any grounding citations. An image,
// when present, is sent as an inline part ahead of the prompt.
func (c *Client) GenerateGrounded(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	parts := []*genai.Part{}
	if len(req.ImageData) > 0 {
		mimeType := req.ImageMIMEType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		parts = append(parts, genai.NewPartFromBytes(req.ImageData, mimeType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Debug().
		Str("model", c.model).
		Bool("has_image", len(req.ImageData) > 0).
		Msg("Generating grounded content")

	result, err := c.client.Models.GenerateContent(reqCtx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	resp := &models.GenerationResponse{
		Text:      extractText(result),
		Citations: extractCitations(result),
	}

	c.logger.Debug().
		Int("text_bytes", len(resp.Text)).
		Int("citations", len(resp.Citations)).
		Msg("Generation complete")

	return resp, nil
}

// extractText concatenates the text parts of the first candidate. A
// response without text yields the empty string; callers substitute their
// own fallback rather than failing.
func extractText(result *genai.GenerateContentResponse) string {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

// extractCitations pulls web grounding chunks from the first candidate's
// grounding metadata.
func extractCitations(result *genai.GenerateContentResponse) []models.Source {
	citations := []models.Source{}

	if len(result.Candidates) == 0 || result.Candidates[0].GroundingMetadata == nil {
		return citations
	}

	for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		citations = append(citations, models.Source{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return citations
}

// Ensure Client implements GenAIClient
var _ interfaces.GenAIClient = (*Client)(nil)
