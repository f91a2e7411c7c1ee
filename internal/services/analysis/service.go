// Package analysis turns free-form model output into typed analysis records.
package analysis

import (
	"context"
	"encoding/base64"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/models"
	"github.com/skundu/trademind/internal/parser"
)

const unknownSubject = "Unknown Stock"

// fallbackText stands in for a response that generated no text at all, so
// RawText is never empty.
const fallbackText = "No analysis generated."

// Compile-time interface check
var _ interfaces.AnalysisService = (*Service)(nil)

// Service implements AnalysisService
type Service struct {
	client interfaces.GenAIClient
	retry  common.RetryConfig
	logger *common.Logger
}

// NewService creates a new analysis service
func NewService(client interfaces.GenAIClient, retry common.RetryConfig, logger *common.Logger) *Service {
	return &Service{
		client: client,
		retry:  retry,
		logger: logger,
	}
}

// Analyze runs the full pipeline: prompt build, resilient model invocation,
// then section and trade-level extraction merged into one result. Parse
// failures never surface — missing fields keep their sentinel defaults.
// Only terminal transport failures return an error, carrying a classified
// user-facing message.
func (s *Service) Analyze(ctx context.Context, subjectName, imageBase64 string) (*models.AnalysisResult, error) {
	var imageData []byte
	if imageBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(imageBase64)
		if err != nil {
			return nil, &UserError{Message: MsgInvalidRequest, cause: err}
		}
		imageData = decoded
	}

	req := &models.GenerationRequest{
		Prompt:        buildAnalysisPrompt(subjectName, len(imageData) > 0),
		ImageData:     imageData,
		ImageMIMEType: "image/jpeg",
	}

	resp, err := common.Invoke(ctx, s.logger, s.retry, func(ctx context.Context) (*models.GenerationResponse, error) {
		return s.client.GenerateGrounded(ctx, req)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("subject", subjectName).Msg("Analysis request failed")
		return nil, classifyUserError(err)
	}

	return s.buildResult(subjectName, resp), nil
}

// buildResult merges section and trade-level extraction into one record.
func (s *Service) buildResult(subjectName string, resp *models.GenerationResponse) *models.AnalysisResult {
	text := resp.Text
	if text == "" {
		s.logger.Warn().Str("subject", subjectName).Msg("Model returned no text")
		text = fallbackText
	}

	name := subjectName
	if name == "" {
		name = unknownSubject
	}

	result := models.NewAnalysisResult(name)
	result.RawText = text

	sections := parser.ParseSections(text)

	if sections.DetectedName.Found && (subjectName == "" || subjectName == unknownSubject) {
		result.SubjectName = sections.DetectedName.Value
	}
	if sections.CurrentPrice.Found {
		result.CurrentPrice = sections.CurrentPrice.Value
	}
	if sections.Fundamentals.Found {
		result.Fundamentals = sections.Fundamentals.Value
	}
	if sections.Technicals.Found {
		result.Technicals = sections.Technicals.Value
	}
	if sections.News.Found {
		result.News = sections.News.Value
	}

	result.TradeLevels = parser.ExtractTradeLevels(text)
	result.Sources = parser.DedupeSources(resp.Citations)

	if missing := missingSections(sections); missing != "" {
		// Distinguishes "model skipped these" from a legitimately sparse answer.
		s.logger.Warn().
			Str("subject", result.SubjectName).
			Str("missing", missing).
			Int("trade_levels", len(result.TradeLevels)).
			Msg("Response did not match requested schema, sentinel defaults retained")
	}

	s.logger.Info().
		Str("subject", result.SubjectName).
		Int("trade_levels", len(result.TradeLevels)).
		Int("sources", len(result.Sources)).
		Msg("Analysis parsed")

	return result
}

func missingSections(sections parser.Sections) string {
	missing := ""
	for _, check := range []struct {
		name  string
		field parser.Field
	}{
		{"price", sections.CurrentPrice},
		{"fundamentals", sections.Fundamentals},
		{"technicals", sections.Technicals},
		{"news", sections.News},
	} {
		if !check.field.Found {
			if missing != "" {
				missing += ","
			}
			missing += check.name
		}
	}
	return missing
}
