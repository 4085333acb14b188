// Package extract turns raw CV text into a structured candidate record
// using Anthropic's Claude.
package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/benjaminschreck/go-cvfill/pkg/cvfill"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// DefaultMaxTokens bounds the extraction response size.
const DefaultMaxTokens = 4096

// Extractor produces a candidate record from CV text. Implementations must
// degrade to an empty record rather than returning a zero value: callers
// render whatever comes back.
type Extractor interface {
	Extract(ctx context.Context, cvText string) (cvfill.CandidateRecord, error)
}

// ClaudeExtractor extracts candidate records with the Anthropic API.
type ClaudeExtractor struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *zap.Logger
}

var _ Extractor = (*ClaudeExtractor)(nil)

// NewClaude builds an extractor. Model and maxTokens fall back to the
// package defaults when zero; a nil logger disables logging.
func NewClaude(apiKey, model string, maxTokens int, log *zap.Logger) *ClaudeExtractor {
	if model == "" {
		model = DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ClaudeExtractor{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(model),
		maxTokens: int64(maxTokens),
		log:       log,
	}
}

// Extract sends the CV text to Claude and parses the JSON reply. On any
// failure it returns an empty record alongside the error, so a caller can
// still produce a reviewable document.
func (e *ClaudeExtractor) Extract(ctx context.Context, cvText string) (cvfill.CandidateRecord, error) {
	e.log.Debug("starting extraction", zap.Int("cv_length", len(cvText)))

	response, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       e.model,
		MaxTokens:   e.maxTokens,
		Temperature: anthropic.Float(0.1),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: buildPrompt(cvText)},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		e.log.Warn("extraction request failed", zap.Error(err))
		return cvfill.EmptyRecord(), errors.Wrap(err, "extraction request failed")
	}

	var responseText string
	for _, content := range response.Content {
		responseText += content.AsText().Text
	}

	rec, err := parseResponse(responseText)
	if err != nil {
		e.log.Warn("extraction response unusable", zap.Error(err))
		return cvfill.EmptyRecord(), err
	}

	e.log.Info("extraction complete",
		zap.String("candidate", rec.Name),
		zap.Int("experiences", len(rec.Experiences)))
	return rec, nil
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseResponse locates the JSON object in the model reply and normalizes
// it into a record. Markdown code fences around the object are tolerated.
func parseResponse(responseText string) (cvfill.CandidateRecord, error) {
	cleaned := stripCodeFences(responseText)
	raw := jsonObjectRe.FindString(cleaned)
	if raw == "" {
		return cvfill.EmptyRecord(), errors.Errorf("no JSON object in model response: %.200s", responseText)
	}
	return cvfill.ParseRecord([]byte(raw)), nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
