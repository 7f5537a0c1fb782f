package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"hirehub/hirehub-api/internal/llm"
	"hirehub/hirehub-api/internal/models"
)

const (
	RecommendationConsider     = "Consider"
	RecommendationDontConsider = "Don't Consider"
)

const considerRatingThreshold = 8

// CleanModelText strips the formatting noise models wrap around JSON
// answers: surrounding whitespace, stray single quotes and markdown code
// fences. Applying it to already-clean text is a no-op.
func CleanModelText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "'")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Normalizer turns a raw model response into a typed AnalysisResult.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

type decodedAnalysis struct {
	Rating         int      `mapstructure:"rating"`
	Summary        string   `mapstructure:"summary"`
	Strengths      []string `mapstructure:"strengths"`
	Weaknesses     []string `mapstructure:"weaknesses"`
	Recommendation string   `mapstructure:"recommendation"`
}

// Normalize cleans and decodes the response content, applies field defaults
// and derives the recommendation when the model supplies none.
func (n *Normalizer) Normalize(resp *llm.Response) (*models.AnalysisResult, error) {
	var value map[string]interface{}

	switch resp.Content.Kind {
	case llm.ContentStructured:
		value = resp.Content.Value
	case llm.ContentText:
		cleaned := CleanModelText(resp.Content.Text)
		if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
			return nil, &ParseError{Message: "failed to parse analysis content", Err: err}
		}
	default:
		return nil, &ParseError{Message: fmt.Sprintf("unknown content kind %q", resp.Content.Kind)}
	}

	var decoded decodedAnalysis
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &decoded,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, &ParseError{Message: "failed to build analysis decoder", Err: err}
	}
	if err := decoder.Decode(value); err != nil {
		return nil, &ParseError{Message: "failed to decode analysis fields", Err: err}
	}

	if decoded.Strengths == nil {
		decoded.Strengths = []string{}
	}
	if decoded.Weaknesses == nil {
		decoded.Weaknesses = []string{}
	}

	// An explicit recommendation always wins; only when the model omits it
	// is one derived from the rating.
	recommendation := decoded.Recommendation
	if recommendation == "" {
		if decoded.Rating >= considerRatingThreshold {
			recommendation = RecommendationConsider
		} else {
			recommendation = RecommendationDontConsider
		}
	}

	return &models.AnalysisResult{
		Rating:         decoded.Rating,
		Summary:        decoded.Summary,
		Strengths:      decoded.Strengths,
		Weaknesses:     decoded.Weaknesses,
		Recommendation: recommendation,
	}, nil
}
