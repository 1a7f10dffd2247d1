package screening

import (
	"context"

	"screener-backend/internal/llm"
)

// Service runs the fit-scoring pipeline: prompt, one completion call,
// defensive decode.
type Service struct {
	LLM llm.Client
}

// Score evaluates resume-to-job fit. Inputs are expected to be normalized
// and non-empty; upstream failures propagate, malformed model output does
// not.
func (s *Service) Score(ctx context.Context, resumeText, jobDescription string) (ScoreResult, error) {
	messages := llm.BuildScorePrompt(resumeText, jobDescription)
	raw, err := s.LLM.Complete(ctx, messages)
	if err != nil {
		return ScoreResult{}, err
	}
	return DecodeScoreResult(raw), nil
}
