package filters

import (
	"context"

	"screener-backend/internal/llm"
)

// Service runs the filter-generation pipeline: prompt, one completion call,
// defensive decode.
type Service struct {
	LLM llm.Client
}

// Generate derives recruiter search filters from a normalized, non-empty job
// description.
func (s *Service) Generate(ctx context.Context, jobDescription string) (FilterSet, error) {
	messages := llm.BuildFilterPrompt(jobDescription)
	raw, err := s.LLM.Complete(ctx, messages)
	if err != nil {
		return FilterSet{}, err
	}
	return DecodeFilterSet(raw), nil
}
