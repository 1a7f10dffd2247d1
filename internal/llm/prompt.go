package llm

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed prompts/score_v1.txt
	scoreSystemPrompt string
	//go:embed prompts/filters_v1.txt
	filterSystemPrompt string
)

// BuildScorePrompt creates the chat messages for a fit-scoring request.
// Inputs are embedded verbatim inside delimiter blocks; callers normalize
// them first.
func BuildScorePrompt(resumeText, jobDescription string) []Message {
	user := fmt.Sprintf(
		"Job Description:\n<<<JOB_DESCRIPTION\n%s\nJOB_DESCRIPTION>>>\n\nResume:\n<<<RESUME\n%s\nRESUME>>>",
		jobDescription, resumeText)
	return []Message{
		{Role: RoleSystem, Content: scoreSystemPrompt},
		{Role: RoleUser, Content: user},
	}
}

// BuildFilterPrompt creates the chat messages for a filter-generation request.
func BuildFilterPrompt(jobDescription string) []Message {
	user := fmt.Sprintf(
		"Job Description:\n<<<JOB_DESCRIPTION\n%s\nJOB_DESCRIPTION>>>",
		jobDescription)
	return []Message{
		{Role: RoleSystem, Content: filterSystemPrompt},
		{Role: RoleUser, Content: user},
	}
}
