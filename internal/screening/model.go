package screening

// ScoreResult is the canonical scoring response returned to the client.
type ScoreResult struct {
	Score      float64  `json:"score"`
	ScoreOutOf int      `json:"score_out_of"`
	Bullets    []string `json:"bullets"`
}

const (
	// ScoreOutOf is the fixed scale ceiling reported to clients.
	ScoreOutOf = 5

	minScore = 1.0
	maxScore = 5.0

	// highFitThreshold gates bullets: below it the bullet list is always
	// empty, whatever the model produced.
	highFitThreshold = 4.0

	maxBullets = 5
)
