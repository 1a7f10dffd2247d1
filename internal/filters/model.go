package filters

// FilterSet is the canonical recruiter-search filter response. Six bounded
// list fields plus two free-text boolean search expressions.
type FilterSet struct {
	JobTitles       []string `json:"job_titles"`
	BooleanTitles   string   `json:"boolean_titles"`
	Skills          []string `json:"skills"`
	Locations       []string `json:"locations"`
	Keywords        []string `json:"keywords"`
	BooleanKeywords string   `json:"boolean_keywords"`
	Industries      []string `json:"industries"`
	YearsExperience []string `json:"years_experience"`
}

// Per-field list bounds.
const (
	maxJobTitles       = 16
	maxSkills          = 24
	maxLocations       = 8
	maxKeywords        = 16
	maxIndustries      = 10
	maxYearsExperience = 8
)
