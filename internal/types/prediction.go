package types

// Classification is the three-way outcome of a match evaluation.
type Classification string

// Classification values, ordered from best to worst fit.
const (
	Apto        Classification = "APTO"
	Considerado Classification = "CONSIDERADO"
	NoApto      Classification = "NO_APTO"
)

// Classify maps a match score to a classification using the given thresholds.
func Classify(score float64, t Thresholds) Classification {
	switch {
	case score >= t.Apto:
		return Apto
	case score >= t.Considerado:
		return Considerado
	default:
		return NoApto
	}
}

// CVScores holds the five per-dimension scores for downstream display.
type CVScores struct {
	HardSkills float64 `json:"hard_skills_score"`
	SoftSkills float64 `json:"soft_skills_score"`
	Experience float64 `json:"experience_score"`
	Education  float64 `json:"education_score"`
	Languages  float64 `json:"languages_score"`
}

// Contribution attributes part of a prediction to a single named feature.
type Contribution struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"contribution"`
}

// Prediction is the output contract of the matching engine.
type Prediction struct {
	MatchScore           float64            `json:"match_score"`
	Classification       Classification     `json:"classification"`
	FeatureContributions map[string]float64 `json:"feature_contributions"`
	TopStrengths         []Contribution     `json:"top_strengths"`
	TopWeaknesses        []Contribution     `json:"top_weaknesses"`
	CVScores             CVScores           `json:"cv_scores"`
}
