package scoring

import "strings"

// Ordinal scores for recognized education levels.
const (
	levelTechnicalMid    = 0.25
	levelTechnicalHigher = 0.45
	levelBachelor        = 0.75
	levelEngineering     = 0.75
	levelDiploma         = 0.80
	levelSpecialization  = 0.85
	levelMaster          = 0.92
	levelDoctorate       = 1.00
)

// degreeKeyword maps accent-folded substrings of a degree name to its ordinal
// score. Matched in order, most specific level first.
type degreeKeyword struct {
	keywords []string
	score    float64
	name     string
}

var degreeLadder = []degreeKeyword{
	{[]string{"doctor", "phd"}, levelDoctorate, "Doctorado"},
	{[]string{"maestr", "magister", "master"}, levelMaster, "Maestría"},
	{[]string{"especial", "specializ"}, levelSpecialization, "Especialidad"},
	{[]string{"diplomado", "diploma"}, levelDiploma, "Diplomado"},
	{[]string{"ingenier", "engineer"}, levelEngineering, "Ingeniería"},
	{[]string{"licenciat", "licenciad", "bachelor", "bachiller"}, levelBachelor, "Licenciatura"},
	{[]string{"tecnico superior", "higher technic"}, levelTechnicalHigher, "Técnico Superior"},
	{[]string{"tecnico", "technic"}, levelTechnicalMid, "Técnico Medio"},
}

// EducationLevelScore returns the ordinal score of a degree name in [0,1].
// Matching is case- and accent-insensitive substring search over the degree
// ladder; an unrecognized non-empty degree is assumed to be the lowest level.
func EducationLevelScore(degreeName string) float64 {
	if strings.TrimSpace(degreeName) == "" {
		return 0.0
	}
	folded := foldAccents(degreeName)
	for _, level := range degreeLadder {
		for _, keyword := range level.keywords {
			if strings.Contains(folded, keyword) {
				return level.score
			}
		}
	}
	return levelTechnicalMid
}

// EducationLevelName returns the canonical name of the level a degree maps to,
// or "Sin especificar" for an empty degree.
func EducationLevelName(degreeName string) string {
	if strings.TrimSpace(degreeName) == "" {
		return "Sin especificar"
	}
	folded := foldAccents(degreeName)
	for _, level := range degreeLadder {
		for _, keyword := range level.keywords {
			if strings.Contains(folded, keyword) {
				return level.name
			}
		}
	}
	return "Técnico Medio"
}

// EducationScore is the education dimension result.
type EducationScore struct {
	Score            float64 `json:"score"`
	CVLevel          string  `json:"cv_level"`
	CVScore          float64 `json:"cv_score"`
	RequiredScore    float64 `json:"required_score"`
	MeetsRequirement bool    `json:"meets_requirement"`
}

// ScoreEducation compares the candidate's highest degree against the required
// education level. Meeting or exceeding the requirement scores exactly 1.0;
// falling short scores the proportional shortfall cv/required. No education
// entries score zero.
func ScoreEducation(education []string, requiredLevel string) EducationScore {
	requiredScore := EducationLevelScore(requiredLevel)

	if len(education) == 0 {
		return EducationScore{
			CVLevel:       "Sin especificar",
			RequiredScore: requiredScore,
		}
	}

	bestDegree := education[0]
	bestScore := EducationLevelScore(bestDegree)
	for _, degree := range education[1:] {
		if s := EducationLevelScore(degree); s > bestScore {
			bestScore, bestDegree = s, degree
		}
	}

	result := EducationScore{
		CVLevel:       bestDegree,
		CVScore:       bestScore,
		RequiredScore: requiredScore,
	}

	if bestScore >= requiredScore {
		result.MeetsRequirement = true
		result.Score = 1.0
		return result
	}

	if requiredScore > 0 {
		result.Score = bestScore / requiredScore
	}
	return result
}
