package scoring

import "strings"

// Component weights for the soft skills score.
const (
	softExactWeight    = 0.70
	softCategoryWeight = 0.30
)

// softSkillSynonyms maps English soft-skill phrases to the Spanish canonical
// forms the category table is keyed on.
var softSkillSynonyms = map[string]string{
	"teamwork":               "trabajo en equipo",
	"leadership":             "liderazgo",
	"communication":          "comunicación",
	"problem solving":        "resolución de problemas",
	"adaptability":           "adaptabilidad",
	"creativity":             "creatividad",
	"critical thinking":      "pensamiento crítico",
	"time management":        "gestión del tiempo",
	"empathy":                "empatía",
	"collaboration":          "colaboración",
	"flexibility":            "flexibilidad",
	"initiative":             "iniciativa",
	"decision making":        "toma de decisiones",
	"conflict resolution":    "resolución de conflictos",
	"emotional intelligence": "inteligencia emocional",
}

// softSkillCategories groups canonical soft skills into broad categories used
// for partial-credit matching when no exact match exists.
var softSkillCategories = map[string][]string{
	"interpersonal": {
		"liderazgo", "trabajo en equipo", "comunicación",
		"colaboración", "empatía", "inteligencia emocional",
		"resolución de conflictos", "persuasión",
	},
	"cognitivo": {
		"pensamiento crítico", "creatividad", "resolución de problemas",
		"toma de decisiones", "análisis", "innovación",
	},
	"organizacional": {
		"gestión del tiempo", "planificación", "organización",
		"priorización", "multitasking",
	},
	"personal": {
		"adaptabilidad", "flexibilidad", "iniciativa",
		"autonomía", "proactividad", "resiliencia", "motivación",
	},
}

// categoryOrder fixes the lookup order so classification is deterministic.
var categoryOrder = []string{"interpersonal", "cognitivo", "organizacional", "personal"}

// NormalizeSoftSkill lowercases, trims and collapses bilingual synonyms.
func NormalizeSoftSkill(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := softSkillSynonyms[s]; ok {
		return canonical
	}
	return s
}

// SoftSkillCategory classifies a soft skill into one of the broad categories,
// falling back to "general" when no category contains it. Membership is by
// substring in either direction, so "liderazgo de equipos" still lands in
// interpersonal.
func SoftSkillCategory(skill string) string {
	normalized := NormalizeSoftSkill(skill)
	for _, category := range categoryOrder {
		for _, member := range softSkillCategories[category] {
			if strings.Contains(normalized, member) || strings.Contains(member, normalized) {
				return category
			}
		}
	}
	return "general"
}

// SoftSkillsScore is the soft skills dimension result with matching details.
type SoftSkillsScore struct {
	Score              float64  `json:"score"`
	ExactMatchRatio    float64  `json:"exact_match_ratio"`
	CategoryMatchRatio float64  `json:"category_match_ratio"`
	MatchedExact       []string `json:"matched_exact"`
	MatchedByCategory  []string `json:"matched_by_category"`
	Missing            []string `json:"missing"`
}

// ScoreSoftSkills evaluates the candidate's soft skills against the required
// list. Exact matches count fully; required skills with no exact match earn
// partial credit when any candidate skill shares their category. No required
// skills means a perfect score; no candidate skills against a non-empty
// requirement means zero.
func ScoreSoftSkills(cvSkills, requiredSkills []string) SoftSkillsScore {
	if len(requiredSkills) == 0 {
		return SoftSkillsScore{Score: 1.0, ExactMatchRatio: 1.0, CategoryMatchRatio: 1.0}
	}

	requiredSet := make(map[string]bool, len(requiredSkills))
	for _, skill := range requiredSkills {
		if normalized := NormalizeSoftSkill(skill); normalized != "" {
			requiredSet[normalized] = true
		}
	}
	required := sortedKeys(requiredSet)

	if len(cvSkills) == 0 {
		return SoftSkillsScore{Missing: required}
	}

	cvSet := make(map[string]bool, len(cvSkills))
	for _, skill := range cvSkills {
		if normalized := NormalizeSoftSkill(skill); normalized != "" {
			cvSet[normalized] = true
		}
	}
	cv := sortedKeys(cvSet)

	var matchedExact, missing []string
	for _, req := range required {
		if cvSet[req] {
			matchedExact = append(matchedExact, req)
		} else {
			missing = append(missing, req)
		}
	}
	exactRatio := float64(len(matchedExact)) / float64(len(required))

	// Category pass: for each unmatched required skill, credit the first
	// candidate skill sharing its category.
	categoryMatched := make(map[string]bool)
	for _, req := range missing {
		reqCategory := SoftSkillCategory(req)
		for _, cvSkill := range cv {
			if SoftSkillCategory(cvSkill) == reqCategory {
				categoryMatched[cvSkill] = true
				break
			}
		}
	}
	matchedByCategory := sortedKeys(categoryMatched)

	coverage := float64(len(matchedExact)+len(matchedByCategory)) / float64(len(required))
	score := exactRatio*softExactWeight + coverage*softCategoryWeight

	return SoftSkillsScore{
		Score:              clip01(score),
		ExactMatchRatio:    exactRatio,
		CategoryMatchRatio: coverage,
		MatchedExact:       matchedExact,
		MatchedByCategory:  matchedByCategory,
		Missing:            missing,
	}
}
