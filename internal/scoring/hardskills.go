package scoring

// Component weights for the hard skills score.
const (
	hardRequiredExactWeight = 0.50
	hardSemanticWeight      = 0.25
	hardPreferredWeight     = 0.15
	hardBreadthWeight       = 0.10

	// hardCorePenalty is applied when less than half of the required skills match.
	hardCorePenalty      = 0.70
	hardCoreMatchMinimum = 0.50

	// hardBreadthCap: having this many distinct skills earns the full breadth bonus.
	hardBreadthCap = 10.0
)

// HardSkillsScore is the hard skills dimension result with matching details.
type HardSkillsScore struct {
	Score               float64  `json:"score"`
	RequiredMatchRatio  float64  `json:"required_match_ratio"`
	PreferredMatchRatio float64  `json:"preferred_match_ratio"`
	SemanticSimilarity  float64  `json:"semantic_similarity"`
	BreadthScore        float64  `json:"breadth_score"`
	MatchedRequired     []string `json:"matched_required"`
	MatchedPreferred    []string `json:"matched_preferred"`
	MissingRequired     []string `json:"missing_required"`
	TotalCVSkills       int      `json:"total_cv_skills"`
}

// ScoreHardSkills evaluates the candidate's technical skills against required
// and preferred skill lists. Exact matching runs over normalized skill sets,
// semantic matching over TF-IDF cosine similarity of the joined skill texts,
// plus a preferred-skill ratio and a breadth bonus. Missing more than half of
// the required skills triggers a hard penalty.
func ScoreHardSkills(cvSkills, requiredSkills, preferredSkills []string) HardSkillsScore {
	cvSet := normalizeHardSkillSet(cvSkills)
	requiredSet := normalizeHardSkillSet(requiredSkills)
	preferredSet := normalizeHardSkillSet(preferredSkills)

	var matchedRequired, missingRequired []string
	for _, skill := range sortedKeys(requiredSet) {
		if cvSet[skill] {
			matchedRequired = append(matchedRequired, skill)
		} else {
			missingRequired = append(missingRequired, skill)
		}
	}
	requiredRatio := 0.0
	if len(requiredSet) > 0 {
		requiredRatio = float64(len(matchedRequired)) / float64(len(requiredSet))
	}

	var matchedPreferred []string
	for _, skill := range sortedKeys(preferredSet) {
		if cvSet[skill] {
			matchedPreferred = append(matchedPreferred, skill)
		}
	}
	preferredRatio := 0.0
	if len(preferredSet) > 0 {
		preferredRatio = float64(len(matchedPreferred)) / float64(len(preferredSet))
	}

	semantic := tfidfSimilarity(cvSkills, requiredSkills)
	breadth := float64(len(cvSet)) / hardBreadthCap
	if breadth > 1.0 {
		breadth = 1.0
	}

	score := requiredRatio*hardRequiredExactWeight +
		semantic*hardSemanticWeight +
		preferredRatio*hardPreferredWeight +
		breadth*hardBreadthWeight

	if requiredRatio < hardCoreMatchMinimum {
		score *= hardCorePenalty
	}

	return HardSkillsScore{
		Score:               clip01(score),
		RequiredMatchRatio:  requiredRatio,
		PreferredMatchRatio: preferredRatio,
		SemanticSimilarity:  semantic,
		BreadthScore:        breadth,
		MatchedRequired:     matchedRequired,
		MatchedPreferred:    matchedPreferred,
		MissingRequired:     missingRequired,
		TotalCVSkills:       len(cvSet),
	}
}
