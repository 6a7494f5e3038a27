package scoring

import (
	"regexp"
	"strings"
)

// Proficiency scores for CEFR levels and common descriptive terms.
const (
	levelNative       = 1.00
	levelC2           = 0.95
	levelC1           = 0.90
	levelAdvanced     = 0.85
	levelFluent       = 0.80
	levelB2           = 0.75
	levelB1           = 0.60
	levelIntermediate = 0.55
	levelA2           = 0.45
	levelA1           = 0.35
	levelBasic        = 0.30

	// levelUnspecified is assumed when an entry carries no level at all.
	levelUnspecified = 0.50
)

// cefrLevels are checked most specific first so "B2" is not shadowed by "B1".
var cefrLevels = []struct {
	token string
	score float64
}{
	{"C2", levelC2},
	{"C1", levelC1},
	{"B2", levelB2},
	{"B1", levelB1},
	{"A2", levelA2},
	{"A1", levelA1},
}

// descriptiveLevels match on accent-folded prefixes of bilingual terms.
var descriptiveLevels = []struct {
	prefixes []string
	score    float64
}{
	{[]string{"nativ", "matern"}, levelNative},
	{[]string{"avanzad", "advanced"}, levelAdvanced},
	{[]string{"fluid", "fluent"}, levelFluent},
	{[]string{"intermedi"}, levelIntermediate},
	{[]string{"basic"}, levelBasic},
}

var parenLevelPattern = regexp.MustCompile(`\(([^)]+)\)`)

// LanguageLevelScore extracts the proficiency score from a language
// description like "Inglés (B2)" or "English Fluent".
func LanguageLevelScore(description string) float64 {
	if strings.TrimSpace(description) == "" {
		return levelUnspecified
	}

	upper := strings.ToUpper(description)
	for _, level := range cefrLevels {
		if strings.Contains(upper, level.token) {
			return level.score
		}
	}

	folded := foldAccents(description)
	for _, level := range descriptiveLevels {
		for _, prefix := range level.prefixes {
			if strings.Contains(folded, prefix) {
				return level.score
			}
		}
	}

	return levelUnspecified
}

// ParsedLanguage is one parsed candidate language entry.
type ParsedLanguage struct {
	Language string  `json:"language"`
	Level    string  `json:"level"`
	Score    float64 `json:"score"`
}

// ParseLanguage splits a language entry into its name and level. The level is
// whatever sits in parentheses; the name is the text before it.
func ParseLanguage(entry string) ParsedLanguage {
	level := ""
	if m := parenLevelPattern.FindStringSubmatch(entry); m != nil {
		level = m[1]
	}

	name := strings.TrimSpace(parenLevelPattern.ReplaceAllString(entry, ""))
	if name == "" {
		name = entry
	}
	if level == "" {
		level = "Sin especificar"
	}

	return ParsedLanguage{Language: name, Level: level, Score: LanguageLevelScore(entry)}
}

// LanguageDetail describes the outcome for one required language.
type LanguageDetail struct {
	Language string  `json:"language"`
	Found    bool    `json:"found"`
	Level    string  `json:"level"`
	Score    float64 `json:"score"`
}

// LanguagesScore is the languages dimension result.
type LanguagesScore struct {
	Score   float64          `json:"score"`
	Matched []string         `json:"matched"`
	Missing []string         `json:"missing"`
	Details []LanguageDetail `json:"details"`
}

// ScoreLanguages evaluates the candidate's languages against the required
// list. Each required language takes the parsed proficiency of the first
// candidate entry whose name contains it (case-insensitive), or zero when
// absent; the final score is the mean over required languages. No required
// languages means a perfect score.
func ScoreLanguages(cvLanguages, requiredLanguages []string) LanguagesScore {
	if len(requiredLanguages) == 0 {
		return LanguagesScore{Score: 1.0}
	}

	parsed := make([]ParsedLanguage, 0, len(cvLanguages))
	for _, entry := range cvLanguages {
		parsed = append(parsed, ParseLanguage(entry))
	}

	result := LanguagesScore{}
	total := 0.0
	for _, required := range requiredLanguages {
		requiredLower := strings.ToLower(strings.TrimSpace(required))

		found := false
		for _, lang := range parsed {
			if strings.Contains(strings.ToLower(lang.Language), requiredLower) {
				total += lang.Score
				result.Matched = append(result.Matched, lang.Language)
				result.Details = append(result.Details, LanguageDetail{
					Language: required, Found: true, Level: lang.Level, Score: lang.Score,
				})
				found = true
				break
			}
		}
		if !found {
			result.Missing = append(result.Missing, required)
			result.Details = append(result.Details, LanguageDetail{Language: required, Level: "N/A"})
		}
	}

	result.Score = total / float64(len(requiredLanguages))
	return result
}
