// Package scoring implements the five per-dimension scorers of the matching engine.
// Each scorer is a pure function of (candidate attribute, institutional requirement)
// returning a score in [0,1] plus explanation details.
package scoring

import (
	"sort"
	"strings"
)

// hardSkillSynonyms collapses common skill name variants to a canonical form.
var hardSkillSynonyms = map[string]string{
	"javascript": "js",
	"typescript": "ts",
	"reactjs":    "react",
	"vuejs":      "vue",
	"nodejs":     "node",
	"postgresql": "postgres",
	"golang":     "go",
	"fastapi":    "fast api",
}

// NormalizeHardSkill normalizes a hard skill name for matching: lowercase,
// trim, keep the leading token (drops trailing version tokens like "3.x"),
// strip common file-extension suffixes and collapse known synonyms.
func NormalizeHardSkill(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return ""
	}

	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}

	s = strings.ReplaceAll(s, ".js", "")
	s = strings.ReplaceAll(s, ".py", "")

	if canonical, ok := hardSkillSynonyms[s]; ok {
		return canonical
	}
	return s
}

// normalizeHardSkillSet normalizes a skill list into a deduplicated set.
func normalizeHardSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if normalized := NormalizeHardSkill(skill); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

// accentReplacer folds Spanish accented characters for accent-insensitive matching.
var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u",
)

// foldAccents lowercases a string and strips Spanish accents.
func foldAccents(s string) string {
	return accentReplacer.Replace(strings.ToLower(s))
}

// sortedKeys returns the keys of a string set in lexical order, so that
// iteration-dependent results stay deterministic.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// clip01 clamps a score to [0,1].
func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
