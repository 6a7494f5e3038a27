package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxIdealYears is where the experience curve reaches its maximum.
const DefaultMaxIdealYears = 5.0

// belowMinimumCap bounds the score attainable without meeting the required minimum.
const belowMinimumCap = 0.5

// Duration patterns, tried in order. Both English and Spanish unit words are
// accepted since profiles come from a bilingual extractor.
var (
	yearsPattern  = regexp.MustCompile(`(\d+\.?\d*)\s*(?:a[ñn]os?|years?|yrs?)`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*(?:mes(?:es)?|months?)`)
	rangePattern  = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4}|presente|actual|present|current)`)
	numberPattern = regexp.MustCompile(`(\d+\.?\d*)`)
)

// ParameterError reports invalid numeric parameters to the experience curve.
type ParameterError struct {
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid experience parameters: %s", e.Reason)
}

// ParseDuration converts a free-text duration into decimal years. Patterns
// tried in order: "N years", "N months" (/12), "YYYY-YYYY|present" (open
// ranges end at the current year), bare decimal number. Unparseable input
// contributes zero.
func ParseDuration(duration string) float64 {
	s := strings.ToLower(strings.TrimSpace(duration))
	if s == "" {
		return 0.0
	}

	if m := yearsPattern.FindStringSubmatch(s); m != nil {
		years, _ := strconv.ParseFloat(m[1], 64)
		return years
	}

	if m := monthsPattern.FindStringSubmatch(s); m != nil {
		months, _ := strconv.ParseFloat(m[1], 64)
		return math.Round(months/12*100) / 100
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		start, _ := strconv.Atoi(m[1])
		end := time.Now().Year()
		if year, err := strconv.Atoi(m[2]); err == nil {
			end = year
		}
		if end < start {
			return 0.0
		}
		return float64(end - start)
	}

	if m := numberPattern.FindStringSubmatch(s); m != nil {
		years, _ := strconv.ParseFloat(m[1], 64)
		return years
	}

	return 0.0
}

// TotalYears sums the parsed durations of all experience entries,
// rounded to two decimals.
func TotalYears(durations []string) float64 {
	total := 0.0
	for _, d := range durations {
		total += ParseDuration(d)
	}
	return math.Round(total*100) / 100
}

// ExperienceScore is the experience dimension result.
type ExperienceScore struct {
	Score          float64 `json:"score"`
	TotalYears     float64 `json:"total_years"`
	MinRequired    float64 `json:"min_required"`
	Delta          float64 `json:"delta"`
	MeetsMinimum   bool    `json:"meets_minimum"`
	Classification string  `json:"classification"`
}

// ScoreExperienceYears scores a known amount of experience against the
// institutional minimum using a logarithmic curve with diminishing returns:
// zero years scores 0, meeting the minimum exactly scores 0.5, maxIdeal or
// more scores 1.0, and anything below the minimum is capped under 0.5.
func ScoreExperienceYears(years, minRequired, maxIdeal float64) (ExperienceScore, error) {
	if minRequired < 0 {
		return ExperienceScore{}, &ParameterError{Reason: "min_required must be >= 0"}
	}
	if maxIdeal <= minRequired {
		return ExperienceScore{}, &ParameterError{Reason: "max_ideal must be greater than min_required"}
	}

	result := ExperienceScore{
		TotalYears:  years,
		MinRequired: minRequired,
		Delta:       years - minRequired,
	}

	switch {
	case years <= 0:
		result.TotalYears = 0
		result.Delta = -minRequired
		result.Classification = "Sin experiencia"
		return result, nil

	case years < minRequired:
		result.Score = (years / minRequired) * belowMinimumCap
		result.Classification = "No cumple mínimo requerido"
		return result, nil

	case years >= maxIdeal:
		result.Score = 1.0
		result.MeetsMinimum = true
		result.Classification = "Experiencia máxima"
		return result, nil
	}

	// Between minimum and ideal: normalize log(years+1) into [0,1] over the
	// [min, max] window, then shift to [0.5, 1.0] so the minimum lands on 0.5.
	normalized := (math.Log(years+1) - math.Log(minRequired+1)) /
		(math.Log(maxIdeal+1) - math.Log(minRequired+1))
	result.Score = clip01(0.5 + 0.5*normalized)
	result.MeetsMinimum = true

	switch {
	case result.Score >= 0.9:
		result.Classification = "Experiencia excelente"
	case result.Score >= 0.75:
		result.Classification = "Experiencia muy buena"
	case result.Score >= 0.60:
		result.Classification = "Experiencia buena"
	default:
		result.Classification = "Por encima del mínimo"
	}

	return result, nil
}

// ScoreExperience parses and sums the candidate's experience durations, then
// scores the total against the institutional minimum.
func ScoreExperience(durations []string, minRequired, maxIdeal float64) (ExperienceScore, error) {
	return ScoreExperienceYears(TotalYears(durations), minRequired, maxIdeal)
}
