// Package synthetic generates labeled training data for the match-score
// models. Candidate and institution profiles are sampled from realistic
// distributions and labeled by a set of expert rules, so the trained model
// learns the rules' judgment including the interactions a plain weighted
// sum misses.
package synthetic

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/types"
)

// DefaultSeed keeps regenerated datasets reproducible across runs.
const DefaultSeed = 42

// DefaultSampleCount is the dataset size used by the training pipeline.
const DefaultSampleCount = 5000

const (
	maxYears    = 10.0
	maxRequired = 5.0
	noiseSigma  = 0.04
)

// educationLevels are the ordinal scores of the recognized degree rungs.
var educationLevels = []float64{0.25, 0.45, 0.75, 0.92, 1.0}

// Sample is one labeled training example.
type Sample struct {
	Features       []float64
	MatchScore     float64
	Classification types.Classification
}

// Generator samples synthetic candidate/institution pairs and labels them.
// Each generator owns its RNG source, so two generators with the same seed
// produce identical datasets.
type Generator struct {
	rnd *rand.Rand

	hardSkills distuv.Beta
	softSkills distuv.Beta
	experience distuv.Beta
	languages  distuv.Beta
	years      distuv.Gamma
	minRequired  distuv.Uniform
	noise      distuv.Normal
	weights    *distmv.Dirichlet
}

// NewGenerator returns a generator with all sampling distributions seeded
// from a single source.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewSource(seed)
	return &Generator{
		rnd: rand.New(src),

		// Most candidates score mid-to-high on digital hard skills,
		// evenly on soft skills and experience, low on foreign languages.
		hardSkills: distuv.Beta{Alpha: 5, Beta: 2, Src: src},
		softSkills: distuv.Beta{Alpha: 4, Beta: 3, Src: src},
		experience: distuv.Beta{Alpha: 3, Beta: 3, Src: src},
		languages:  distuv.Beta{Alpha: 3, Beta: 4, Src: src},

		// Gamma(3,1) peaks around 2-4 years of experience.
		years:     distuv.Gamma{Alpha: 3, Beta: 1, Src: src},
		minRequired: distuv.Uniform{Min: 0, Max: maxRequired, Src: src},
		noise:     distuv.Normal{Mu: 0, Sigma: noiseSigma, Src: src},

		// Dirichlet guarantees the five weights sum to 1.
		weights: distmv.NewDirichlet([]float64{2, 2, 2, 2, 2}, src),
	}
}

func (g *Generator) sampleScores() types.CVScores {
	return types.CVScores{
		HardSkills: g.hardSkills.Rand(),
		SoftSkills: g.softSkills.Rand(),
		Experience: g.experience.Rand(),
		Education:  educationLevels[g.rnd.Intn(len(educationLevels))],
		Languages:  g.languages.Rand(),
	}
}

func (g *Generator) sampleWeights() types.Weights {
	w := g.weights.Rand(nil)
	return types.Weights{
		HardSkills: w[0],
		SoftSkills: w[1],
		Experience: w[2],
		Education:  w[3],
		Languages:  w[4],
	}
}

// GenerateSample draws one candidate/institution pair and labels it.
func (g *Generator) GenerateSample() (Sample, error) {
	scores := g.sampleScores()
	weights := g.sampleWeights()

	totalYears := g.years.Rand()
	if totalYears > maxYears {
		totalYears = maxYears
	}
	minRequired := g.minRequired.Rand()

	vector, err := features.Build(features.Input{
		Scores:      scores,
		Weights:     weights,
		TotalYears:  totalYears,
		MinRequired: minRequired,
	})
	if err != nil {
		return Sample{}, err
	}

	score := expertScore(scores, weights, totalYears, minRequired)
	score = clip01(score + g.noise.Rand())

	return Sample{
		Features:       vector,
		MatchScore:     score,
		Classification: types.Classify(score, types.DefaultThresholds),
	}, nil
}

// GenerateDataset draws n labeled samples.
func (g *Generator) GenerateDataset(n int) ([]Sample, error) {
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		sample, err := g.GenerateSample()
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// expertScore is the rule set the model is trained to reproduce. Rules fire
// in a fixed order; bonuses cap the running score at 1.
func expertScore(s types.CVScores, w types.Weights, totalYears, minRequired float64) float64 {
	scores := []float64{s.HardSkills, s.SoftSkills, s.Experience, s.Education, s.Languages}
	weights := []float64{w.HardSkills, w.SoftSkills, w.Experience, w.Education, w.Languages}
	delta := totalYears - minRequired

	// Rule 1: weighted base score.
	score := s.HardSkills*w.HardSkills +
		s.SoftSkills*w.SoftSkills +
		s.Experience*w.Experience +
		s.Education*w.Education +
		s.Languages*w.Languages

	// Rule 2: proportional penalty below the experience minimum.
	if totalYears < minRequired {
		deficitRatio := 1.0
		if minRequired > 0 {
			deficitRatio = totalYears / minRequired
		}
		score *= 0.5 + 0.5*deficitRatio
	}

	// Rules 3-4: weak skills that the institution weighs heavily.
	if s.HardSkills < 0.5 && w.HardSkills > 0.3 {
		score *= 0.7
	}
	if s.SoftSkills < 0.4 && w.SoftSkills > 0.25 {
		score *= 0.75
	}

	// Rule 5: top education bonus.
	if s.Education >= 0.92 {
		score = cap1(score * 1.08)
	}

	// Rule 6: well-rounded profile bonus.
	if minScore(scores) >= 0.7 {
		score = cap1(score * 1.10)
	}

	// Rule 7: education below bachelor level with significant weight.
	if s.Education < 0.75 && w.Education > 0.20 {
		score *= 0.85
	}

	// Rule 8: well above the experience minimum.
	if delta > 2.0 {
		score = cap1(score * 1.05)
	}

	// Rule 9: weak languages where they matter.
	if s.Languages < 0.5 && w.Languages > 0.15 {
		score *= 0.80
	}

	// Rule 10: hard/soft skills synergy.
	if s.HardSkills > 0.75 && s.SoftSkills > 0.75 {
		score = cap1(score * 1.07)
	}

	// Rules 11-12: performance on the institution's top-weighted dimension.
	top := argmax(weights)
	if weights[top] > 0.35 && scores[top] < 0.4 {
		score *= 0.65
	}
	if weights[top] > 0.30 && scores[top] > 0.85 {
		score = cap1(score * 1.06)
	}

	// Rule 13: unbalanced profile penalty.
	if stat.PopStdDev(scores, nil) > 0.35 {
		score *= 0.90
	}

	// Rule 14: seasoned and well-educated bonus.
	if s.Experience > 0.7 && s.Education >= 0.75 {
		score = cap1(score * 1.05)
	}

	// Rule 15: multiple critical failures.
	failures := 0
	if s.HardSkills < 0.3 {
		failures++
	}
	if s.SoftSkills < 0.3 {
		failures++
	}
	if s.Experience < 0.3 {
		failures++
	}
	if s.Education < 0.5 {
		failures++
	}
	if failures >= 2 {
		score *= 0.60
	}

	return score
}

// argmax returns the index of the largest value, first wins on ties.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func minScore(values []float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func cap1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

func clip01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	return cap1(v)
}
