// Package engine runs the candidate-institution evaluation pipeline: config
// validation, the five dimension scorers, feature vector assembly and the
// scoring strategy, producing an explained prediction.
package engine

import (
	"fmt"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/model"
	"github.com/mauricio/profile-matcher/internal/schemas"
	"github.com/mauricio/profile-matcher/internal/scoring"
	"github.com/mauricio/profile-matcher/internal/types"
)

// topFeatureCount is how many strengths and weaknesses a prediction reports.
const topFeatureCount = 3

// Report is a full evaluation result: the prediction plus the per-dimension
// detail the scorers produced along the way.
type Report struct {
	Prediction    types.Prediction        `json:"prediction"`
	HardSkills    scoring.HardSkillsScore `json:"hard_skills"`
	SoftSkills    scoring.SoftSkillsScore `json:"soft_skills"`
	Experience    scoring.ExperienceScore `json:"experience"`
	Education     scoring.EducationScore  `json:"education"`
	Languages     scoring.LanguagesScore  `json:"languages"`
	FeatureVector []float64               `json:"feature_vector"`
}

// Engine evaluates candidate profiles against institutional configurations
// with a pluggable scoring strategy.
type Engine struct {
	strategy      model.Strategy
	maxIdealYears float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy swaps the scoring strategy, e.g. for a trained model artifact.
func WithStrategy(s model.Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithMaxIdealYears overrides where the experience curve saturates.
func WithMaxIdealYears(years float64) Option {
	return func(e *Engine) { e.maxIdealYears = years }
}

// New builds an engine. The default strategy is the weighted-sum heuristic.
func New(opts ...Option) *Engine {
	e := &Engine{
		strategy:      model.Heuristic{},
		maxIdealYears: scoring.DefaultMaxIdealYears,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate scores a parsed candidate profile against a config. The config is
// re-validated here so a hand-built struct cannot slip past the invariants.
// Empty profile sub-fields are not errors, they degrade to zero scores.
func (e *Engine) Evaluate(profile *types.CandidateProfile, cfg *types.InstitutionalConfig) (*Report, error) {
	if profile == nil {
		return nil, &types.InputValidationError{}
	}
	if cfg == nil {
		return nil, &types.ConfigError{Reason: "config is nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hard := scoring.ScoreHardSkills(profile.HardSkills, cfg.Requirements.RequiredSkills, cfg.Requirements.PreferredSkills)
	soft := scoring.ScoreSoftSkills(profile.SoftSkills, cfg.Requirements.RequiredSoftSkills)

	degrees := make([]string, 0, len(profile.Education))
	for _, item := range profile.Education {
		degrees = append(degrees, item.Degree)
	}
	education := scoring.ScoreEducation(degrees, cfg.Requirements.RequiredEducationLevel)

	durations := make([]string, 0, len(profile.Experience))
	for _, item := range profile.Experience {
		durations = append(durations, item.Duration)
	}
	experience, err := scoring.ScoreExperience(durations, cfg.Requirements.MinExperienceYears, e.maxIdealYears)
	if err != nil {
		return nil, err
	}

	languages := scoring.ScoreLanguages(profile.Languages, cfg.Requirements.RequiredLanguages)

	cvScores := types.CVScores{
		HardSkills: hard.Score,
		SoftSkills: soft.Score,
		Experience: experience.Score,
		Education:  education.Score,
		Languages:  languages.Score,
	}

	vector, err := features.Build(features.Input{
		Scores:      cvScores,
		Weights:     cfg.Weights,
		TotalYears:  experience.TotalYears,
		MinRequired: cfg.Requirements.MinExperienceYears,
	})
	if err != nil {
		return nil, err
	}

	score, err := e.strategy.Predict(vector)
	if err != nil {
		return nil, err
	}
	contributions, err := e.strategy.Contributions(vector)
	if err != nil {
		return nil, err
	}

	return &Report{
		Prediction: types.Prediction{
			MatchScore:           score,
			Classification:       types.Classify(score, cfg.Thresholds),
			FeatureContributions: contributions,
			TopStrengths:         model.TopContributions(contributions, topFeatureCount, true),
			TopWeaknesses:        model.TopContributions(contributions, topFeatureCount, false),
			CVScores:             cvScores,
		},
		HardSkills:    hard,
		SoftSkills:    soft,
		Experience:    experience,
		Education:     education,
		Languages:     languages,
		FeatureVector: vector,
	}, nil
}

// EvaluateJSON validates both documents against their schemas, parses them
// and runs the evaluation.
func (e *Engine) EvaluateJSON(profileJSON, configJSON []byte) (*Report, error) {
	if err := schemas.ValidateCandidateProfile(string(profileJSON)); err != nil {
		return nil, &types.InputValidationError{Cause: err}
	}
	if err := schemas.ValidateInstitutionalConfig(string(configJSON)); err != nil {
		return nil, &types.ConfigError{Reason: "config does not match schema", Cause: err}
	}

	profile, err := types.ParseCandidateProfile(profileJSON)
	if err != nil {
		return nil, err
	}
	cfg, err := types.ParseInstitutionalConfig(configJSON)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(profile, cfg)
}

// ReloadableEngine pairs an engine with a model registry so the serving
// strategy can be swapped to a newly trained artifact at runtime.
type ReloadableEngine struct {
	registry *model.Registry
	fallback *Engine
}

// NewReloadable builds an engine that serves the registry's artifact when
// one is published and the heuristic otherwise.
func NewReloadable(registry *model.Registry) *ReloadableEngine {
	return &ReloadableEngine{registry: registry, fallback: New()}
}

// Evaluate uses the registry's current artifact if one is published.
func (r *ReloadableEngine) Evaluate(profile *types.CandidateProfile, cfg *types.InstitutionalConfig) (*Report, error) {
	if artifact, err := r.registry.Get(); err == nil {
		return New(WithStrategy(artifact)).Evaluate(profile, cfg)
	}
	return r.fallback.Evaluate(profile, cfg)
}

// EvaluateWithModel is like Evaluate but fails instead of falling back when
// no artifact is published.
func (r *ReloadableEngine) EvaluateWithModel(profile *types.CandidateProfile, cfg *types.InstitutionalConfig) (*Report, error) {
	artifact, err := r.registry.Get()
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate with trained model: %w", err)
	}
	return New(WithStrategy(artifact)).Evaluate(profile, cfg)
}
