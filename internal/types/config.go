package types

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// weightSumTolerance is the allowed deviation of the weight sum from 1.0.
const weightSumTolerance = 0.01

// Weights holds the institutional importance of each CV dimension. They must sum to 1.0.
type Weights struct {
	HardSkills float64 `json:"hard_skills" validate:"gte=0,lte=1"`
	SoftSkills float64 `json:"soft_skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `json:"education" validate:"gte=0,lte=1"`
	Languages  float64 `json:"languages" validate:"gte=0,lte=1"`
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.HardSkills + w.SoftSkills + w.Experience + w.Education + w.Languages
}

// Requirements holds the institution's hiring requirements.
type Requirements struct {
	MinExperienceYears     float64  `json:"min_experience_years" validate:"gte=0"`
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills,omitempty"`
	RequiredSoftSkills     []string `json:"required_soft_skills,omitempty"`
	RequiredEducationLevel string   `json:"required_education_level,omitempty"`
	RequiredLanguages      []string `json:"required_languages,omitempty"`
}

// Thresholds holds the classification cutoffs. Apto must be strictly greater
// than Considerado.
type Thresholds struct {
	Apto        float64 `json:"apto" validate:"gte=0,lte=1"`
	Considerado float64 `json:"considerado" validate:"gte=0,lte=1"`
}

// InstitutionalConfig is a validated institutional matching configuration.
// Construct it through NewInstitutionalConfig or ParseInstitutionalConfig so
// an invalid record is rejected rather than silently repaired.
type InstitutionalConfig struct {
	Weights      Weights      `json:"weights"`
	Requirements Requirements `json:"requirements"`
	Thresholds   Thresholds   `json:"thresholds"`
}

// ConfigError reports an invalid institutional configuration.
type ConfigError struct {
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid institutional config: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid institutional config: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// DefaultThresholds are the classification cutoffs used when a config omits them.
var DefaultThresholds = Thresholds{Apto: 0.70, Considerado: 0.50}

// NewInstitutionalConfig builds a validated config. Invalid weights or
// thresholds return a ConfigError and no config.
func NewInstitutionalConfig(w Weights, r Requirements, t Thresholds) (*InstitutionalConfig, error) {
	cfg := &InstitutionalConfig{Weights: w, Requirements: r, Thresholds: t}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseInstitutionalConfig decodes and validates a config JSON document.
// Missing thresholds fall back to DefaultThresholds before validation.
func ParseInstitutionalConfig(data []byte) (*InstitutionalConfig, error) {
	var cfg InstitutionalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Reason: "malformed JSON", Cause: err}
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = DefaultThresholds
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the weight-sum and threshold-ordering invariants.
func (c *InstitutionalConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Reason: "field out of range", Cause: err}
	}

	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigError{Reason: fmt.Sprintf("weights must sum to 1.0 ±%.2f (got %.4f)", weightSumTolerance, sum)}
	}

	if c.Thresholds.Apto <= c.Thresholds.Considerado {
		return &ConfigError{Reason: fmt.Sprintf("apto threshold (%.2f) must be greater than considerado (%.2f)",
			c.Thresholds.Apto, c.Thresholds.Considerado)}
	}

	return nil
}
