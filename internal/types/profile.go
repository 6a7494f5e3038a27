// Package types provides type definitions for structured data used throughout the matching engine.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EducationItem represents a single education entry extracted from a CV.
type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ExperienceItem represents a single work experience entry extracted from a CV.
// Duration is free text ("2 years", "6 meses", "2021 - 2023").
type ExperienceItem struct {
	Role        string `json:"role"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// CandidateProfile is the structured candidate profile the matching engine consumes.
// It is produced by the upstream extraction pipeline and treated as immutable here.
type CandidateProfile struct {
	HardSkills []string         `json:"hard_skills"`
	SoftSkills []string         `json:"soft_skills"`
	Education  []EducationItem  `json:"education"`
	Experience []ExperienceItem `json:"experience"`
	Languages  []string         `json:"languages"`
}

// requiredProfileKeys are the top-level keys the input contract demands.
// Missing keys are a validation failure; empty values are not.
var requiredProfileKeys = []string{"hard_skills", "soft_skills", "education", "experience"}

// profileDocument mirrors the wire format of the extraction pipeline, where
// languages live under personal_info.
type profileDocument struct {
	HardSkills   []string         `json:"hard_skills"`
	SoftSkills   []string         `json:"soft_skills"`
	Education    []EducationItem  `json:"education"`
	Experience   []ExperienceItem `json:"experience"`
	PersonalInfo struct {
		Languages []string `json:"languages"`
	} `json:"personal_info"`
}

// InputValidationError reports a structurally invalid candidate document.
type InputValidationError struct {
	MissingKeys []string
	Cause       error
}

func (e *InputValidationError) Error() string {
	if len(e.MissingKeys) > 0 {
		return fmt.Sprintf("invalid candidate profile: missing keys: %s", strings.Join(e.MissingKeys, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid candidate profile: %v", e.Cause)
	}
	return "invalid candidate profile"
}

func (e *InputValidationError) Unwrap() error {
	return e.Cause
}

// ParseCandidateProfile decodes a candidate document from the extraction
// pipeline's wire format. Missing required top-level keys fail validation;
// empty sub-fields (no education, no languages) are allowed and degrade to
// zero scores downstream.
func ParseCandidateProfile(data []byte) (*CandidateProfile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InputValidationError{Cause: err}
	}

	var missing []string
	for _, key := range requiredProfileKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &InputValidationError{MissingKeys: missing}
	}

	var doc profileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &InputValidationError{Cause: err}
	}

	return &CandidateProfile{
		HardSkills: doc.HardSkills,
		SoftSkills: doc.SoftSkills,
		Education:  doc.Education,
		Experience: doc.Experience,
		Languages:  doc.PersonalInfo.Languages,
	}, nil
}
