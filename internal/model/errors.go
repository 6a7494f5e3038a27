package model

import "fmt"

// ModelNotReadyError indicates a prediction was requested before any trained
// artifact was loaded.
type ModelNotReadyError struct {
	Reason string
}

func (e *ModelNotReadyError) Error() string {
	return fmt.Sprintf("model not ready: %s", e.Reason)
}

// ArtifactError indicates a persisted model artifact cannot be used, usually
// a version or shape mismatch against the current feature layout.
type ArtifactError struct {
	Reason string
	Cause  error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid model artifact: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid model artifact: %s", e.Reason)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
