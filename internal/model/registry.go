package model

import "sync/atomic"

// Registry publishes the serving model artifact. Reload swaps the artifact
// atomically, so concurrent readers always observe a complete model and
// never need a lock.
type Registry struct {
	artifact atomic.Pointer[Artifact]
}

// NewRegistry returns an empty registry. Get fails until Reload publishes
// an artifact.
func NewRegistry() *Registry {
	return &Registry{}
}

// Get returns the current artifact, or ModelNotReadyError when none has been
// published yet.
func (r *Registry) Get() (*Artifact, error) {
	artifact := r.artifact.Load()
	if artifact == nil {
		return nil, &ModelNotReadyError{Reason: "no artifact has been loaded"}
	}
	return artifact, nil
}

// Reload publishes a new artifact. In-flight predictions keep the artifact
// they already hold.
func (r *Registry) Reload(artifact *Artifact) {
	r.artifact.Store(artifact)
}

// Ready reports whether an artifact is published.
func (r *Registry) Ready() bool {
	return r.artifact.Load() != nil
}
