package domain

// BackendKind tags the closed set of backend variants.
type BackendKind string

const (
	BackendLocal         BackendKind = "local"
	BackendRemoteServing BackendKind = "remote_serving"
)

// Backend is a tagged union: exactly one of Local or Remote is set,
// according to Kind. Adding a backend kind means extending this union
// and the exhaustive switch in the executor, not subclassing.
type Backend struct {
	Kind   BackendKind           `json:"kind"`
	Local  *LocalBackend         `json:"local,omitempty"`
	Remote *RemoteServingBackend `json:"remote,omitempty"`
}

// LocalBackend answers with a fixed precomputed result.
// Used for stubs, tests and simple policies; it cannot fail.
type LocalBackend struct {
	Computed Labels `json:"computed"`
}

// RemoteServingBackend delegates computation to an external serving
// process over HTTP. Host and Port are freeform strings: they are
// checked at call time, not at registration time. The transformer
// names reference a registered pair converting between the project's
// generic representation and the backend's wire format.
type RemoteServingBackend struct {
	Host               string `json:"host"`
	Port               string `json:"port"`
	FeatureTransformer string `json:"feature_transformer"`
	LabelTransformer   string `json:"label_transformer"`
}

// SecurityDescriptor carries per-algorithm credentials applied to
// remote serving calls.
type SecurityDescriptor struct {
	Headers     map[string]string `json:"headers,omitempty"`
	BearerToken string            `json:"bearer_token,omitempty"`
}

// Algorithm is one concrete predictor registered under a project.
type Algorithm struct {
	ID        string             `json:"id"`
	ProjectID string             `json:"project_id"`
	Backend   Backend            `json:"backend"`
	Security  SecurityDescriptor `json:"security"`
}
