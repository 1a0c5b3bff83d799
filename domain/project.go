// Package domain contains core concepts of the prediction system.
// A Project declares the contract predictions must honor; Algorithms
// registered under it carry the backends that actually compute them.
package domain

// ProblemType declares what kind of answer a project expects.
type ProblemType string

const (
	Classification ProblemType = "classification"
	Regression     ProblemType = "regression"
)

// FeatureClass is the declared runtime type of every feature element.
// FeatureCustom is an escape hatch for untyped payloads.
type FeatureClass string

const (
	FeatureDouble FeatureClass = "double"
	FeatureFloat  FeatureClass = "float"
	FeatureInt    FeatureClass = "int"
	FeatureString FeatureClass = "string"
	FeatureCustom FeatureClass = "custom"
)

// ProjectConfig is the contract inbound features and outbound labels
// are validated against.
type ProjectConfig struct {
	Problem      ProblemType  `json:"problem"`
	FeatureClass FeatureClass `json:"feature_class"`
	FeatureSize  int          `json:"feature_size"`
	LabelSet     []string     `json:"label_set"`
}

// Project is a named prediction target with its registered algorithms
// and the policy used when no algorithm is named explicitly.
type Project struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Config     ProjectConfig   `json:"config"`
	Algorithms []Algorithm     `json:"algorithms"`
	Policy     AlgorithmPolicy `json:"policy"`
}

// AlgorithmByID returns a copy of the registered algorithm.
// Dispatch works on this copy so a concurrent deletion cannot
// corrupt an in-flight prediction.
func (p Project) AlgorithmByID(id string) (Algorithm, bool) {
	for _, a := range p.Algorithms {
		if a.ID == id {
			return a, true
		}
	}
	return Algorithm{}, false
}

// AlgorithmIDs lists registered algorithm ids in registration order.
func (p Project) AlgorithmIDs() []string {
	ids := make([]string, 0, len(p.Algorithms))
	for _, a := range p.Algorithms {
		ids = append(ids, a.ID)
	}
	return ids
}
