package domain

// PolicyKind tags the algorithm selection variants.
type PolicyKind string

const (
	PolicyNone     PolicyKind = "none"
	PolicyDefault  PolicyKind = "default"
	PolicyWeighted PolicyKind = "weighted"
)

// AlgorithmWeight assigns a positive weight to one algorithm id.
// Weights are kept as an ordered slice so ties resolve by
// declaration order.
type AlgorithmWeight struct {
	AlgorithmID string  `json:"algorithm_id"`
	Weight      float64 `json:"weight"`
}

// AlgorithmPolicy selects zero or one algorithm id from a project's
// registered set. Selection is re-evaluated on every call; the policy
// holds no cached state.
type AlgorithmPolicy struct {
	Kind      PolicyKind        `json:"kind"`
	DefaultID string            `json:"default_id,omitempty"`
	Weights   []AlgorithmWeight `json:"weights,omitempty"`
}

// WeightSum totals the declared weights. A non-empty weighted policy
// must keep this strictly positive.
func (p AlgorithmPolicy) WeightSum() float64 {
	var sum float64
	for _, w := range p.Weights {
		sum += w.Weight
	}
	return sum
}
