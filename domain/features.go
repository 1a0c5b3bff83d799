package domain

// Features is an ordered sequence of scalar or vector values together
// with the class the project declared for them. Values stay untyped
// here; the validation package checks runtime types against the class.
type Features struct {
	Class  FeatureClass `json:"class"`
	Values []any        `json:"values"`
}

// Label is one (name, score) pair produced by a backend.
type Label struct {
	Name  string  `json:"label"`
	Score float64 `json:"score"`
}

// Labels is the ordered result set of one prediction.
type Labels []Label

// Names returns the label names in result order.
func (l Labels) Names() []string {
	names := make([]string, 0, len(l))
	for _, label := range l {
		names = append(names, label.Name)
	}
	return names
}
