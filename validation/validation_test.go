package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"predict-lab/domain"
)

func TestValidateFeatures_SizeMismatch(t *testing.T) {
	req := require.New(t)

	features := domain.Features{
		Class:  domain.FeatureDouble,
		Values: []any{1.5, 2.5},
	}

	// Wrong size fails regardless of element types, even for custom.
	req.False(ValidateFeatures(domain.FeatureDouble, 3, features))
	req.False(ValidateFeatures(domain.FeatureCustom, 3, features))
	req.True(ValidateFeatures(domain.FeatureDouble, 2, features))
}

func TestValidateFeatures_TypeCheck(t *testing.T) {
	tests := []struct {
		name  string
		class domain.FeatureClass
		value any
		want  bool
	}{
		{"double scalar", domain.FeatureDouble, 1.5, true},
		{"double vector", domain.FeatureDouble, []float64{1, 2}, true},
		{"double rejects string", domain.FeatureDouble, "nope", false},
		{"float scalar", domain.FeatureFloat, float32(1.5), true},
		{"float rejects double", domain.FeatureFloat, 1.5, false},
		{"int scalar", domain.FeatureInt, 42, true},
		{"int64 scalar", domain.FeatureInt, int64(42), true},
		{"int rejects double", domain.FeatureInt, 42.0, false},
		{"string scalar", domain.FeatureString, "spam", true},
		{"string vector", domain.FeatureString, []string{"a", "b"}, true},
		{"string rejects int", domain.FeatureString, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := domain.Features{Class: tt.class, Values: []any{tt.value}}
			require.Equal(t, tt.want, ValidateFeatures(tt.class, 1, features))
		})
	}
}

func TestValidateFeatures_CustomAcceptsAnything(t *testing.T) {
	req := require.New(t)

	features := domain.Features{
		Class:  domain.FeatureCustom,
		Values: []any{1.5, "mixed", []byte("blob")},
	}
	req.True(ValidateFeatures(domain.FeatureCustom, 3, features))
}

func TestValidateLabels_ExactSetEquality(t *testing.T) {
	req := require.New(t)

	declared := []string{"spam", "ham"}

	req.True(ValidateLabels(declared, domain.Labels{
		{Name: "ham", Score: 0.4},
		{Name: "spam", Score: 0.6},
	}))

	// Subset is rejected.
	req.False(ValidateLabels(declared, domain.Labels{
		{Name: "spam", Score: 1.0},
	}))

	// Superset is rejected.
	req.False(ValidateLabels(declared, domain.Labels{
		{Name: "spam", Score: 0.5},
		{Name: "ham", Score: 0.3},
		{Name: "eggs", Score: 0.2},
	}))

	// Unknown name is rejected.
	req.False(ValidateLabels(declared, domain.Labels{
		{Name: "spam", Score: 0.5},
		{Name: "eggs", Score: 0.5},
	}))
}
