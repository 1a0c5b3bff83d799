// Package validation holds the pure predicates guarding both sides of
// a dispatch. No side effects, no errors: callers decide the failure
// kind from the boolean.
package validation

import (
	"predict-lab/domain"
)

// ValidateFeatures reports whether features carry exactly expectedSize
// elements of the declared class. Size and type checks are independent;
// both must pass. FeatureCustom always passes the type check.
func ValidateFeatures(class domain.FeatureClass, expectedSize int, features domain.Features) bool {
	sizeOK := len(features.Values) == expectedSize

	typeOK := true
	for _, v := range features.Values {
		if !matchesClass(class, v) {
			typeOK = false
			break
		}
	}
	return sizeOK && typeOK
}

// ValidateLabels reports whether the set of label names equals the
// declared label set exactly. No subset or superset tolerance.
func ValidateLabels(expected []string, labels domain.Labels) bool {
	declared := make(map[string]struct{}, len(expected))
	for _, name := range expected {
		declared[name] = struct{}{}
	}
	produced := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		produced[label.Name] = struct{}{}
	}

	if len(declared) != len(produced) {
		return false
	}
	for name := range produced {
		if _, ok := declared[name]; !ok {
			return false
		}
	}
	return true
}

// matchesClass checks one element's runtime type against the declared
// class. Vector elements are accepted alongside scalars.
func matchesClass(class domain.FeatureClass, v any) bool {
	switch class {
	case domain.FeatureCustom:
		return true
	case domain.FeatureDouble:
		switch v.(type) {
		case float64, []float64:
			return true
		}
	case domain.FeatureFloat:
		switch v.(type) {
		case float32, []float32:
			return true
		}
	case domain.FeatureInt:
		switch v.(type) {
		case int, int32, int64, []int, []int32, []int64:
			return true
		}
	case domain.FeatureString:
		switch v.(type) {
		case string, []string:
			return true
		}
	}
	return false
}
