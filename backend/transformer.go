package backend

import (
	"encoding/json"
	"fmt"

	"predict-lab/domain"
	"predict-lab/errors"
)

// FeatureTransformer converts the project's generic feature
// representation into a remote backend's wire payload.
type FeatureTransformer interface {
	TransformFeatures(features domain.Features) ([]byte, error)
}

// LabelTransformer converts a remote backend's wire response back into
// the project's label representation. A malformed body is a decode
// failure; a well-formed body that cannot be mapped is a transformer
// failure. The two surface as distinct kinds.
type LabelTransformer interface {
	TransformLabels(body []byte) (domain.Labels, error)
}

// Transformer pair names referenced by RemoteServingBackend.
const (
	TransformerJSON      = "json"
	TransformerTFServing = "tfserving"
)

var featureTransformers = map[string]FeatureTransformer{
	TransformerJSON:      jsonFeatures{},
	TransformerTFServing: tfServingFeatures{},
}

var labelTransformers = map[string]LabelTransformer{
	TransformerJSON:      jsonLabels{},
	TransformerTFServing: tfServingLabels{},
}

// FeatureTransformerByName resolves a registered transformer.
// Unknown names are an invalid argument caught at call time, since
// backends store transformer names as freeform strings.
func FeatureTransformerByName(name string) (FeatureTransformer, error) {
	t, ok := featureTransformers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown feature transformer %q", errors.ErrInvalidArgument, name)
	}
	return t, nil
}

func LabelTransformerByName(name string) (LabelTransformer, error) {
	t, ok := labelTransformers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown label transformer %q", errors.ErrInvalidArgument, name)
	}
	return t, nil
}

// jsonFeatures is the plain wire format: {"features": [...]}.
type jsonFeatures struct{}

func (jsonFeatures) TransformFeatures(features domain.Features) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{"features": features.Values})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFeaturesTransformer, err)
	}
	return payload, nil
}

// jsonLabels expects {"labels": [{"label": ..., "score": ...}]}.
type jsonLabels struct{}

func (jsonLabels) TransformLabels(body []byte) (domain.Labels, error) {
	var wire struct {
		Labels []domain.Label `json:"labels"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrBackendDecode, err)
	}
	if len(wire.Labels) == 0 {
		return nil, fmt.Errorf("%w: response carried no labels", errors.ErrLabelsTransformer)
	}
	return wire.Labels, nil
}

// tfServingFeatures speaks the TensorFlow Serving predict format,
// wrapping the values as a single instance row.
type tfServingFeatures struct{}

func (tfServingFeatures) TransformFeatures(features domain.Features) ([]byte, error) {
	payload, err := json.Marshal(map[string]any{"instances": []any{features.Values}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFeaturesTransformer, err)
	}
	return payload, nil
}

// tfServingLabels reads {"predictions": [{"label": ..., "score": ...}]}.
type tfServingLabels struct{}

func (tfServingLabels) TransformLabels(body []byte) (domain.Labels, error) {
	var wire struct {
		Predictions []domain.Label `json:"predictions"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrBackendDecode, err)
	}
	if len(wire.Predictions) == 0 {
		return nil, fmt.Errorf("%w: response carried no predictions", errors.ErrLabelsTransformer)
	}
	return wire.Predictions, nil
}
