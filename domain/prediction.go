package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one resolved input/output pair plus the identifiers
// that produced it. Immutable once created: the dispatcher owns it
// until it is handed to the persistence and publish collaborators,
// which receive their own copy.
type Prediction struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   string    `json:"project_id"`
	AlgorithmID string    `json:"algorithm_id"`
	Features    Features  `json:"features"`
	Labels      Labels    `json:"labels"`
	// Examples is a feedback placeholder; dispatch never populates it.
	Examples []Example `json:"examples,omitempty"`
	At       time.Time `json:"at"`
}

// Example pairs observed features with their ground-truth labels.
type Example struct {
	Features Features `json:"features"`
	Labels   Labels   `json:"labels"`
}

// NewPrediction builds a prediction with a fresh identifier.
func NewPrediction(projectID, algorithmID string, features Features, labels Labels) Prediction {
	return Prediction{
		ID:          uuid.New(),
		ProjectID:   projectID,
		AlgorithmID: algorithmID,
		Features:    features,
		Labels:      labels,
		At:          time.Now().UTC(),
	}
}
