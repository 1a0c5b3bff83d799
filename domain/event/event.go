package event

import (
	"time"

	"predict-lab/domain"
)

// DomainEvent is anything the publish path can ship, keyed by the
// project it belongs to.
type DomainEvent interface {
	ProjectID() string
}

// PredictionCompleted is emitted after a prediction persisted
// successfully. Publication is best-effort: consumers may lag or
// drop events without affecting the dispatch result.
type PredictionCompleted struct {
	Prediction domain.Prediction
	At         time.Time
}

func (e PredictionCompleted) ProjectID() string {
	return e.Prediction.ProjectID
}

// NewPredictionCompleted stamps the event with the publish time.
func NewPredictionCompleted(p domain.Prediction) PredictionCompleted {
	return PredictionCompleted{Prediction: p, At: time.Now().UTC()}
}
