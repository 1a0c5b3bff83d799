package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"predict-lab/domain"
)

func storedPrediction(projectID string, at time.Time) domain.Prediction {
	return domain.Prediction{
		ID:          uuid.New(),
		ProjectID:   projectID,
		AlgorithmID: "a1",
		Features:    domain.Features{Class: domain.FeatureDouble, Values: []any{1.5}},
		Labels:      domain.Labels{{Name: "fraud", Score: 0.9}},
		At:          at,
	}
}

func TestPredictionRepository_RecentPredictions(t *testing.T) {
	req := require.New(t)
	repo := NewPredictionRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	oldest := storedPrediction("p1", at)
	middle := storedPrediction("p1", at.Add(time.Minute))
	newest := storedPrediction("p1", at.Add(2*time.Minute))
	other := storedPrediction("p2", at)

	for _, p := range []domain.Prediction{oldest, middle, newest, other} {
		req.NoError(repo.InsertPrediction(p))
	}

	fetched, err := repo.RecentPredictions("p1", 0)
	req.NoError(err)
	req.Len(fetched, 3)
	// Newest first thanks to the padded timestamp key.
	req.Equal(newest.ID, fetched[0].ID)
	req.Equal(middle.ID, fetched[1].ID)
	req.Equal(oldest.ID, fetched[2].ID)

	limited, err := repo.RecentPredictions("p1", 2)
	req.NoError(err)
	req.Len(limited, 2)
	req.Equal(newest.ID, limited[0].ID)
}

func TestPredictionRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	repo := NewPredictionRepository(openTestDB(t), slog.Default())

	prediction := storedPrediction("p1", time.Now().UTC())
	req.NoError(repo.InsertPrediction(prediction))

	fetched, err := repo.RecentPredictions("p1", 1)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(prediction.ID, fetched[0].ID)
	req.Equal(prediction.AlgorithmID, fetched[0].AlgorithmID)
	req.Equal(prediction.Labels, fetched[0].Labels)
}

func TestPredictionRepository_EmptyProject(t *testing.T) {
	req := require.New(t)
	repo := NewPredictionRepository(openTestDB(t), slog.Default())

	fetched, err := repo.RecentPredictions("ghost", 10)
	req.NoError(err)
	req.Empty(fetched)
}
