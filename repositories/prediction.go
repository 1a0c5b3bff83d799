//go:generate go run go.uber.org/mock/mockgen -source=prediction.go -destination=../mocks/mock_prediction_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"predict-lab/domain"
)

type IPredictionRepository interface {
	InsertPrediction(prediction domain.Prediction) error
	RecentPredictions(projectID string, limit int) ([]domain.Prediction, error)
}

type PredictionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPredictionRepository(db *badger.DB, log *slog.Logger) PredictionRepository {
	return PredictionRepository{db: db, log: log}
}

// InsertPrediction persists one prediction row.
// The key is formatted as "prediction:{project_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using the prediction UUID as a collision
//     disconnector if two predictions land at the same nanosecond.
func (r PredictionRepository) InsertPrediction(prediction domain.Prediction) error {
	key := fmt.Sprintf("prediction:%s:%019d:%s",
		prediction.ProjectID,
		prediction.At.UnixNano(),
		prediction.ID,
	)
	bytes, err := json.Marshal(prediction)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// RecentPredictions returns up to limit predictions for a project,
// newest first. The padded timestamp in the key makes a reverse prefix
// scan come out already sorted.
func (r PredictionRepository) RecentPredictions(projectID string, limit int) ([]domain.Prediction, error) {
	var rows [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("prediction:%s:", projectID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then walk backwards.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(rows) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				rows = append(rows, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	predictions := make([]domain.Prediction, 0, len(rows))
	for _, row := range rows {
		var prediction domain.Prediction
		if err := json.Unmarshal(row, &prediction); err != nil {
			return nil, err
		}
		predictions = append(predictions, prediction)
	}
	return predictions, nil
}
