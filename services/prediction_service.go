//go:generate go run go.uber.org/mock/mockgen -source=prediction_service.go -destination=../mocks/mock_prediction_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"predict-lab/backend"
	"predict-lab/domain"
	"predict-lab/domain/event"
	"predict-lab/errors"
	"predict-lab/observability"
	"predict-lab/policy"
	"predict-lab/repositories"
	"predict-lab/sink"
	"predict-lab/validation"
)

type IPredictionService interface {
	Predict(ctx context.Context, project domain.Project, features domain.Features, algorithmID *string) (domain.Prediction, error)
	RecentPredictions(projectID string, limit int) ([]domain.Prediction, error)
}

// PublishConfig gates the best-effort event publication.
type PublishConfig struct {
	Enabled bool
	Stream  string
	Timeout time.Duration
}

// PredictionService orchestrates one dispatch: validate input, resolve
// the algorithm, execute its backend, validate output, persist,
// publish. Stateless across requests; concurrent calls share nothing
// but the injected collaborators.
type PredictionService struct {
	executor    backend.IExecutor
	predictions repositories.IPredictionRepository
	publisher   sink.IEventPublisher
	selector    policy.Selector
	monitoring  *observability.MonitoringManager
	log         *slog.Logger
	publish     PublishConfig
}

func NewPredictionService(
	executor backend.IExecutor,
	predictions repositories.IPredictionRepository,
	publisher sink.IEventPublisher,
	selector policy.Selector,
	monitoring *observability.MonitoringManager,
	log *slog.Logger,
	publish PublishConfig,
) *PredictionService {
	return &PredictionService{
		executor:    executor,
		predictions: predictions,
		publisher:   publisher,
		selector:    selector,
		monitoring:  monitoring,
		log:         log,
		publish:     publish,
	}
}

// Predict runs the dispatch steps strictly in order; a failure at any
// step aborts before the next one starts. Backend errors propagate
// unchanged, persistence failure is fatal for the call, publish
// failure never is.
func (s *PredictionService) Predict(ctx context.Context, project domain.Project, features domain.Features, algorithmID *string) (domain.Prediction, error) {
	// 1. Input validation, before any backend is touched.
	if !validation.ValidateFeatures(project.Config.FeatureClass, project.Config.FeatureSize, features) {
		return s.fail(fmt.Errorf("%w: project %s expects %d %s features",
			errors.ErrFeaturesValidation, project.ID, project.Config.FeatureSize, project.Config.FeatureClass))
	}

	// 2. Algorithm resolution: explicit id or policy draw. The
	// algorithm value is captured here, so a concurrent deletion
	// cannot affect this request past this point.
	explicit := algorithmID != nil
	var algorithm domain.Algorithm
	if explicit {
		resolved, ok := project.AlgorithmByID(*algorithmID)
		if !ok {
			return s.fail(fmt.Errorf("%w: algorithm %q is not registered under project %s",
				errors.ErrInvalidArgument, *algorithmID, project.ID))
		}
		algorithm = resolved
	} else {
		id, ok := s.selector.Select(project.Policy, project.AlgorithmIDs())
		if !ok {
			return s.fail(fmt.Errorf("%w: project %s", errors.ErrNoAlgorithmAvailable, project.ID))
		}
		resolved, ok := project.AlgorithmByID(id)
		if !ok {
			// The policy drew an id that vanished between listing and
			// lookup; treat it the same as an empty policy.
			return s.fail(fmt.Errorf("%w: project %s", errors.ErrNoAlgorithmAvailable, project.ID))
		}
		algorithm = resolved
	}

	// 3. Backend execution. Errors propagate unchanged, no retries.
	prediction, err := s.executor.Execute(ctx, algorithm, features)
	if err != nil {
		return s.fail(err)
	}

	// 4. Output validation, only for explicitly named algorithms.
	// Policy-selected algorithms are trusted as registered.
	if explicit && !validation.ValidateLabels(project.Config.LabelSet, prediction.Labels) {
		return s.fail(fmt.Errorf("%w: algorithm %s produced %v",
			errors.ErrLabelsValidation, algorithm.ID, prediction.Labels.Names()))
	}

	// An abandoned request stops here rather than persisting orphaned
	// results.
	if err := ctx.Err(); err != nil {
		return s.fail(err)
	}

	// 5. Persistence is mandatory: the caller never receives a
	// prediction that silently failed to persist.
	if err := s.predictions.InsertPrediction(prediction); err != nil {
		return s.fail(fmt.Errorf("%w: %v", errors.ErrPersistence, err))
	}

	// 6. Best-effort publish off the critical path.
	if s.publish.Enabled {
		go s.publishPrediction(context.WithoutCancel(ctx), prediction)
	}

	s.monitoring.IncrDispatched()
	return prediction, nil
}

func (s *PredictionService) RecentPredictions(projectID string, limit int) ([]domain.Prediction, error) {
	return s.predictions.RecentPredictions(projectID, limit)
}

// publishPrediction ships the event on its own detached context.
// Failures are logged and counted, never surfaced: a dropped event
// must not downgrade a successful prediction.
func (s *PredictionService) publishPrediction(ctx context.Context, prediction domain.Prediction) {
	publishCtx, cancel := context.WithTimeout(ctx, s.publish.Timeout)
	defer cancel()

	e := event.NewPredictionCompleted(prediction)
	if err := s.publisher.Publish(publishCtx, e, s.publish.Stream, prediction.ProjectID); err != nil {
		s.monitoring.IncrPublishDropped()
		s.log.Warn("Prediction event dropped",
			"prediction", prediction.ID, "project", prediction.ProjectID, "error", err)
		return
	}
	s.monitoring.IncrPublished()
}

func (s *PredictionService) fail(err error) (domain.Prediction, error) {
	s.monitoring.IncrFailed()
	return domain.Prediction{}, err
}
