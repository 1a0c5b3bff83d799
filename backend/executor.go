//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=../mocks/mock_executor.go -package=mocks

// Package backend executes one algorithm's computation given features.
// Local backends answer inline; remote serving backends are one HTTP
// round trip away. No retries at this layer.
package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"predict-lab/domain"
	"predict-lab/errors"
)

type IExecutor interface {
	Execute(ctx context.Context, algorithm domain.Algorithm, features domain.Features) (domain.Prediction, error)
}

// Executor dispatches over the closed backend union. The HTTP client
// is shared so connections pool across invocations; each call still
// stands alone (fresh request, per-call context, no reuse guarantee).
type Executor struct {
	client *http.Client
	log    *slog.Logger
}

func NewExecutor(log *slog.Logger, remoteTimeout time.Duration) *Executor {
	return &Executor{
		client: &http.Client{Timeout: remoteTimeout},
		log:    log,
	}
}

// Execute runs the algorithm's backend against the given features and
// wraps the outcome in a fresh Prediction.
func (e *Executor) Execute(ctx context.Context, algorithm domain.Algorithm, features domain.Features) (domain.Prediction, error) {
	switch algorithm.Backend.Kind {
	case domain.BackendLocal:
		// A fixed precomputed answer: cannot fail, no I/O.
		return domain.NewPrediction(algorithm.ProjectID, algorithm.ID, features, algorithm.Backend.Local.Computed), nil
	case domain.BackendRemoteServing:
		return e.executeRemote(ctx, algorithm, features)
	default:
		return domain.Prediction{}, fmt.Errorf("%w: unsupported backend kind %q", errors.ErrInvalidArgument, algorithm.Backend.Kind)
	}
}

func (e *Executor) executeRemote(ctx context.Context, algorithm domain.Algorithm, features domain.Features) (domain.Prediction, error) {
	remote := algorithm.Backend.Remote

	featureTransformer, err := FeatureTransformerByName(remote.FeatureTransformer)
	if err != nil {
		return domain.Prediction{}, err
	}
	labelTransformer, err := LabelTransformerByName(remote.LabelTransformer)
	if err != nil {
		return domain.Prediction{}, err
	}

	// Transform before anything touches the network: a rejected payload
	// must not cost a remote call.
	payload, err := featureTransformer.TransformFeatures(features)
	if err != nil {
		return domain.Prediction{}, err
	}

	endpoint, err := servingURL(remote.Host, remote.Port)
	if err != nil {
		return domain.Prediction{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	request.Header.Set("Content-Type", "application/json")
	applySecurity(request, algorithm.Security)

	response, err := e.client.Do(request)
	if err != nil {
		// Timeouts and refused connections land here; all of them are
		// the same backend failure to the dispatcher.
		return domain.Prediction{}, fmt.Errorf("%w: %v", errors.ErrRemoteCall, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return domain.Prediction{}, fmt.Errorf("%w: serving endpoint answered %d", errors.ErrRemoteCall, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", errors.ErrRemoteCall, err)
	}

	labels, err := labelTransformer.TransformLabels(body)
	if err != nil {
		return domain.Prediction{}, err
	}

	e.log.Debug("Remote serving call completed",
		"algorithm", algorithm.ID, "endpoint", endpoint, "labels", len(labels))

	return domain.NewPrediction(algorithm.ProjectID, algorithm.ID, features, labels), nil
}

// servingURL builds http://host:port/ and rejects malformed
// configuration. Host and port are freeform strings checked here, at
// call time, not at registration time.
func servingURL(host, port string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("%w: empty serving host", errors.ErrInvalidArgument)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return "", fmt.Errorf("%w: invalid serving port %q", errors.ErrInvalidArgument, port)
	}
	endpoint := fmt.Sprintf("http://%s/", net.JoinHostPort(host, port))
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return endpoint, nil
}

// applySecurity injects the algorithm's credentials into the request.
func applySecurity(request *http.Request, security domain.SecurityDescriptor) {
	for name, value := range security.Headers {
		request.Header.Set(name, value)
	}
	if security.BearerToken != "" {
		request.Header.Set("Authorization", "Bearer "+security.BearerToken)
	}
}
