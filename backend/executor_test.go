package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"predict-lab/domain"
	"predict-lab/errors"
)

func testFeatures() domain.Features {
	return domain.Features{Class: domain.FeatureDouble, Values: []any{1.5, 2.5}}
}

func localAlgorithm(labels domain.Labels) domain.Algorithm {
	return domain.Algorithm{
		ID:        "algo-local",
		ProjectID: "project-1",
		Backend: domain.Backend{
			Kind:  domain.BackendLocal,
			Local: &domain.LocalBackend{Computed: labels},
		},
	}
}

func remoteAlgorithm(host, port string) domain.Algorithm {
	return domain.Algorithm{
		ID:        "algo-remote",
		ProjectID: "project-1",
		Backend: domain.Backend{
			Kind: domain.BackendRemoteServing,
			Remote: &domain.RemoteServingBackend{
				Host:               host,
				Port:               port,
				FeatureTransformer: TransformerJSON,
				LabelTransformer:   TransformerJSON,
			},
		},
	}
}

func TestExecute_LocalBackend(t *testing.T) {
	req := require.New(t)
	executor := NewExecutor(slog.Default(), time.Second)

	labels := domain.Labels{{Name: "spam", Score: 0.9}, {Name: "ham", Score: 0.1}}
	prediction, err := executor.Execute(context.Background(), localAlgorithm(labels), testFeatures())

	req.NoError(err)
	req.Equal("project-1", prediction.ProjectID)
	req.Equal("algo-local", prediction.AlgorithmID)
	req.Equal(labels, prediction.Labels)
	req.NotEqual("00000000-0000-0000-0000-000000000000", prediction.ID.String())
}

func TestExecute_RemoteBackend_RoundTrip(t *testing.T) {
	req := require.New(t)

	var gotBody map[string]any
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"labels": []map[string]any{{"label": "spam", "score": 0.8}},
		})
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	algorithm := remoteAlgorithm(host, port)
	algorithm.Security = domain.SecurityDescriptor{BearerToken: "s3cret"}

	executor := NewExecutor(slog.Default(), time.Second)
	prediction, err := executor.Execute(context.Background(), algorithm, testFeatures())

	req.NoError(err)
	req.Equal(domain.Labels{{Name: "spam", Score: 0.8}}, prediction.Labels)
	req.Equal("Bearer s3cret", gotAuth)
	req.Contains(gotBody, "features")
}

func TestExecute_RemoteBackend_TFServingPair(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "instances")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]any{{"label": "up", "score": 0.7}},
		})
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	algorithm := remoteAlgorithm(host, port)
	algorithm.Backend.Remote.FeatureTransformer = TransformerTFServing
	algorithm.Backend.Remote.LabelTransformer = TransformerTFServing

	executor := NewExecutor(slog.Default(), time.Second)
	prediction, err := executor.Execute(context.Background(), algorithm, testFeatures())

	req.NoError(err)
	req.Equal(domain.Labels{{Name: "up", Score: 0.7}}, prediction.Labels)
}

func TestExecute_RemoteBackend_MalformedPort(t *testing.T) {
	req := require.New(t)
	executor := NewExecutor(slog.Default(), time.Second)

	for _, port := range []string{"", "not-a-port", "0", "70000"} {
		_, err := executor.Execute(context.Background(), remoteAlgorithm("localhost", port), testFeatures())
		req.ErrorIs(err, errors.ErrInvalidArgument, "port %q", port)
	}
}

func TestExecute_RemoteBackend_UnknownTransformer(t *testing.T) {
	req := require.New(t)
	executor := NewExecutor(slog.Default(), time.Second)

	algorithm := remoteAlgorithm("localhost", "8500")
	algorithm.Backend.Remote.FeatureTransformer = "protobuf"

	_, err := executor.Execute(context.Background(), algorithm, testFeatures())
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestExecute_RemoteBackend_EndpointDown(t *testing.T) {
	req := require.New(t)
	executor := NewExecutor(slog.Default(), 200*time.Millisecond)

	// Port 1 on loopback refuses the connection immediately.
	_, err := executor.Execute(context.Background(), remoteAlgorithm("127.0.0.1", "1"), testFeatures())
	req.ErrorIs(err, errors.ErrRemoteCall)
}

func TestExecute_RemoteBackend_BadStatus(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	executor := NewExecutor(slog.Default(), time.Second)

	_, err := executor.Execute(context.Background(), remoteAlgorithm(host, port), testFeatures())
	req.ErrorIs(err, errors.ErrRemoteCall)
}

func TestExecute_RemoteBackend_UndecodableResponse(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	executor := NewExecutor(slog.Default(), time.Second)

	_, err := executor.Execute(context.Background(), remoteAlgorithm(host, port), testFeatures())
	req.ErrorIs(err, errors.ErrBackendDecode)
}

func TestExecute_RemoteBackend_EmptyLabels(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"labels": []}`))
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	executor := NewExecutor(slog.Default(), time.Second)

	_, err := executor.Execute(context.Background(), remoteAlgorithm(host, port), testFeatures())
	req.ErrorIs(err, errors.ErrLabelsTransformer)
}

func splitHostPort(t *testing.T, rawURL string) (string, string) {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	return parsed.Hostname(), parsed.Port()
}
