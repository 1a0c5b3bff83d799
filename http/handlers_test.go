package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"predict-lab/auth"
	"predict-lab/backend"
	"predict-lab/domain"
	"predict-lab/policy"
	"predict-lab/errors"
	"predict-lab/mocks"
	"predict-lab/observability"
	"predict-lab/services"
)

const testAPIKey = "test-operator-key"

type fixture struct {
	projects    *mocks.MockIProjectService
	predictions *mocks.MockIPredictionService
	server      *httptest.Server
	token       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	hash, err := auth.HashAPIKey(testAPIKey)
	require.NoError(t, err)

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.GenerateToken("tester", []string{"operator"})
	require.NoError(t, err)

	projects := mocks.NewMockIProjectService(ctrl)
	predictions := mocks.NewMockIPredictionService(ctrl)
	handler := NewHandler(
		projects,
		predictions,
		services.NewAuthService(issuer, hash),
		observability.NewMonitoringManager(slog.Default()),
		issuer,
		slog.Default(),
	)

	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)

	return &fixture{projects: projects, predictions: predictions, server: server, token: token}
}

func (f *fixture) do(t *testing.T, method, path, body string, authenticated bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleToken(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	t.Run("valid api key yields a token", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/auth/token",
			fmt.Sprintf(`{"api_key":%q,"subject":"ops"}`, testAPIKey), false)
		req.Equal(http.StatusOK, resp.StatusCode)

		body := decodeBody[tokenResponse](t, resp)
		req.NotEmpty(body.Token)
	})

	t.Run("wrong api key is rejected", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/auth/token",
			`{"api_key":"wrong","subject":"ops"}`, false)
		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	resp := f.do(t, http.MethodGet, "/projects", "", false)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleCreateProject(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	t.Run("creates and returns the project", func(t *testing.T) {
		created := domain.Project{ID: "p1", Name: "churn"}
		f.projects.EXPECT().
			CreateProject("churn", gomock.Any(), gomock.Any()).
			Return(created, nil)

		resp := f.do(t, http.MethodPost, "/projects",
			`{"name":"churn","problem":"classification","feature_class":"double","feature_size":3,"label_set":["yes","no"]}`,
			true)
		req.Equal(http.StatusCreated, resp.StatusCode)

		body := decodeBody[domain.Project](t, resp)
		req.Equal("p1", body.ID)
	})

	t.Run("missing fields fail request validation", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/projects", `{"name":"churn"}`, true)
		req.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("service rejection maps to 400", func(t *testing.T) {
		f.projects.EXPECT().
			CreateProject(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Project{}, fmt.Errorf("%w: bad policy", errors.ErrInvalidArgument))

		resp := f.do(t, http.MethodPost, "/projects",
			`{"name":"churn","problem":"regression","feature_class":"double","feature_size":3}`,
			true)
		req.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandlePredict(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	project := domain.Project{
		ID: "p1",
		Config: domain.ProjectConfig{
			Problem:      domain.Classification,
			FeatureClass: domain.FeatureDouble,
			FeatureSize:  2,
			LabelSet:     []string{"yes", "no"},
		},
	}

	t.Run("dispatches with the explicit algorithm id", func(t *testing.T) {
		f.projects.EXPECT().GetProject("p1").Return(project, nil)

		var passedID *string
		f.predictions.EXPECT().
			Predict(gomock.Any(), project, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ domain.Project, features domain.Features, algorithmID *string) (domain.Prediction, error) {
				passedID = algorithmID
				return domain.NewPrediction("p1", *algorithmID, features, domain.Labels{{Name: "yes", Score: 1}}), nil
			})

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":[1.5,2.5]}`, true)
		req.Equal(http.StatusOK, resp.StatusCode)
		req.NotNil(passedID)
		req.Equal("a1", *passedID)

		body := decodeBody[domain.Prediction](t, resp)
		req.Equal("a1", body.AlgorithmID)
	})

	t.Run("omits the id without the query parameter", func(t *testing.T) {
		f.projects.EXPECT().GetProject("p1").Return(project, nil)
		f.predictions.EXPECT().
			Predict(gomock.Any(), project, gomock.Any(), gomock.Nil()).
			Return(domain.NewPrediction("p1", "a1", domain.Features{}, domain.Labels{{Name: "no", Score: 1}}), nil)

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions", `{"values":[1.5,2.5]}`, true)
		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("contract violation maps to 422", func(t *testing.T) {
		f.projects.EXPECT().GetProject("p1").Return(project, nil)
		f.predictions.EXPECT().
			Predict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Prediction{}, fmt.Errorf("%w: size", errors.ErrFeaturesValidation))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions", `{"values":[1.5]}`, true)
		req.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("empty policy maps to 404", func(t *testing.T) {
		f.projects.EXPECT().GetProject("p1").Return(project, nil)
		f.predictions.EXPECT().
			Predict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Prediction{}, fmt.Errorf("%w: project p1", errors.ErrNoAlgorithmAvailable))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions", `{"values":[1.5,2.5]}`, true)
		req.Equal(http.StatusNotFound, resp.StatusCode)
	})

	t.Run("backend trouble maps to 502", func(t *testing.T) {
		f.projects.EXPECT().GetProject("p1").Return(project, nil)
		f.predictions.EXPECT().
			Predict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Prediction{}, fmt.Errorf("%w: connection refused", errors.ErrRemoteCall))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions", `{"values":[1.5,2.5]}`, true)
		req.Equal(http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("unknown project maps to 404", func(t *testing.T) {
		f.projects.EXPECT().GetProject("ghost").Return(domain.Project{}, errors.ErrProjectNotFound)

		resp := f.do(t, http.MethodPost, "/projects/ghost/predictions", `{"values":[1.5,2.5]}`, true)
		req.Equal(http.StatusNotFound, resp.StatusCode)
	})
}

// dispatchFixture runs the real dispatch stack (executor, validation,
// policy) behind the handler so the route is exercised end to end;
// only the registry and persistence collaborators are mocked.
func newDispatchFixture(t *testing.T, project domain.Project) (*fixture, *mocks.MockIProjectService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	hash, err := auth.HashAPIKey(testAPIKey)
	require.NoError(t, err)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.GenerateToken("tester", []string{"operator"})
	require.NoError(t, err)

	projects := mocks.NewMockIProjectService(ctrl)
	projects.EXPECT().GetProject(project.ID).Return(project, nil).AnyTimes()

	repo := mocks.NewMockIPredictionRepository(ctrl)
	repo.EXPECT().InsertPrediction(gomock.Any()).Return(nil).AnyTimes()

	predictions := services.NewPredictionService(
		backend.NewExecutor(slog.Default(), time.Second),
		repo,
		mocks.NewMockIEventPublisher(ctrl),
		policy.NewSelector(policy.DefaultRand()),
		observability.NewMonitoringManager(slog.Default()),
		slog.Default(),
		services.PublishConfig{},
	)

	handler := NewHandler(
		projects,
		predictions,
		services.NewAuthService(issuer, hash),
		observability.NewMonitoringManager(slog.Default()),
		issuer,
		slog.Default(),
	)

	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)

	return &fixture{server: server, token: token}, projects
}

func classedProject(class domain.FeatureClass, size int) domain.Project {
	labels := domain.Labels{{Name: "yes", Score: 0.8}, {Name: "no", Score: 0.2}}
	return domain.Project{
		ID: "p1",
		Config: domain.ProjectConfig{
			Problem:      domain.Classification,
			FeatureClass: class,
			FeatureSize:  size,
			LabelSet:     []string{"yes", "no"},
		},
		Algorithms: []domain.Algorithm{{
			ID:        "a1",
			ProjectID: "p1",
			Backend: domain.Backend{
				Kind:  domain.BackendLocal,
				Local: &domain.LocalBackend{Computed: labels},
			},
		}},
	}
}

func TestHandlePredict_FeatureClasses(t *testing.T) {
	req := require.New(t)

	t.Run("int class accepts integral json numbers", func(t *testing.T) {
		f, _ := newDispatchFixture(t, classedProject(domain.FeatureInt, 2))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":[1,2]}`, true)
		req.Equal(http.StatusOK, resp.StatusCode)

		body := decodeBody[domain.Prediction](t, resp)
		req.Equal("a1", body.AlgorithmID)
	})

	t.Run("int class rejects fractional numbers", func(t *testing.T) {
		f, _ := newDispatchFixture(t, classedProject(domain.FeatureInt, 2))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":[1.5,2]}`, true)
		req.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("float class accepts json numbers", func(t *testing.T) {
		f, _ := newDispatchFixture(t, classedProject(domain.FeatureFloat, 2))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":[0.5,1.25]}`, true)
		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("string class passes through", func(t *testing.T) {
		f, _ := newDispatchFixture(t, classedProject(domain.FeatureString, 2))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":["red","blue"]}`, true)
		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("double class accepts vector elements", func(t *testing.T) {
		f, _ := newDispatchFixture(t, classedProject(domain.FeatureDouble, 2))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":[[1.0,2.0],[3.0,4.0]]}`, true)
		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("string value under int class still fails the contract", func(t *testing.T) {
		f, _ := newDispatchFixture(t, classedProject(domain.FeatureInt, 2))

		resp := f.do(t, http.MethodPost, "/projects/p1/predictions?algorithm=a1",
			`{"values":["one","two"]}`, true)
		req.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestHandleRecentPredictions(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	t.Run("honors the limit parameter", func(t *testing.T) {
		f.predictions.EXPECT().RecentPredictions("p1", 5).Return([]domain.Prediction{}, nil)

		resp := f.do(t, http.MethodGet, "/projects/p1/predictions?limit=5", "", true)
		req.Equal(http.StatusOK, resp.StatusCode)
	})

	t.Run("rejects a non numeric limit", func(t *testing.T) {
		resp := f.do(t, http.MethodGet, "/projects/p1/predictions?limit=soon", "", true)
		req.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleStats(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	resp := f.do(t, http.MethodGet, "/debug/stats", "", false)
	req.Equal(http.StatusOK, resp.StatusCode)

	body := decodeBody[observability.MonitoringStats](t, resp)
	req.GreaterOrEqual(body.Goroutines, 1)
}
