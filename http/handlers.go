// Package http exposes the prediction engine over a JSON API.
package http

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"predict-lab/auth"
	"predict-lab/domain"
	"predict-lab/errors"
	"predict-lab/observability"
	"predict-lab/services"
)

// Handler holds the service collaborators behind the API routes.
type Handler struct {
	projects    services.IProjectService
	predictions services.IPredictionService
	authService services.IAuthService
	monitoring  *observability.MonitoringManager
	issuer      auth.TokenIssuer
	validate    *validator.Validate
	log         *slog.Logger
}

func NewHandler(
	projects services.IProjectService,
	predictions services.IPredictionService,
	authService services.IAuthService,
	monitoring *observability.MonitoringManager,
	issuer auth.TokenIssuer,
	log *slog.Logger,
) *Handler {
	return &Handler{
		projects:    projects,
		predictions: predictions,
		authService: authService,
		monitoring:  monitoring,
		issuer:      issuer,
		validate:    validator.New(),
		log:         log,
	}
}

// Routes builds the full route table. Everything under /projects
// requires a bearer token; the token endpoint and the stats probe
// stay open.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/token", h.handleToken)
	mux.HandleFunc("GET /debug/stats", h.handleStats)

	protected := http.NewServeMux()
	protected.HandleFunc("POST /projects", h.handleCreateProject)
	protected.HandleFunc("GET /projects", h.handleListProjects)
	protected.HandleFunc("GET /projects/{id}", h.handleGetProject)
	protected.HandleFunc("DELETE /projects/{id}", h.handleDeleteProject)
	protected.HandleFunc("POST /projects/{id}/algorithms", h.handleAddAlgorithm)
	protected.HandleFunc("DELETE /projects/{id}/algorithms/{algorithmId}", h.handleRemoveAlgorithm)
	protected.HandleFunc("POST /projects/{id}/predictions", h.handlePredict)
	protected.HandleFunc("GET /projects/{id}/predictions", h.handleRecentPredictions)

	mux.Handle("/projects", JWTAuth(h.issuer, h.log)(protected))
	mux.Handle("/projects/", JWTAuth(h.issuer, h.log)(protected))

	return mux
}

// ============ auth ============

type tokenRequest struct {
	APIKey  string `json:"api_key" validate:"required"`
	Subject string `json:"subject" validate:"required,max=128"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.authService.IssueToken(req.APIKey, req.Subject)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidAPIKey) {
			writeError(w, http.StatusUnauthorized, "invalid api key")
			return
		}
		h.log.Error("Token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: string(token)})
}

// ============ projects ============

type createProjectRequest struct {
	Name         string         `json:"name" validate:"required,max=128"`
	Problem      string         `json:"problem" validate:"required,oneof=classification regression"`
	FeatureClass string         `json:"feature_class" validate:"required,oneof=double float int string custom"`
	FeatureSize  int            `json:"feature_size" validate:"required,gt=0"`
	LabelSet     []string       `json:"label_set" validate:"omitempty,dive,required"`
	Policy       *policyRequest `json:"policy"`
}

type policyRequest struct {
	Kind      string          `json:"kind" validate:"required,oneof=none default weighted"`
	DefaultID string          `json:"default_id"`
	Weights   []weightRequest `json:"weights" validate:"omitempty,dive"`
}

type weightRequest struct {
	AlgorithmID string  `json:"algorithm_id" validate:"required"`
	Weight      float64 `json:"weight" validate:"gt=0"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	config := domain.ProjectConfig{
		Problem:      domain.ProblemType(req.Problem),
		FeatureClass: domain.FeatureClass(req.FeatureClass),
		FeatureSize:  req.FeatureSize,
		LabelSet:     req.LabelSet,
	}

	policy := domain.AlgorithmPolicy{Kind: domain.PolicyNone}
	if req.Policy != nil {
		policy = domain.AlgorithmPolicy{
			Kind:      domain.PolicyKind(req.Policy.Kind),
			DefaultID: req.Policy.DefaultID,
			Weights: lo.Map(req.Policy.Weights, func(wr weightRequest, _ int) domain.AlgorithmWeight {
				return domain.AlgorithmWeight{AlgorithmID: wr.AlgorithmID, Weight: wr.Weight}
			}),
		}
	}

	project, err := h.projects.CreateProject(req.Name, config, policy)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.ListProjects()
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.GetProject(r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.DeleteProject(r.PathValue("id")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============ algorithms ============

type addAlgorithmRequest struct {
	Kind     string                `json:"kind" validate:"required,oneof=local remote_serving"`
	Local    *localBackendRequest  `json:"local" validate:"required_if=Kind local"`
	Remote   *remoteBackendRequest `json:"remote" validate:"required_if=Kind remote_serving"`
	Security *securityRequest      `json:"security"`
}

type localBackendRequest struct {
	Computed []labelRequest `json:"computed" validate:"required,min=1,dive"`
}

type remoteBackendRequest struct {
	Host               string `json:"host" validate:"required,max=255"`
	Port               string `json:"port" validate:"required,max=5"`
	FeatureTransformer string `json:"feature_transformer" validate:"required"`
	LabelTransformer   string `json:"label_transformer" validate:"required"`
}

type securityRequest struct {
	Headers     map[string]string `json:"headers"`
	BearerToken string            `json:"bearer_token"`
}

type labelRequest struct {
	Name  string  `json:"label" validate:"required"`
	Score float64 `json:"score"`
}

func (h *Handler) handleAddAlgorithm(w http.ResponseWriter, r *http.Request) {
	var req addAlgorithmRequest
	if !h.decode(w, r, &req) {
		return
	}

	b := domain.Backend{Kind: domain.BackendKind(req.Kind)}
	if req.Local != nil {
		b.Local = &domain.LocalBackend{
			Computed: lo.Map(req.Local.Computed, func(lr labelRequest, _ int) domain.Label {
				return domain.Label{Name: lr.Name, Score: lr.Score}
			}),
		}
	}
	if req.Remote != nil {
		b.Remote = &domain.RemoteServingBackend{
			Host:               req.Remote.Host,
			Port:               req.Remote.Port,
			FeatureTransformer: req.Remote.FeatureTransformer,
			LabelTransformer:   req.Remote.LabelTransformer,
		}
	}

	var security domain.SecurityDescriptor
	if req.Security != nil {
		security = domain.SecurityDescriptor{
			Headers:     req.Security.Headers,
			BearerToken: req.Security.BearerToken,
		}
	}

	algorithm, err := h.projects.AddAlgorithm(r.PathValue("id"), b, security)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, algorithm)
}

func (h *Handler) handleRemoveAlgorithm(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.RemoveAlgorithm(r.PathValue("id"), r.PathValue("algorithmId")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============ predictions ============

type predictRequest struct {
	Values []any `json:"values" validate:"required,min=1"`
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.projects.GetProject(r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	features := domain.Features{
		Class:  project.Config.FeatureClass,
		Values: coerceFeatureValues(project.Config.FeatureClass, req.Values),
	}

	var algorithmID *string
	if id := r.URL.Query().Get("algorithm"); id != "" {
		algorithmID = &id
	}

	prediction, err := h.predictions.Predict(r.Context(), project, features, algorithmID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, prediction)
}

func (h *Handler) handleRecentPredictions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	predictions, err := h.predictions.RecentPredictions(r.PathValue("id"), limit)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, predictions)
}

// ============ observability ============

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.monitoring.Snapshot())
}

// ============ plumbing ============

// decode unmarshals and validates the request body, answering the
// error itself. Returns false when the handler should stop.
// Numbers land as json.Number so untyped feature values keep their
// textual form until the project's class decides their type.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed json body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// coerceFeatureValues converts decoded JSON values into the runtime
// types the project's feature class declares: json.Number carries no
// type of its own, so the class decides between float64, float32 and
// int64. Conversion is best effort; a value that does not fit the
// class is kept as-is and rejected by the contract validation.
func coerceFeatureValues(class domain.FeatureClass, values []any) []any {
	if class == domain.FeatureCustom {
		return values
	}
	coerced := make([]any, len(values))
	for i, v := range values {
		coerced[i] = coerceFeatureValue(class, v)
	}
	return coerced
}

func coerceFeatureValue(class domain.FeatureClass, v any) any {
	if vector, ok := v.([]any); ok {
		switch class {
		case domain.FeatureDouble:
			return coerceVector(vector, numberToFloat64)
		case domain.FeatureFloat:
			return coerceVector(vector, numberToFloat32)
		case domain.FeatureInt:
			return coerceVector(vector, numberToInt64)
		case domain.FeatureString:
			return coerceVector(vector, func(e any) (string, bool) {
				s, ok := e.(string)
				return s, ok
			})
		}
		return v
	}

	switch class {
	case domain.FeatureDouble:
		if f, ok := numberToFloat64(v); ok {
			return f
		}
	case domain.FeatureFloat:
		if f, ok := numberToFloat32(v); ok {
			return f
		}
	case domain.FeatureInt:
		if n, ok := numberToInt64(v); ok {
			return n
		}
	}
	return v
}

// coerceVector converts every element or none: a single misfit leaves
// the vector untouched for the validator to reject.
func coerceVector[T any](vector []any, convert func(any) (T, bool)) any {
	out := make([]T, len(vector))
	for i, e := range vector {
		converted, ok := convert(e)
		if !ok {
			return vector
		}
		out[i] = converted
	}
	return out
}

func numberToFloat64(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	return f, err == nil
}

func numberToFloat32(v any) (float32, bool) {
	f, ok := numberToFloat64(v)
	return float32(f), ok
}

func numberToInt64(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	return i, err == nil
}

// respondServiceError maps domain sentinels onto HTTP statuses.
// Contract violations are 422, bad requests 400, missing registry
// entries 404, backend trouble 502, anything else 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrFeaturesValidation),
		stderrors.Is(err, errors.ErrLabelsValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case stderrors.Is(err, errors.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case stderrors.Is(err, errors.ErrProjectNotFound),
		stderrors.Is(err, errors.ErrAlgorithmNotFound),
		stderrors.Is(err, errors.ErrNoAlgorithmAvailable):
		writeError(w, http.StatusNotFound, err.Error())
	case stderrors.Is(err, errors.ErrRemoteCall),
		stderrors.Is(err, errors.ErrBackendDecode),
		stderrors.Is(err, errors.ErrFeaturesTransformer),
		stderrors.Is(err, errors.ErrLabelsTransformer):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		h.log.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
