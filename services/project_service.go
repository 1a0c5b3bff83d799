//go:generate go run go.uber.org/mock/mockgen -source=project_service.go -destination=../mocks/mock_project_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"predict-lab/domain"
	"predict-lab/errors"
)

type IProjectService interface {
	CreateProject(name string, config domain.ProjectConfig, policy domain.AlgorithmPolicy) (domain.Project, error)
	GetProject(id string) (domain.Project, error)
	ListProjects() ([]domain.Project, error)
	DeleteProject(id string) error
	AddAlgorithm(projectID string, b domain.Backend, security domain.SecurityDescriptor) (domain.Algorithm, error)
	RemoveAlgorithm(projectID, algorithmID string) error
}

// ProjectService owns the registry CRUD around the dispatch core.
type ProjectService struct {
	projects IProjectWriter
	log      *slog.Logger
}

// IProjectWriter is the persistence collaborator surface this service
// needs; satisfied by repositories.ProjectRepository.
type IProjectWriter interface {
	InsertProject(project domain.Project) error
	ReadProject(id string) (domain.Project, error)
	ReadAllProjects() ([]domain.Project, error)
	DeleteProject(id string) error
	InsertAlgorithm(algorithm domain.Algorithm) error
	DeleteAlgorithm(projectID, algorithmID string) error
}

func NewProjectService(projects IProjectWriter, log *slog.Logger) *ProjectService {
	return &ProjectService{projects: projects, log: log}
}

// CreateProject validates the declared contract and persists the
// project row. The project stays invisible to reads until its first
// algorithm is registered: the join-based read needs at least one
// algorithm row.
func (s *ProjectService) CreateProject(name string, config domain.ProjectConfig, policy domain.AlgorithmPolicy) (domain.Project, error) {
	if name == "" {
		return domain.Project{}, fmt.Errorf("%w: project name is required", errors.ErrInvalidArgument)
	}
	if config.FeatureSize <= 0 {
		return domain.Project{}, fmt.Errorf("%w: feature size must be positive", errors.ErrInvalidArgument)
	}
	if config.Problem == domain.Classification && len(config.LabelSet) == 0 {
		return domain.Project{}, fmt.Errorf("%w: classification projects need a label set", errors.ErrInvalidArgument)
	}
	if err := validatePolicy(policy); err != nil {
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:     uuid.NewString(),
		Name:   name,
		Config: config,
		Policy: policy,
	}
	if err := s.projects.InsertProject(project); err != nil {
		return domain.Project{}, err
	}

	s.log.Info("Project created", "project", project.ID, "name", name)
	return project, nil
}

func (s *ProjectService) GetProject(id string) (domain.Project, error) {
	return s.projects.ReadProject(id)
}

func (s *ProjectService) ListProjects() ([]domain.Project, error) {
	return s.projects.ReadAllProjects()
}

func (s *ProjectService) DeleteProject(id string) error {
	return s.projects.DeleteProject(id)
}

// AddAlgorithm registers a new predictor under the project.
func (s *ProjectService) AddAlgorithm(projectID string, b domain.Backend, security domain.SecurityDescriptor) (domain.Algorithm, error) {
	if err := validateBackend(b); err != nil {
		return domain.Algorithm{}, err
	}

	algorithm := domain.Algorithm{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Backend:   b,
		Security:  security,
	}
	if err := s.projects.InsertAlgorithm(algorithm); err != nil {
		return domain.Algorithm{}, err
	}

	s.log.Info("Algorithm registered", "project", projectID, "algorithm", algorithm.ID, "kind", b.Kind)
	return algorithm, nil
}

// RemoveAlgorithm deletes one predictor. In-flight predictions are
// unaffected: dispatch captured the algorithm value at selection time.
func (s *ProjectService) RemoveAlgorithm(projectID, algorithmID string) error {
	return s.projects.DeleteAlgorithm(projectID, algorithmID)
}

func validatePolicy(policy domain.AlgorithmPolicy) error {
	switch policy.Kind {
	case domain.PolicyNone:
		return nil
	case domain.PolicyDefault:
		if policy.DefaultID == "" {
			return fmt.Errorf("%w: default policy needs an algorithm id", errors.ErrInvalidArgument)
		}
		return nil
	case domain.PolicyWeighted:
		if len(policy.Weights) == 0 || policy.WeightSum() <= 0 {
			return fmt.Errorf("%w: weighted policy needs positive weights", errors.ErrInvalidArgument)
		}
		for _, w := range policy.Weights {
			if w.Weight <= 0 {
				return fmt.Errorf("%w: weight for %q must be positive", errors.ErrInvalidArgument, w.AlgorithmID)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown policy kind %q", errors.ErrInvalidArgument, policy.Kind)
	}
}

// validateBackend checks the union shape only. Remote host and port
// stay freeform: the executor checks them at call time.
func validateBackend(b domain.Backend) error {
	switch b.Kind {
	case domain.BackendLocal:
		if b.Local == nil {
			return fmt.Errorf("%w: local backend needs a computed result", errors.ErrInvalidArgument)
		}
		return nil
	case domain.BackendRemoteServing:
		if b.Remote == nil {
			return fmt.Errorf("%w: remote backend needs serving coordinates", errors.ErrInvalidArgument)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown backend kind %q", errors.ErrInvalidArgument, b.Kind)
	}
}
