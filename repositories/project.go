//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=../mocks/mock_project_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	lru "github.com/hashicorp/golang-lru/v2"

	"predict-lab/domain"
	"predict-lab/errors"
)

type IProjectRepository interface {
	InsertProject(project domain.Project) error
	ReadProject(id string) (domain.Project, error)
	ReadAllProjects() ([]domain.Project, error)
	DeleteProject(id string) error
	InsertAlgorithm(algorithm domain.Algorithm) error
	DeleteAlgorithm(projectID, algorithmID string) error
}

// ProjectRepository stores project and algorithm rows separately in
// BadgerDB and joins them on read. The registry is read-mostly, so a
// small LRU fronts ReadProject; any write to a project's rows evicts
// its cache entry.
type ProjectRepository struct {
	db    *badger.DB
	log   *slog.Logger
	cache *lru.Cache[string, domain.Project]
}

func NewProjectRepository(db *badger.DB, log *slog.Logger, cacheSize int) (*ProjectRepository, error) {
	cache, err := lru.New[string, domain.Project](cacheSize)
	if err != nil {
		return nil, err
	}
	return &ProjectRepository{db: db, log: log, cache: cache}, nil
}

// projectRow is the persisted shape of a project without its
// algorithms: those live in their own rows and are joined on read.
type projectRow struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Config domain.ProjectConfig   `json:"config"`
	Policy domain.AlgorithmPolicy `json:"policy"`
}

func projectKey(id string) []byte {
	return []byte(fmt.Sprintf("project:%s", id))
}

func algorithmKey(projectID, algorithmID string) []byte {
	return []byte(fmt.Sprintf("algorithm:%s:%s", projectID, algorithmID))
}

func algorithmPrefix(projectID string) []byte {
	return []byte(fmt.Sprintf("algorithm:%s:", projectID))
}

func (r *ProjectRepository) InsertProject(project domain.Project) error {
	row := projectRow{ID: project.ID, Name: project.Name, Config: project.Config, Policy: project.Policy}
	bytes, err := json.Marshal(row)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(projectKey(project.ID), bytes); err != nil {
			return err
		}
		for _, algorithm := range project.Algorithms {
			if err := r.setAlgorithm(txn, algorithm); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.cache.Remove(project.ID)
	return nil
}

// ReadProject joins the project row with its algorithm rows. A project
// without any algorithm row is not retrievable at all: callers must
// register at least one algorithm before the project shows up.
func (r *ProjectRepository) ReadProject(id string) (domain.Project, error) {
	if cached, ok := r.cache.Get(id); ok {
		return cached, nil
	}

	var project domain.Project
	err := r.db.View(func(txn *badger.Txn) error {
		row, err := r.getProjectRow(txn, id)
		if err != nil {
			return err
		}
		algorithms, err := r.scanAlgorithms(txn, id)
		if err != nil {
			return err
		}
		if len(algorithms) == 0 {
			return errors.ErrProjectNotFound
		}
		project = assembleProject(row, algorithms)
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}

	r.cache.Add(id, project)
	return project, nil
}

// ReadAllProjects folds every algorithm row into its project, keyed by
// project id, then attaches the project rows. Projects without
// algorithm rows fall out of the join, same as ReadProject.
func (r *ProjectRepository) ReadAllProjects() ([]domain.Project, error) {
	grouped := make(map[string][]domain.Algorithm)

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		prefix := []byte("algorithm:")
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var algorithm domain.Algorithm
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &algorithm)
			})
			if err != nil {
				return err
			}
			grouped[algorithm.ProjectID] = append(grouped[algorithm.ProjectID], algorithm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	projects := make([]domain.Project, 0, len(ids))
	err = r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			row, err := r.getProjectRow(txn, id)
			if err != nil {
				// Orphaned algorithm rows are skipped, not fatal.
				r.log.Warn("Algorithm rows without a project row", "project", id)
				continue
			}
			projects = append(projects, assembleProject(row, grouped[id]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) DeleteProject(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(projectKey(id)); err != nil {
			return err
		}
		algorithms, err := r.scanAlgorithms(txn, id)
		if err != nil {
			return err
		}
		for _, algorithm := range algorithms {
			if err := txn.Delete(algorithmKey(id, algorithm.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.cache.Remove(id)
	return nil
}

func (r *ProjectRepository) InsertAlgorithm(algorithm domain.Algorithm) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		// The algorithm must belong to an existing project.
		if _, err := r.getProjectRow(txn, algorithm.ProjectID); err != nil {
			return err
		}
		return r.setAlgorithm(txn, algorithm)
	})
	if err != nil {
		return err
	}
	r.cache.Remove(algorithm.ProjectID)
	return nil
}

func (r *ProjectRepository) DeleteAlgorithm(projectID, algorithmID string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := algorithmKey(projectID, algorithmID)
		if _, err := txn.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrAlgorithmNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return err
	}
	r.cache.Remove(projectID)
	return nil
}

func (r *ProjectRepository) setAlgorithm(txn *badger.Txn, algorithm domain.Algorithm) error {
	bytes, err := json.Marshal(algorithm)
	if err != nil {
		return err
	}
	return txn.Set(algorithmKey(algorithm.ProjectID, algorithm.ID), bytes)
}

func (r *ProjectRepository) getProjectRow(txn *badger.Txn, id string) (projectRow, error) {
	item, err := txn.Get(projectKey(id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return projectRow{}, errors.ErrProjectNotFound
		}
		return projectRow{}, err
	}
	var row projectRow
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &row)
	})
	return row, err
}

func (r *ProjectRepository) scanAlgorithms(txn *badger.Txn, projectID string) ([]domain.Algorithm, error) {
	var algorithms []domain.Algorithm
	prefix := algorithmPrefix(projectID)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var algorithm domain.Algorithm
		err := it.Item().Value(func(value []byte) error {
			return json.Unmarshal(value, &algorithm)
		})
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, algorithm)
	}
	return algorithms, nil
}

func assembleProject(row projectRow, algorithms []domain.Algorithm) domain.Project {
	return domain.Project{
		ID:         row.ID,
		Name:       row.Name,
		Config:     row.Config,
		Policy:     row.Policy,
		Algorithms: algorithms,
	}
}
