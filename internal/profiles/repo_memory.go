package profiles

import (
	"context"
	"sync"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]model.Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]model.Resume)}
}

// Get returns a copy of the stored bundle.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	if err := ctx.Err(); err != nil {
		return model.Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[userID]
	if !ok {
		return model.Resume{}, ErrNotFound
	}
	return clone(res).Sorted(), nil
}

// Replace stores a reindexed copy of the bundle.
func (r *MemoryRepo) Replace(ctx context.Context, userID string, res model.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := clone(res).Reindex()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = stored
	return nil
}

// Exists reports whether the user has a profile.
func (r *MemoryRepo) Exists(ctx context.Context, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[userID]
	return ok, nil
}

// DeleteAllByUser removes the bundle.
func (r *MemoryRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}

func clone(r model.Resume) model.Resume {
	out := r
	out.Education = append([]model.Education{}, r.Education...)
	out.Experience = make([]model.Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.BulletPoints = append([]string{}, e.BulletPoints...)
		out.Experience[i] = e
	}
	out.Skills = make([]model.Skill, len(r.Skills))
	for i, s := range r.Skills {
		s.Items = append([]string{}, s.Items...)
		out.Skills[i] = s
	}
	out.Projects = append([]model.Project{}, r.Projects...)
	out.Certifications = append([]model.Certification{}, r.Certifications...)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
