package profiles

import (
	"context"
	"io"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

// Importer turns an existing resume into a stored profile.
type Importer interface {
	Import(ctx context.Context, userID, text string) (model.Resume, error)
	ImportFile(ctx context.Context, userID, fileName string, r io.Reader) (model.Resume, error)
}

// Service contains business logic for profiles.
type Service struct {
	Repo Repo
}

// Get returns the stored bundle.
func (s *Service) Get(ctx context.Context, userID string) (model.Resume, error) {
	return s.Repo.Get(ctx, userID)
}

// Save cleans, validates and replaces the user's bundle.
func (s *Service) Save(ctx context.Context, userID string, r model.Resume) (model.Resume, error) {
	cleaned := Clean(r)
	if err := Validate(cleaned); err != nil {
		return model.Resume{}, err
	}
	if err := s.Repo.Replace(ctx, userID, cleaned); err != nil {
		return model.Resume{}, err
	}
	telemetry.Info("profile.saved", map[string]any{
		"user_id":        userID,
		"education":      len(cleaned.Education),
		"experience":     len(cleaned.Experience),
		"skills":         len(cleaned.Skills),
		"projects":       len(cleaned.Projects),
		"certifications": len(cleaned.Certifications),
	})
	return s.Repo.Get(ctx, userID)
}

// Onboard saves the first profile of a user.
func (s *Service) Onboard(ctx context.Context, userID string, r model.Resume) (model.Resume, error) {
	exists, err := s.Repo.Exists(ctx, userID)
	if err != nil {
		return model.Resume{}, err
	}
	if exists {
		return model.Resume{}, ErrAlreadyOnboarded
	}
	return s.Save(ctx, userID, r)
}
