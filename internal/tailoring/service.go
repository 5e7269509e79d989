package tailoring

import (
	"context"
	"errors"

	"github.com/Saubhagya1707/crying-tailor/internal/documents"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
	"github.com/Saubhagya1707/crying-tailor/resume/text"
)

// ProfileSource loads a user's structured resume.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (model.Resume, error)
}

// Service ties profile loading, assembly, tailoring and persistence together.
type Service struct {
	Profiles  ProfileSource
	Engine    *Engine
	Documents documents.Repo
}

// CreateDocument tailors the user's stored profile to jobDescription and
// saves the result as a new document.
func (s *Service) CreateDocument(ctx context.Context, userID string, title *string, jobDescription string) (documents.Document, error) {
	if err := documents.ValidateJobDescription(jobDescription); err != nil {
		return documents.Document{}, err
	}
	title, err := documents.NormalizeTitle(title)
	if err != nil {
		return documents.Document{}, err
	}

	resume, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return documents.Document{}, ErrProfileRequired
		}
		return documents.Document{}, err
	}

	content, err := s.Engine.Tailor(ctx, text.Assemble(resume), jobDescription)
	if err != nil {
		return documents.Document{}, err
	}

	doc := documents.New(userID, title, jobDescription, content)
	if err := s.Documents.Create(ctx, doc); err != nil {
		return documents.Document{}, err
	}
	telemetry.Info("document.created", map[string]any{
		"user_id":     userID,
		"document_id": doc.ID,
		"jd_chars":    len(jobDescription),
		"out_chars":   len(content),
	})
	return doc, nil
}

var _ documents.Generator = (*Service)(nil)
