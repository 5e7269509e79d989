package extraction

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Saubhagya1707/crying-tailor/internal/extract"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/object"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/telemetry"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

// ProfileSaver replaces a user's stored profile.
type ProfileSaver interface {
	Save(ctx context.Context, userID string, r model.Resume) (model.Resume, error)
}

// Service imports existing resumes into the profile store.
type Service struct {
	Engine   *Engine
	Profiles ProfileSaver
	Store    object.ObjectStore
}

// Import extracts pasted resume text and replaces the user's profile with it.
func (s *Service) Import(ctx context.Context, userID, text string) (model.Resume, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinTextLen {
		return model.Resume{}, ErrTooShort
	}

	extracted, err := s.Engine.Extract(ctx, text)
	if err != nil {
		return model.Resume{}, err
	}

	saved, err := s.Profiles.Save(ctx, userID, profiles.DropInvalidURLs(extracted))
	if err != nil {
		return model.Resume{}, err
	}
	telemetry.Info("profile.imported", map[string]any{
		"user_id":    userID,
		"chars":      len(text),
		"experience": len(saved.Experience),
	})
	return saved, nil
}

// ImportFile stores an uploaded resume, pulls its text and runs Import.
func (s *Service) ImportFile(ctx context.Context, userID, fileName string, r io.Reader) (model.Resume, error) {
	obj, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return model.Resume{}, err
	}
	telemetry.Info("upload.stored", map[string]any{"user_id": userID, "key": obj.Key, "size": obj.Size, "mime": obj.MimeType})

	text, err := extract.FromStore(ctx, s.Store, obj, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			return model.Resume{}, ErrUnsupportedFile
		}
		return model.Resume{}, err
	}
	return s.Import(ctx, userID, text)
}

var _ profiles.Importer = (*Service)(nil)
