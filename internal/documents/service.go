package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Saubhagya1707/crying-tailor/internal/shared/metrics"
	"github.com/Saubhagya1707/crying-tailor/resume/render"
)

// Generator produces and stores a tailored document for a user.
type Generator interface {
	CreateDocument(ctx context.Context, userID string, title *string, jobDescription string) (Document, error)
}

// Service contains business logic for documents.
type Service struct {
	Repo      Repo
	Generator Generator
	Renderer  render.Renderer
}

// UpdateInput carries a partial edit. A nil field is left unchanged; an
// empty Title clears it.
type UpdateInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// New builds a document ready for Repo.Create.
func New(userID string, title *string, jobDescription, content string) Document {
	now := time.Now().UTC()
	return Document{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          title,
		JobDescription: jobDescription,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NormalizeTitle trims the title and maps blank to nil.
func NormalizeTitle(title *string) (*string, error) {
	if title == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*title)
	if t == "" {
		return nil, nil
	}
	if len([]rune(t)) > MaxTitleLen {
		return nil, fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, MaxTitleLen)
	}
	return &t, nil
}

// ValidateJobDescription enforces presence and length.
func ValidateJobDescription(jd string) error {
	if strings.TrimSpace(jd) == "" {
		return fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	if len([]rune(jd)) > MaxJobDescriptionLen {
		return fmt.Errorf("%w: job description must be at most %d characters", ErrInvalidInput, MaxJobDescriptionLen)
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if len([]rune(content)) > MaxContentLen {
		return fmt.Errorf("%w: content must be at most %d characters", ErrInvalidInput, MaxContentLen)
	}
	return nil
}

// Generate tailors the caller's profile to a job description and stores the result.
func (s *Service) Generate(ctx context.Context, userID string, title *string, jobDescription string) (Document, error) {
	if err := ValidateJobDescription(jobDescription); err != nil {
		return Document{}, err
	}
	t, err := NormalizeTitle(title)
	if err != nil {
		return Document{}, err
	}
	return s.Generator.CreateDocument(ctx, userID, t, jobDescription)
}

// Get returns one document.
func (s *Service) Get(ctx context.Context, userID, id string) (Document, error) {
	if strings.TrimSpace(id) == "" {
		return Document{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns the user's documents newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Summary, error) {
	docs, err := s.Repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.summary())
	}
	return out, nil
}

// Update applies a partial edit. The job description cannot be changed.
func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Document, error) {
	current, err := s.Get(ctx, userID, id)
	if err != nil {
		return Document{}, err
	}

	title := current.Title
	if in.Title != nil {
		if title, err = NormalizeTitle(in.Title); err != nil {
			return Document{}, err
		}
	}
	content := current.Content
	if in.Content != nil {
		if err := validateContent(*in.Content); err != nil {
			return Document{}, err
		}
		content = *in.Content
	}
	return s.Repo.Update(ctx, userID, id, title, content)
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, userID, id)
}

// Export renders a stored document to PDF and returns the attachment name.
func (s *Service) Export(ctx context.Context, userID, id string) (string, []byte, error) {
	doc, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", nil, err
	}
	title := ""
	if doc.Title != nil {
		title = *doc.Title
	}
	return s.ExportContent(ctx, title, doc.Content)
}

// ExportContent renders arbitrary content, typically unsaved edits.
func (s *Service) ExportContent(ctx context.Context, title, content string) (name string, out []byte, err error) {
	if err := validateContent(content); err != nil {
		return "", nil, err
	}
	done := metrics.Start(metrics.OpExport)
	defer func() { done(err) }()

	out, err = s.Renderer.Render(ctx, title, content)
	if err != nil {
		return "", nil, err
	}
	return render.FileName(title), out, nil
}
