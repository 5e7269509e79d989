package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/storage/object/local"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

const pasted = "Jane Doe\nBackend engineer with eight years of Go experience.\nAcme 2019-2024"

const extractedJSON = `{
  "profile": {"fullName": "Jane Doe", "linkedinUrl": "linkedin.com/in/jane", "websiteUrl": "see portfolio"},
  "experience": [{"company": "Acme", "role": "Engineer", "bulletPoints": ["Built X"]}],
  "skills": [{"category": "Languages", "items": ["Go", 42]}]
}`

func newImportService(t *testing.T, client *fakeClient) (*Service, *profiles.MemoryRepo) {
	t.Helper()
	repo := profiles.NewMemoryRepo()
	return &Service{
		Engine:   NewEngine(client),
		Profiles: &profiles.Service{Repo: repo},
		Store:    local.New(t.TempDir()),
	}, repo
}

func TestImportReplacesProfile(t *testing.T) {
	client := &fakeClient{configured: true, reply: extractedJSON}
	svc, repo := newImportService(t, client)
	ctx := context.Background()
	require.NoError(t, repo.Replace(ctx, "u", model.Resume{Projects: []model.Project{{Name: "old"}}}))

	got, err := svc.Import(ctx, "u", pasted)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Profile.FullName)
	assert.Equal(t, "https://linkedin.com/in/jane", got.Profile.LinkedInURL)
	assert.Equal(t, "", got.Profile.WebsiteURL)
	assert.Equal(t, []string{"Go", "42"}, got.Skills[0].Items)
	assert.Empty(t, got.Projects)
}

func TestImportRejectsShortText(t *testing.T) {
	client := &fakeClient{configured: true, reply: extractedJSON}
	svc, _ := newImportService(t, client)

	_, err := svc.Import(context.Background(), "u", "  too short  ")
	assert.ErrorIs(t, err, ErrTooShort)
	assert.ErrorIs(t, err, profiles.ErrInvalidInput)
	assert.Empty(t, client.requests)
}

func TestImportParseFailureKeepsProfile(t *testing.T) {
	client := &fakeClient{configured: true, reply: "Sorry, I cannot help with that."}
	svc, repo := newImportService(t, client)
	ctx := context.Background()
	require.NoError(t, repo.Replace(ctx, "u", model.Resume{Profile: model.Profile{FullName: "Keep Me"}}))

	_, err := svc.Import(ctx, "u", pasted)
	assert.ErrorIs(t, err, ErrParse)

	stored, err := repo.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", stored.Profile.FullName)
}

func TestImportFilePlainText(t *testing.T) {
	client := &fakeClient{configured: true, reply: extractedJSON}
	svc, _ := newImportService(t, client)

	got, err := svc.ImportFile(context.Background(), "u", "resume.txt", strings.NewReader(pasted))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Profile.FullName)
	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].Prompt, "eight years of Go")
}

func TestImportFileUnsupported(t *testing.T) {
	client := &fakeClient{configured: true, reply: extractedJSON}
	svc, _ := newImportService(t, client)

	png := string([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	_, err := svc.ImportFile(context.Background(), "u", "me.png", strings.NewReader(png))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Empty(t, client.requests)
}
