package tailoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saubhagya1707/crying-tailor/internal/documents"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

func newService(t *testing.T, client *fakeClient) (*Service, *documents.MemoryRepo, *profiles.MemoryRepo) {
	t.Helper()
	docs := documents.NewMemoryRepo()
	profs := profiles.NewMemoryRepo()
	return &Service{Profiles: profs, Engine: NewEngine(client), Documents: docs}, docs, profs
}

func TestCreateDocumentPersistsTailoredText(t *testing.T) {
	client := &fakeClient{configured: true, reply: "Jane Doe\n\n## Experience\n\n- Built Go services"}
	svc, docs, profs := newService(t, client)
	ctx := context.Background()
	require.NoError(t, profs.Replace(ctx, "u", model.Resume{
		Profile:    model.Profile{FullName: "Jane Doe"},
		Experience: []model.Experience{{Company: "Acme", Role: "Engineer"}},
	}))

	title := "Go role"
	doc, err := svc.CreateDocument(ctx, "u", &title, "Looking for Go")
	require.NoError(t, err)
	assert.Equal(t, "Looking for Go", doc.JobDescription)
	assert.Equal(t, "Jane Doe\n\n## Experience\n\n- Built Go services", doc.Content)

	stored, err := docs.GetByID(ctx, "u", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, stored.Content)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Engineer at Acme")
}

func TestCreateDocumentRequiresProfile(t *testing.T) {
	client := &fakeClient{configured: true, reply: "x"}
	svc, _, _ := newService(t, client)

	_, err := svc.CreateDocument(context.Background(), "u", nil, "JD")
	assert.ErrorIs(t, err, ErrProfileRequired)
	assert.True(t, errors.Is(err, documents.ErrInvalidInput))
	assert.Empty(t, client.prompts)
}

func TestCreateDocumentStoresNothingOnFailure(t *testing.T) {
	client := &fakeClient{configured: true, reply: " "}
	svc, docs, profs := newService(t, client)
	ctx := context.Background()
	require.NoError(t, profs.Replace(ctx, "u", model.Resume{Profile: model.Profile{FullName: "Jane"}}))

	_, err := svc.CreateDocument(ctx, "u", nil, "JD")
	assert.ErrorIs(t, err, ErrGeneration)

	list, err := docs.ListByUser(ctx, "u", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateDocumentUnconfigured(t *testing.T) {
	client := &fakeClient{configured: false}
	svc, _, profs := newService(t, client)
	ctx := context.Background()
	require.NoError(t, profs.Replace(ctx, "u", model.Resume{Profile: model.Profile{FullName: "Jane"}}))

	_, err := svc.CreateDocument(ctx, "u", nil, "JD")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Empty(t, client.prompts)
}
