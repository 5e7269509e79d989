package tailoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
)

type fakeClient struct {
	configured bool
	reply      string
	err        error
	prompts    []string
}

func (f *fakeClient) Configured() bool { return f.configured }

func (f *fakeClient) Complete(_ context.Context, req llm.Request) (string, error) {
	f.prompts = append(f.prompts, req.Prompt)
	return f.reply, f.err
}

func TestTailorWithoutCredentialMakesNoCall(t *testing.T) {
	client := &fakeClient{configured: false, reply: "x"}
	_, err := NewEngine(client).Tailor(context.Background(), "resume", "jd")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Empty(t, client.prompts)

	_, err = NewEngine(nil).Tailor(context.Background(), "resume", "jd")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTailorTrimsAndEmbedsInputs(t *testing.T) {
	client := &fakeClient{configured: true, reply: "\n  Jane Doe\n\n## Experience\n  "}
	out, err := NewEngine(client).Tailor(context.Background(), "RESUME-BODY", "JD-BODY")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\n## Experience", out)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "RESUME-BODY")
	assert.Contains(t, client.prompts[0], "JD-BODY")
	assert.True(t, strings.Index(client.prompts[0], "RESUME-BODY") < strings.Index(client.prompts[0], "JD-BODY"))
}

func TestTailorEmptyResponseIsGenerationError(t *testing.T) {
	for _, reply := range []string{"", "   \n\t"} {
		client := &fakeClient{configured: true, reply: reply}
		_, err := NewEngine(client).Tailor(context.Background(), "r", "j")
		assert.ErrorIs(t, err, ErrGeneration)
		assert.ErrorIs(t, err, llm.ErrGeneration)
		assert.Len(t, client.prompts, 1)
	}
}

func TestTailorProviderFailureIsGenerationError(t *testing.T) {
	client := &fakeClient{configured: true, err: errors.New("openai http status 500")}
	_, err := NewEngine(client).Tailor(context.Background(), "r", "j")
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "status 500")
	assert.Len(t, client.prompts, 1)
}
