package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTailorPromptEmbedsInputs(t *testing.T) {
	got := TailorPrompt("Jane Doe\n## Experience", "Senior Go engineer")
	if !strings.Contains(got, "CANDIDATE'S CURRENT RESUME:\n---\nJane Doe\n## Experience\n---") {
		t.Fatalf("resume text not embedded: %s", got)
	}
	if !strings.Contains(got, "JOB DESCRIPTION:\n---\nSenior Go engineer\n---") {
		t.Fatalf("job description not embedded")
	}
	if strings.Contains(got, "{{") {
		t.Fatalf("unreplaced placeholder")
	}
}

func TestExtractPromptEmbedsInput(t *testing.T) {
	got := ExtractPrompt("raw resume")
	if !strings.Contains(got, "RESUME TEXT:\n---\nraw resume\n---") {
		t.Fatalf("resume text not embedded")
	}
	for _, key := range []string{`"profile"`, `"education"`, `"experience"`, `"skills"`, `"projects"`, `"certifications"`, `"bulletPoints"`} {
		if !strings.Contains(got, key) {
			t.Fatalf("schema key %s missing", key)
		}
	}
}

func TestPlaceholderClientIsNotConfigured(t *testing.T) {
	c := PlaceholderClient{Setting: "GEMINI_API_KEY"}
	if c.Configured() {
		t.Fatalf("placeholder must not be configured")
	}
	_, err := c.Complete(context.Background(), Request{})
	if !errors.Is(err, ErrNotConfigured) || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("unexpected error: %v", err)
	}
}
