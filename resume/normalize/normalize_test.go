package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

func TestURL(t *testing.T) {
	cases := map[string]string{
		"linkedin.com/in/x":     "https://linkedin.com/in/x",
		"https://example.com":   "https://example.com",
		"HTTP://Example.com/a":  "HTTP://Example.com/a",
		"":                      "",
		"   ":                   "",
		"not a url at all":      "not a url at all",
		"jane.dev":              "https://jane.dev",
		"github.com/jane":       "https://github.com/jane",
		"  portfolio.io/work  ": "https://portfolio.io/work",
		"mailto:jane@x.com":     "mailto:jane@x.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, URL(in), "input %q", in)
	}
}

func TestRecordNormalizersAreTotal(t *testing.T) {
	inputs := []any{nil, "string", 42.0, true, []any{1, 2}, map[string]any{}}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.Equal(t, model.Profile{}, Profile(in))
			assert.Equal(t, model.Education{}, Education(in))
			assert.Equal(t, model.Project{}, Project(in))
			assert.Equal(t, model.Certification{}, Certification(in))

			exp := Experience(in)
			require.NotNil(t, exp.BulletPoints)
			assert.Empty(t, exp.BulletPoints)

			skill := Skill(in)
			require.NotNil(t, skill.Items)
			assert.Empty(t, skill.Items)
		})
	}
}

func TestExperienceCoercesFields(t *testing.T) {
	got := Experience(map[string]any{
		"company":      "  Acme ",
		"role":         nil,
		"startDate":    2019.0,
		"endDate":      json.Number("2021"),
		"bulletPoints": []any{" Built X ", nil, 3.5, true},
	})
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "", got.Role)
	assert.Equal(t, "2019", got.StartDate)
	assert.Equal(t, "2021", got.EndDate)
	assert.Equal(t, []string{"Built X", "", "3.5", "true"}, got.BulletPoints)
}

func TestSkillItemsNonArrayBecomesEmpty(t *testing.T) {
	got := Skill(map[string]any{"category": "Languages", "items": "Go, SQL"})
	assert.Equal(t, "Languages", got.Category)
	assert.Equal(t, []string{}, got.Items)
}

func TestProfileRepairsURLs(t *testing.T) {
	got := Profile(map[string]any{
		"fullName":    "Jane Doe",
		"linkedinUrl": "linkedin.com/in/jane",
		"websiteUrl":  "jane.dev",
	})
	assert.Equal(t, "https://linkedin.com/in/jane", got.LinkedInURL)
	assert.Equal(t, "https://jane.dev", got.WebsiteURL)
}

func TestResumeAssignsOrderAndDefaultsSections(t *testing.T) {
	var raw any
	require.NoError(t, json.Unmarshal([]byte(`{
		"profile": {"fullName": "Jane"},
		"experience": [{"company": "A"}, "garbage", {"company": "C"}],
		"skills": {"not": "an array"},
		"projects": null
	}`), &raw))

	got := Resume(raw)
	assert.Equal(t, "Jane", got.Profile.FullName)
	require.Len(t, got.Experience, 3)
	assert.Equal(t, "A", got.Experience[0].Company)
	assert.Equal(t, model.Experience{BulletPoints: []string{}, OrderIndex: 1}, got.Experience[1])
	assert.Equal(t, 2, got.Experience[2].OrderIndex)
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
	assert.NotNil(t, got.Projects)
	assert.NotNil(t, got.Education)
	assert.NotNil(t, got.Certifications)
}

func TestResumeKeepsStoredOrderIndex(t *testing.T) {
	var raw any
	require.NoError(t, json.Unmarshal([]byte(`{
		"experience": [
			{"company": "Gamma", "orderIndex": 2},
			{"company": "Alpha", "orderIndex": 0},
			{"company": "Beta", "orderIndex": 1},
			{"company": "Delta", "orderIndex": "x"},
			{"company": "Epsilon", "orderIndex": -1},
			{"company": "Zeta", "orderIndex": 1.5}
		]
	}`), &raw))

	got := Resume(raw)
	idx := make([]int, 0, len(got.Experience))
	for _, e := range got.Experience {
		idx = append(idx, e.OrderIndex)
	}
	assert.Equal(t, []int{2, 0, 1, 3, 4, 5}, idx)
}

func TestResumeNonObject(t *testing.T) {
	for _, in := range []any{nil, "x", []any{}} {
		got := Resume(in)
		assert.Equal(t, model.Profile{}, got.Profile)
		assert.Empty(t, got.Experience)
	}
}
