package profiles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

func TestValidateAcceptsEmptyAndHTTPURLs(t *testing.T) {
	r := model.Resume{
		Profile:  model.Profile{FullName: "Jane", LinkedInURL: "https://linkedin.com/in/jane"},
		Projects: []model.Project{{Name: "tailor", URL: ""}},
	}
	assert.NoError(t, Validate(r))
}

func TestValidateRejectsRelativeURLAndLongFields(t *testing.T) {
	r := model.Resume{
		Profile:        model.Profile{FullName: strings.Repeat("x", 301), WebsiteURL: "my site"},
		Certifications: []model.Certification{{Name: "CKA", URL: "ftp://example.com"}},
	}
	err := Validate(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Problems), 3)
}

func TestCleanRepairsURLsAndDropsBlankItems(t *testing.T) {
	got := Clean(model.Resume{
		Profile:    model.Profile{FullName: "  Jane ", LinkedInURL: "linkedin.com/in/jane"},
		Experience: []model.Experience{{Company: "Acme", BulletPoints: []string{"Built X", "  ", ""}}},
		Skills:     []model.Skill{{Category: "Go", Items: nil}},
		Projects:   []model.Project{{Name: "p", URL: "jane.dev/p"}},
	})
	assert.Equal(t, "Jane", got.Profile.FullName)
	assert.Equal(t, "https://linkedin.com/in/jane", got.Profile.LinkedInURL)
	assert.Equal(t, []string{"Built X"}, got.Experience[0].BulletPoints)
	assert.Equal(t, []string{}, got.Skills[0].Items)
	assert.Equal(t, "https://jane.dev/p", got.Projects[0].URL)
	assert.NoError(t, Validate(got))
}

func TestCleanTrimsSectionFields(t *testing.T) {
	got := Clean(model.Resume{
		Education:      []model.Education{{Institution: " MIT ", Degree: "BSc\n", EndDate: " 2018"}},
		Experience:     []model.Experience{{Company: "  Acme", Role: "Engineer  ", Description: " Platform. "}},
		Skills:         []model.Skill{{Category: " Languages ", Items: []string{" Go "}}},
		Projects:       []model.Project{{Name: " tailor ", Date: " 2023 "}},
		Certifications: []model.Certification{{Name: " CKA ", Issuer: " CNCF "}},
	})
	assert.Equal(t, model.Education{Institution: "MIT", Degree: "BSc", EndDate: "2018"}, got.Education[0])
	assert.Equal(t, "Acme", got.Experience[0].Company)
	assert.Equal(t, "Engineer", got.Experience[0].Role)
	assert.Equal(t, "Platform.", got.Experience[0].Description)
	assert.Equal(t, model.Skill{Category: "Languages", Items: []string{"Go"}}, got.Skills[0])
	assert.Equal(t, model.Project{Name: "tailor", Date: "2023"}, got.Projects[0])
	assert.Equal(t, model.Certification{Name: "CKA", Issuer: "CNCF"}, got.Certifications[0])
}

func TestDropInvalidURLs(t *testing.T) {
	got := DropInvalidURLs(model.Resume{
		Profile:  model.Profile{LinkedInURL: "see my linkedin", WebsiteURL: "https://jane.dev"},
		Projects: []model.Project{{URL: "not a url"}},
	})
	assert.Equal(t, "", got.Profile.LinkedInURL)
	assert.Equal(t, "https://jane.dev", got.Profile.WebsiteURL)
	assert.Equal(t, "", got.Projects[0].URL)
}
