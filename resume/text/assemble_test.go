package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

func TestAssembleEmptyReturnsPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, Assemble(model.Resume{}))
	assert.Equal(t, Placeholder, Assemble(model.Resume{Profile: model.Profile{FullName: "   "}}))
}

func TestAssembleHeader(t *testing.T) {
	got := Assemble(model.Resume{Profile: model.Profile{
		FullName:    "Jane Doe",
		Phone:       "555-1234",
		LinkedInURL: "https://linkedin.com/in/jane",
		Summary:     "Backend engineer.",
	}})
	assert.Equal(t, "Jane Doe\n555-1234 | https://linkedin.com/in/jane\n\nBackend engineer.", got)
}

func TestAssembleContactLineHasNoStraySeparators(t *testing.T) {
	got := Assemble(model.Resume{Profile: model.Profile{Location: "Berlin", WebsiteURL: "https://jane.dev"}})
	assert.Equal(t, "Berlin | https://jane.dev", got)
}

func TestAssembleOmitsSectionsWithoutQualifyingEntries(t *testing.T) {
	got := Assemble(model.Resume{
		Profile:        model.Profile{FullName: "Jane"},
		Experience:     []model.Experience{{Location: "Remote", StartDate: "2020"}},
		Education:      []model.Education{{Description: "only a description"}},
		Skills:         []model.Skill{{Items: []string{"", " "}}},
		Projects:       []model.Project{{URL: "https://x.dev"}},
		Certifications: []model.Certification{{Date: "2021"}},
	})
	assert.Equal(t, "Jane", got)
	assert.NotContains(t, got, "##")
}

func TestAssembleRespectsOrderIndex(t *testing.T) {
	got := Assemble(model.Resume{Experience: []model.Experience{
		{Company: "Gamma", OrderIndex: 2},
		{Company: "Alpha", OrderIndex: 0},
		{Company: "Beta", OrderIndex: 1},
	}})
	a := strings.Index(got, "Alpha")
	b := strings.Index(got, "Beta")
	c := strings.Index(got, "Gamma")
	require.True(t, a >= 0 && b >= 0 && c >= 0, got)
	assert.True(t, a < b && b < c, got)
}

func TestAssembleFullDocument(t *testing.T) {
	got := Assemble(model.Resume{
		Profile: model.Profile{FullName: "Jane Doe", Phone: "555-1234"},
		Education: []model.Education{{
			Institution: "MIT", Degree: "BSc", Field: "Computer Science", StartDate: "2014", EndDate: "2018",
		}},
		Experience: []model.Experience{{
			Company: "Acme", Role: "Engineer", Location: "Remote", StartDate: "2019", EndDate: "Present",
			Description: "Platform team.", BulletPoints: []string{"Built X", "", "Shipped Y"},
		}},
		Skills: []model.Skill{
			{Category: "Languages", Items: []string{"Go", "SQL"}},
			{Items: []string{"Docker"}, OrderIndex: 1},
		},
		Projects:       []model.Project{{Name: "tailor", Date: "2023", URL: "https://github.com/x/tailor", Description: "CLI."}},
		Certifications: []model.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2022"}},
	})

	want := strings.Join([]string{
		"Jane Doe",
		"555-1234",
		"",
		"## Education",
		"",
		"BSc Computer Science — MIT",
		"2014 - 2018",
		"",
		"## Experience",
		"",
		"Engineer at Acme",
		"Remote | 2019 - Present",
		"Platform team.",
		"• Built X",
		"• Shipped Y",
		"",
		"## Skills",
		"",
		"Languages: Go, SQL",
		"Docker",
		"",
		"## Projects",
		"",
		"tailor 2023 (https://github.com/x/tailor)",
		"CLI.",
		"",
		"## Certifications",
		"",
		"CKA CNCF 2022",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestAssembleSeparatesEntriesWithBlankLine(t *testing.T) {
	got := Assemble(model.Resume{Experience: []model.Experience{
		{Company: "A", Role: "Dev"},
		{Company: "B", Role: "Lead", OrderIndex: 1},
	}})
	assert.Equal(t, "## Experience\n\nDev at A\n\nLead at B", got)
}
