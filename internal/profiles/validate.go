package profiles

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
	"github.com/Saubhagya1707/crying-tailor/resume/normalize"
)

//go:embed schema/profile.schema.json
var profileSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(profileSchema)

// Validate checks a bundle against the profile schema.
func Validate(r model.Resume) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(r))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	sort.Strings(problems)
	return &ValidationError{Problems: problems}
}

// Clean trims every text field, drops blank list items and repairs
// bare-domain URLs before validation.
func Clean(r model.Resume) model.Resume {
	out := clone(r)
	p := &out.Profile
	p.FullName = strings.TrimSpace(p.FullName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Summary = strings.TrimSpace(p.Summary)
	p.Location = strings.TrimSpace(p.Location)
	p.LinkedInURL = normalize.URL(p.LinkedInURL)
	p.WebsiteURL = normalize.URL(p.WebsiteURL)
	for i := range out.Education {
		e := &out.Education[i]
		trim(&e.Institution, &e.Degree, &e.Field, &e.StartDate, &e.EndDate, &e.Description)
	}
	for i := range out.Experience {
		e := &out.Experience[i]
		trim(&e.Company, &e.Role, &e.Location, &e.StartDate, &e.EndDate, &e.Description)
		e.BulletPoints = nonBlank(e.BulletPoints)
	}
	for i := range out.Skills {
		out.Skills[i].Category = strings.TrimSpace(out.Skills[i].Category)
		out.Skills[i].Items = nonBlank(out.Skills[i].Items)
	}
	for i := range out.Projects {
		p := &out.Projects[i]
		trim(&p.Name, &p.Description, &p.Date)
		p.URL = normalize.URL(p.URL)
	}
	for i := range out.Certifications {
		c := &out.Certifications[i]
		trim(&c.Name, &c.Issuer, &c.Date)
		c.URL = normalize.URL(c.URL)
	}
	return out
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// DropInvalidURLs blanks URL fields that are not absolute http(s) links.
// Extracted profiles go through this so free text in a URL slot does not
// block the import.
func DropInvalidURLs(r model.Resume) model.Resume {
	out := clone(r)
	out.Profile.LinkedInURL = httpURL(out.Profile.LinkedInURL)
	out.Profile.WebsiteURL = httpURL(out.Profile.WebsiteURL)
	for i := range out.Projects {
		out.Projects[i].URL = httpURL(out.Projects[i].URL)
	}
	for i := range out.Certifications {
		out.Certifications[i].URL = httpURL(out.Certifications[i].URL)
	}
	return out
}

func httpURL(s string) string {
	lower := strings.ToLower(s)
	if (strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")) && !strings.ContainsAny(s, " \t\n") {
		return s
	}
	return ""
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}
