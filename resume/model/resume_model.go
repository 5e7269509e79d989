package model

import (
	"sort"
	"strings"
)

// Resume is the structured profile a user maintains: a single profile
// record plus five ordered section collections.
type Resume struct {
	Profile        Profile         `json:"profile"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// Profile captures top-of-resume identity and contact details.
type Profile struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	LinkedInURL string `json:"linkedinUrl"`
	WebsiteURL  string `json:"websiteUrl"`
}

// Education represents an education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
}

// Experience represents a work history entry.
type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bulletPoints"`
	OrderIndex   int      `json:"orderIndex"`
}

// Skill is a category with its items. Category may be empty.
type Skill struct {
	Category   string   `json:"category"`
	Items      []string `json:"items"`
	OrderIndex int      `json:"orderIndex"`
}

// Project represents a notable project.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	OrderIndex  int    `json:"orderIndex"`
}

// Certification represents a certification entry.
type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	URL        string `json:"url"`
	OrderIndex int    `json:"orderIndex"`
}

// Qualifies reports whether the entry carries enough content to render.
func (e Education) Qualifies() bool {
	return notBlank(e.Institution) || notBlank(e.Degree) || notBlank(e.Field)
}

func (e Experience) Qualifies() bool {
	return notBlank(e.Company) || notBlank(e.Role)
}

func (s Skill) Qualifies() bool {
	if notBlank(s.Category) {
		return true
	}
	for _, item := range s.Items {
		if notBlank(item) {
			return true
		}
	}
	return false
}

func (p Project) Qualifies() bool {
	return notBlank(p.Name) || notBlank(p.Description)
}

func (c Certification) Qualifies() bool {
	return notBlank(c.Name) || notBlank(c.Issuer)
}

// Sorted returns a copy with every collection stably ordered by OrderIndex.
// Entries sharing an index keep their relative order. Collections are never
// nil in the copy.
func (r Resume) Sorted() Resume {
	out := r
	out.Education = append(make([]Education, 0, len(r.Education)), r.Education...)
	sort.SliceStable(out.Education, func(i, j int) bool { return out.Education[i].OrderIndex < out.Education[j].OrderIndex })
	out.Experience = append(make([]Experience, 0, len(r.Experience)), r.Experience...)
	sort.SliceStable(out.Experience, func(i, j int) bool { return out.Experience[i].OrderIndex < out.Experience[j].OrderIndex })
	out.Skills = append(make([]Skill, 0, len(r.Skills)), r.Skills...)
	sort.SliceStable(out.Skills, func(i, j int) bool { return out.Skills[i].OrderIndex < out.Skills[j].OrderIndex })
	out.Projects = append(make([]Project, 0, len(r.Projects)), r.Projects...)
	sort.SliceStable(out.Projects, func(i, j int) bool { return out.Projects[i].OrderIndex < out.Projects[j].OrderIndex })
	out.Certifications = append(make([]Certification, 0, len(r.Certifications)), r.Certifications...)
	sort.SliceStable(out.Certifications, func(i, j int) bool {
		return out.Certifications[i].OrderIndex < out.Certifications[j].OrderIndex
	})
	return out
}

// Reindex assigns each entry its position as order index.
func (r Resume) Reindex() Resume {
	out := r.Sorted()
	for i := range out.Education {
		out.Education[i].OrderIndex = i
	}
	for i := range out.Experience {
		out.Experience[i].OrderIndex = i
	}
	for i := range out.Skills {
		out.Skills[i].OrderIndex = i
	}
	for i := range out.Projects {
		out.Projects[i].OrderIndex = i
	}
	for i := range out.Certifications {
		out.Certifications[i].OrderIndex = i
	}
	return out
}

// IsEmpty reports whether nothing renderable is present.
func (r Resume) IsEmpty() bool {
	p := r.Profile
	if notBlank(p.FullName) || notBlank(p.Phone) || notBlank(p.Summary) || notBlank(p.Location) ||
		notBlank(p.LinkedInURL) || notBlank(p.WebsiteURL) {
		return false
	}
	return len(r.Education) == 0 && len(r.Experience) == 0 && len(r.Skills) == 0 &&
		len(r.Projects) == 0 && len(r.Certifications) == 0
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
