// Package text flattens a structured resume into the canonical plain-text
// form exchanged with the generative model.
package text

import (
	"strings"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

// Placeholder is returned when nothing renderable is present so that prompts
// never embed a blank resume.
const Placeholder = "No resume content provided."

const contactSeparator = " | "

// Assemble renders the resume as section-delimited text. Collections are
// stably sorted by order index first; the input is not modified.
func Assemble(r model.Resume) string {
	r = r.Sorted()

	var blocks []string
	if header := headerBlock(r.Profile); header != "" {
		blocks = append(blocks, header)
	}

	var entries []string
	for _, e := range r.Education {
		if e.Qualifies() {
			entries = append(entries, educationEntry(e))
		}
	}
	blocks = appendSection(blocks, "Education", entries, "\n\n")

	entries = nil
	for _, e := range r.Experience {
		if e.Qualifies() {
			entries = append(entries, experienceEntry(e))
		}
	}
	blocks = appendSection(blocks, "Experience", entries, "\n\n")

	entries = nil
	for _, s := range r.Skills {
		if !s.Qualifies() {
			continue
		}
		items := strings.Join(nonBlank(s.Items), ", ")
		if cat := strings.TrimSpace(s.Category); cat != "" {
			entries = append(entries, strings.TrimSpace(cat+": "+items))
		} else {
			entries = append(entries, items)
		}
	}
	blocks = appendSection(blocks, "Skills", entries, "\n")

	entries = nil
	for _, p := range r.Projects {
		if p.Qualifies() {
			entries = append(entries, projectEntry(p))
		}
	}
	blocks = appendSection(blocks, "Projects", entries, "\n\n")

	entries = nil
	for _, c := range r.Certifications {
		if c.Qualifies() {
			entries = append(entries, joinWords(c.Name, c.Issuer, c.Date, parenthesize(c.URL)))
		}
	}
	blocks = appendSection(blocks, "Certifications", entries, "\n")

	out := strings.TrimSpace(strings.Join(blocks, "\n\n"))
	if out == "" {
		return Placeholder
	}
	return out
}

func headerBlock(p model.Profile) string {
	var lines []string
	if name := strings.TrimSpace(p.FullName); name != "" {
		lines = append(lines, name)
	}
	if contact := strings.Join(nonBlank([]string{p.Phone, p.Location, p.LinkedInURL, p.WebsiteURL}), contactSeparator); contact != "" {
		lines = append(lines, contact)
	}
	if summary := strings.TrimSpace(p.Summary); summary != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, summary)
	}
	return strings.Join(lines, "\n")
}

func educationEntry(e model.Education) string {
	head := joinWords(e.Degree, e.Field)
	if inst := strings.TrimSpace(e.Institution); inst != "" {
		head = joinWords(head, "—", inst)
	}
	return joinLines(head, dateRange(e.StartDate, e.EndDate), e.Description)
}

func experienceEntry(e model.Experience) string {
	head := strings.TrimSpace(e.Role)
	if company := strings.TrimSpace(e.Company); company != "" {
		if head != "" {
			head = head + " at " + company
		} else {
			head = company
		}
	}
	meta := strings.Join(nonBlank([]string{e.Location, dateRange(e.StartDate, e.EndDate)}), contactSeparator)
	lines := []string{head, meta, e.Description}
	for _, b := range nonBlank(e.BulletPoints) {
		lines = append(lines, "• "+b)
	}
	return joinLines(lines...)
}

func projectEntry(p model.Project) string {
	return joinLines(joinWords(p.Name, p.Date, parenthesize(p.URL)), p.Description)
}

func appendSection(blocks []string, title string, entries []string, sep string) []string {
	if len(entries) == 0 {
		return blocks
	}
	return append(blocks, "## "+title+"\n\n"+strings.Join(entries, sep))
}

func dateRange(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}

func parenthesize(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return "(" + s + ")"
}

func joinWords(parts ...string) string {
	return strings.Join(nonBlank(parts), " ")
}

func joinLines(parts ...string) string {
	return strings.Join(nonBlank(parts), "\n")
}

func nonBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
