// Package normalize coerces untrusted, loosely typed JSON (as produced by the
// generative model) into the strict resume model. Every function is total:
// malformed input yields empty defaults, never an error or panic.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

var (
	schemePattern   = regexp.MustCompile(`(?i)^https?://`)
	hostnamePattern = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9.-]*\.[a-z]{2,}(/.*)?$`)
	socialPrefixes  = []string{"linkedin.com", "github.com"}
)

// Resume normalizes a decoded top-level extraction object. Section entries
// keep a stored orderIndex, or receive their array position when it is
// missing or malformed.
func Resume(v any) model.Resume {
	o := object(v)
	return model.Resume{
		Profile:        Profile(o["profile"]),
		Education:      list(o["education"], Education),
		Experience:     list(o["experience"], Experience),
		Skills:         list(o["skills"], Skill),
		Projects:       list(o["projects"], Project),
		Certifications: list(o["certifications"], Certification),
	}
}

// Profile normalizes a profile record.
func Profile(v any) model.Profile {
	o := object(v)
	return model.Profile{
		FullName:    Str(o["fullName"]),
		Phone:       Str(o["phone"]),
		Summary:     Str(o["summary"]),
		Location:    Str(o["location"]),
		LinkedInURL: URL(Str(o["linkedinUrl"])),
		WebsiteURL:  URL(Str(o["websiteUrl"])),
	}
}

// Education normalizes an education record.
func Education(v any) model.Education {
	o := object(v)
	return model.Education{
		Institution: Str(o["institution"]),
		Degree:      Str(o["degree"]),
		Field:       Str(o["field"]),
		StartDate:   Str(o["startDate"]),
		EndDate:     Str(o["endDate"]),
		Description: Str(o["description"]),
	}
}

// Experience normalizes an experience record.
func Experience(v any) model.Experience {
	o := object(v)
	return model.Experience{
		Company:      Str(o["company"]),
		Role:         Str(o["role"]),
		Location:     Str(o["location"]),
		StartDate:    Str(o["startDate"]),
		EndDate:      Str(o["endDate"]),
		Description:  Str(o["description"]),
		BulletPoints: Strings(o["bulletPoints"]),
	}
}

// Skill normalizes a skill category record.
func Skill(v any) model.Skill {
	o := object(v)
	return model.Skill{
		Category: Str(o["category"]),
		Items:    Strings(o["items"]),
	}
}

// Project normalizes a project record.
func Project(v any) model.Project {
	o := object(v)
	return model.Project{
		Name:        Str(o["name"]),
		Description: Str(o["description"]),
		URL:         URL(Str(o["url"])),
		Date:        Str(o["date"]),
	}
}

// Certification normalizes a certification record.
func Certification(v any) model.Certification {
	o := object(v)
	return model.Certification{
		Name:   Str(o["name"]),
		Issuer: Str(o["issuer"]),
		Date:   Str(o["date"]),
		URL:    URL(Str(o["url"])),
	}
}

// Str converts any scalar to a trimmed string; nil becomes "".
func Str(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return strings.TrimSpace(x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case map[string]any, []any:
		data, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

// Strings coerces an array field. Non-arrays yield an empty, non-nil slice.
func Strings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]string); ok {
			out := make([]string, 0, len(typed))
			for _, s := range typed {
				out = append(out, strings.TrimSpace(s))
			}
			return out
		}
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, Str(item))
	}
	return out
}

// URL repairs the common "pasted bare domain" case by adding https://.
// Anything already carrying a scheme, or not shaped like a hostname, is
// returned trimmed but otherwise unchanged.
func URL(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if schemePattern.MatchString(t) {
		return t
	}
	if hostnamePattern.MatchString(t) || hasSocialPrefix(t) {
		return "https://" + strings.TrimLeft(t, "/")
	}
	return t
}

func hasSocialPrefix(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range socialPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func object(v any) map[string]any {
	if o, ok := v.(map[string]any); ok && o != nil {
		return o
	}
	return map[string]any{}
}

type orderable interface {
	model.Education | model.Experience | model.Skill | model.Project | model.Certification
}

func list[T orderable](v any, fn func(any) T) []T {
	arr, ok := v.([]any)
	if !ok {
		return []T{}
	}
	out := make([]T, 0, len(arr))
	for i, item := range arr {
		out = append(out, withIndex(fn(item), orderIndex(item, i)))
	}
	return out
}

// orderIndex honors a stored non-negative integer "orderIndex" and otherwise
// uses the array position.
func orderIndex(item any, pos int) int {
	switch x := object(item)["orderIndex"].(type) {
	case float64:
		if x >= 0 && x == math.Trunc(x) && x <= math.MaxInt32 {
			return int(x)
		}
	case json.Number:
		if n, err := strconv.Atoi(x.String()); err == nil && n >= 0 {
			return n
		}
	case int:
		if x >= 0 {
			return x
		}
	}
	return pos
}

func withIndex[T orderable](entry T, i int) T {
	switch e := any(&entry).(type) {
	case *model.Education:
		e.OrderIndex = i
	case *model.Experience:
		e.OrderIndex = i
	case *model.Skill:
		e.OrderIndex = i
	case *model.Project:
		e.OrderIndex = i
	case *model.Certification:
		e.OrderIndex = i
	}
	return entry
}
