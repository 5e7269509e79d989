package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/tailor_v1.txt
	tailorPromptV1 string
	//go:embed prompts/extract_v1.txt
	extractPromptV1 string
)

// TailorPrompt embeds the canonical resume text and job description into
// the tailoring template.
func TailorPrompt(resumeText, jobDescription string) string {
	return strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	).Replace(tailorPromptV1)
}

// ExtractPrompt embeds raw resume text into the extraction template.
func ExtractPrompt(resumeText string) string {
	return strings.NewReplacer("{{RESUME_TEXT}}", resumeText).Replace(extractPromptV1)
}
