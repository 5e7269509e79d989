package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/llm"
)

// LLMError maps generative-model failures to HTTP responses. It reports
// false when err is not one of the llm sentinels.
func LLMError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		Error(c, http.StatusInternalServerError, "configuration_error", "AI provider is not configured", nil)
	case errors.Is(err, llm.ErrParse):
		Error(c, http.StatusBadGateway, "parse_failed", "Could not extract details from the resume. Try again or edit your profile manually.", nil)
	case errors.Is(err, llm.ErrGeneration):
		Error(c, http.StatusBadGateway, "generation_failed", "The AI provider did not return a result. Please try again.", nil)
	default:
		return false
	}
	return true
}
