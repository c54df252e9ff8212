package imagegen

import (
	"errors"
	"net/http"
	"regexp"

	"course-planner/internal/domain"

	"google.golang.org/genai"
)

// Fallback reasons reported when an infographic degrades to a placeholder.
const (
	ReasonConfig    = "config"
	ReasonTransient = "transient"
	ReasonNoData    = "no_data"
	ReasonDisabled  = "disabled"
)

// FallbackReason classifies an image generation error. Configuration
// failures (bad key, missing permission) are told apart from outages so they
// can be surfaced instead of silently retried by the user.
func FallbackReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrImageGenerationDisabled):
		return ReasonDisabled
	case IsConfigError(err):
		return ReasonConfig
	case errors.Is(err, domain.ErrNoImageData):
		return ReasonNoData
	default:
		return ReasonTransient
	}
}

var (
	// Status codes only count when introduced as one, so hosts, ports and
	// request ids that happen to contain 401 or 403 are not misread.
	authStatusPattern = regexp.MustCompile(`(?i)\b(?:error|status|code|http)[ :=]*40[13]\b`)
	authPhrasePattern = regexp.MustCompile(`(?i)\b(?:unauthorized|unauthenticated|forbidden|permission[ _]denied)\b`)
	apiKeyPattern     = regexp.MustCompile(`(?i)\b(?:api[ _]key[ _]not[ _]valid|invalid api key|api_key_invalid)\b`)
)

// IsConfigError reports whether err is a credentials or permission problem
// that will not go away on retry. A genai.APIError is judged by its status
// code; other errors by their message. Joined errors match if any branch
// does.
func IsConfigError(err error) bool {
	switch e := err.(type) {
	case nil:
		return false
	case genai.APIError:
		return isConfigStatus(e.Code, e.Message)
	case *genai.APIError:
		return e != nil && isConfigStatus(e.Code, e.Message)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if IsConfigError(inner) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			return IsConfigError(inner)
		}
	}

	msg := err.Error()
	return authStatusPattern.MatchString(msg) ||
		authPhrasePattern.MatchString(msg) ||
		apiKeyPattern.MatchString(msg)
}

func isConfigStatus(code int, message string) bool {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		return apiKeyPattern.MatchString(message)
	default:
		return false
	}
}
