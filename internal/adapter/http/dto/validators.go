package dto

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// SanitizeQuery returns a copy of q with keys and values trimmed.
// Values containing control characters are dropped rather than forwarded upstream.
func SanitizeQuery(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for key, values := range q {
		key = strings.TrimSpace(key)
		if key == "" || hasControl(key) {
			continue
		}
		for _, v := range values {
			v = strings.TrimSpace(v)
			if hasControl(v) {
				continue
			}
			out[key] = append(out[key], v)
		}
	}
	return out
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
