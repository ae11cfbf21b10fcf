package validators

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

const maxSlugLength = 160

// SanitizeString trims input and truncates it to maxLen bytes when maxLen > 0.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

// SlugParam reads a non-empty slug URL parameter. Only surrounding space is
// trimmed; slugs match stored values exactly.
func SlugParam(r *http.Request, key string) (string, error) {
	slug := SanitizeString(chi.URLParam(r, key), maxSlugLength)
	if slug == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "slug is required").
			WithDetails(map[string]any{"field": key})
	}
	return slug, nil
}
