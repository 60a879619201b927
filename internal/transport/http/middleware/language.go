package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/StepanK17/novagen-service/internal/i18n"
)

type languageKey struct{}

// Language определяет язык запроса и кладет его в контекст
func Language(fallback language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := i18n.ResolveTag(r, fallback)
			w.Header().Set("Content-Language", tag.String())

			ctx := context.WithValue(r.Context(), languageKey{}, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LanguageFromContext возвращает язык запроса; по умолчанию английский
func LanguageFromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(languageKey{}).(language.Tag); ok {
		return tag
	}
	return language.English
}
