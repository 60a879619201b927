// Package i18n resolves the request language and renders notification
// and error texts through golang.org/x/text message catalogs.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam query-параметр для явного выбора языка
const LangParam = "lang"

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

// Supported возвращает поддерживаемые языки; первый используется по умолчанию
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Parse приводит строку к поддерживаемому языку
func Parse(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}
	return Match(tag), true
}

// Match подбирает ближайший поддерживаемый язык
func Match(tags ...language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// ResolveTag определяет язык запроса: ?lang=, затем Accept-Language, затем fallback
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}

	if v := r.URL.Query().Get(LangParam); v != "" {
		if tag, ok := Parse(v); ok {
			return tag
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...)
		}
	}

	return fallback
}

// Printer возвращает принтер сообщений для языка
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Text переводит ключ каталога; неизвестный ключ возвращается как есть
func Text(tag language.Tag, key string) string {
	return Printer(tag).Sprintf(message.Key(key, key))
}
