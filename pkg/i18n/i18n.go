// pkg/i18n/i18n.go
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

const (
	LangVI = "vi"
	LangEN = "en"
)

// DefaultLang is used when a key is missing for the requested language.
var DefaultLang = LangVI

var catalogs = map[string]map[string]string{
	LangVI: vi,
	LangEN: en,
}

var matcher = language.NewMatcher([]language.Tag{language.Vietnamese, language.English})

// T looks up key for lang, falling back to DefaultLang and then to the key itself.
func T(lang, key string, args ...any) string {
	if text, ok := catalogs[lang][key]; ok {
		return format(text, args)
	}
	if lang != DefaultLang {
		if text, ok := catalogs[DefaultLang][key]; ok {
			return format(text, args)
		}
	}
	return key
}

func format(text string, args []any) string {
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Match negotiates an Accept-Language style header against the catalogs.
func Match(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	if idx == 1 {
		return LangEN
	}
	return LangVI
}
