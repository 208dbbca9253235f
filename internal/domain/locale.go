package domain

import (
	"fmt"
	"strings"
)

// Locale язык, на котором генерируется контент
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleTR Locale = "tr"
	LocaleTH Locale = "th"

	DefaultLocale = LocaleEN
)

// SupportedLocales все поддерживаемые локали, порядок значим для таблиц
var SupportedLocales = []Locale{LocaleEN, LocaleTR, LocaleTH}

var languageNames = map[Locale]string{
	LocaleEN: "English",
	LocaleTR: "Turkish",
	LocaleTH: "Thai",
}

func (l Locale) IsValid() bool {
	_, ok := languageNames[l]
	return ok
}

// LanguageName название языка для промпта; для неизвестной локали - English
func (l Locale) LanguageName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[DefaultLocale]
}

// ParseLocale разбирает строку локали, пустая строка даёт локаль по умолчанию
func ParseLocale(s string) (Locale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLocale, nil
	}
	l := Locale(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: unsupported locale %q", ErrInvalidArgument, s)
	}
	return l, nil
}

func init() {
	mustCoverAll("language names", SupportedLocales, languageNames)
}
