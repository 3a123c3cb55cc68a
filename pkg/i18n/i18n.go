package i18n

import (
	"golang.org/x/text/language"
)

// Default is the locale used when the request carries nothing matchable.
const Default = "en"

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Pick resolves an Accept-Language header (or a bare locale string) to one of
// the supported locales.
func Pick(acceptLanguage string) string {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, _ := matcher.Match(tags...)
	base, _ := supported[idx].Base()
	return base.String()
}

// T returns the message for key in the given locale, falling back to the
// default locale, then to the key itself so a missing entry stays visible.
func T(locale, key string) string {
	if m, ok := messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[Default][key]; ok {
		return s
	}
	return key
}
