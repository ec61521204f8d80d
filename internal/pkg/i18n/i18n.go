package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

const Default = EN

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Negotiate picks the response language. An explicit override ("en"/"ar")
// wins over the Accept-Language header.
func Negotiate(acceptLanguage, override string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(override))) {
	case EN:
		return EN
	case AR:
		return AR
	}

	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	if idx == 1 {
		return AR
	}
	return EN
}

// T returns the message for key in lang, falling back to English and then
// to the key itself.
func T(lang Lang, key string) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}
	if msg, ok := entry[lang]; ok {
		return msg
	}
	if msg, ok := entry[Default]; ok {
		return msg
	}
	return key
}

func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}
