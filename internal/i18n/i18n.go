// Package i18n provides the bilingual (English/Telugu) translation
// table and the localization rule for server-supplied bilingual fields.
package i18n

// Language is a supported UI language tag.
type Language string

// Supported languages.
const (
	English Language = "en"
	Telugu  Language = "te"
)

// Parse returns the language for tag, defaulting to English for
// anything unrecognized.
func Parse(tag string) Language {
	if tag == string(Telugu) {
		return Telugu
	}
	return English
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Telugu {
		return English
	}
	return Telugu
}

// Label is the human-readable name of the language, used on the
// language switch itself (always shown in the target language).
func (l Language) Label() string {
	if l == Telugu {
		return "తెలుగు"
	}
	return "English"
}

// T looks up a UI string by key. Unknown keys are returned verbatim so
// a missing translation degrades to something visible rather than an
// empty widget.
func T(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[English][key]; ok {
		return s
	}
	return key
}

// Pick selects between the English and Telugu renderings of a
// server-supplied bilingual field. All name/name_te style pairs go
// through here so the selection rule lives in exactly one place.
func Pick(lang Language, en, te string) string {
	if lang == Telugu && te != "" {
		return te
	}
	if en == "" {
		return te
	}
	return en
}
