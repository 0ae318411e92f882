// Package i18n holds the static English/Vietnamese string table used by the
// portal. Pure data plus a lookup helper; no formatting logic beyond
// fmt.Sprintf pass-through.
package i18n

import "fmt"

// Lang selects one of the two supported display languages.
type Lang string

const (
	EN Lang = "en"
	VI Lang = "vi"
)

// Toggle returns the other language. The portal has exactly two.
func (l Lang) Toggle() Lang {
	if l == EN {
		return VI
	}
	return EN
}

type entry struct {
	en string
	vi string
}

// T returns the translation of key for lang. Unknown keys come back as the
// key itself so a missing translation is visible instead of silent. The
// language preference is session-only and resets to English on restart.
func T(lang Lang, key string) string {
	e, ok := table[key]
	if !ok {
		return key
	}
	if lang == VI && e.vi != "" {
		return e.vi
	}
	return e.en
}

// Tf is T followed by fmt.Sprintf with the translated string as format.
func Tf(lang Lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
