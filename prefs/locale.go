package prefs

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeVars are consulted in POSIX precedence order.
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// EnvLocale detects the locale from the process environment.
type EnvLocale struct {
	lookup func(string) (string, bool)
}

var _ LocaleDetector = (*EnvLocale)(nil)

// NewEnvLocale creates a detector reading os.LookupEnv.
func NewEnvLocale() *EnvLocale {
	return &EnvLocale{lookup: os.LookupEnv}
}

// IsJapaneseLocale reports whether the first non-empty locale variable names
// a Japanese locale.
func (e *EnvLocale) IsJapaneseLocale() bool {
	for _, name := range localeVars {
		value, ok := e.lookup(name)
		if !ok || value == "" {
			continue
		}
		return IsJapaneseTag(value)
	}
	return false
}

// IsJapaneseTag reports whether a POSIX locale name such as "ja_JP.UTF-8"
// or a BCP 47 tag such as "ja-JP" has Japanese as its base language.
func IsJapaneseTag(locale string) bool {
	name := locale
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" || name == "C" || name == "POSIX" {
		return false
	}

	tag, err := language.Parse(name)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return base == japanese
}

var japanese, _ = language.Japanese.Base()

// StaticLocale is a LocaleDetector with a fixed answer.
type StaticLocale bool

// IsJapaneseLocale returns the fixed answer.
func (s StaticLocale) IsJapaneseLocale() bool {
	return bool(s)
}
