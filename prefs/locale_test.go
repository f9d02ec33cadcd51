package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJapaneseTag(t *testing.T) {
	tests := []struct {
		locale string
		want   bool
	}{
		{"ja_JP.UTF-8", true},
		{"ja_JP.eucJP", true},
		{"ja", true},
		{"ja-JP", true},
		{"ja_JP@euro", true},
		{"en_US.UTF-8", false},
		{"de_DE", false},
		{"C", false},
		{"POSIX", false},
		{"", false},
		{"not a locale", false},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJapaneseTag(tt.locale))
		})
	}
}

func TestEnvLocale(t *testing.T) {
	env := func(vars map[string]string) *EnvLocale {
		return &EnvLocale{lookup: func(name string) (string, bool) {
			v, ok := vars[name]
			return v, ok
		}}
	}

	assert.True(t, env(map[string]string{"LANG": "ja_JP.UTF-8"}).IsJapaneseLocale())
	assert.False(t, env(map[string]string{"LANG": "en_US.UTF-8"}).IsJapaneseLocale())
	// LC_ALL wins over LANG
	assert.False(t, env(map[string]string{"LC_ALL": "en_GB.UTF-8", "LANG": "ja_JP.UTF-8"}).IsJapaneseLocale())
	// empty values are skipped
	assert.True(t, env(map[string]string{"LC_ALL": "", "LC_MESSAGES": "ja_JP"}).IsJapaneseLocale())
	assert.False(t, env(nil).IsJapaneseLocale())

	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	assert.True(t, NewEnvLocale().IsJapaneseLocale())
}

func TestStaticLocale(t *testing.T) {
	assert.True(t, StaticLocale(true).IsJapaneseLocale())
	assert.False(t, StaticLocale(false).IsJapaneseLocale())
}
