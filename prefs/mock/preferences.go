package mock

import (
	"github.com/poiesic/kensaku/prefs"
)

// MockPreferences is a test double for prefs.Provider and prefs.LocaleDetector.
// It allows custom behavior injection via function fields.
type MockPreferences struct {
	// GetBoolFunc is called by GetBool if set.
	// If nil, the value set with WithBool is returned.
	GetBoolFunc func(key string) bool

	// GetIntFunc is called by GetInt if set.
	// If nil, the value set with WithInt is returned.
	GetIntFunc func(key string) int

	// Japanese is returned by IsJapaneseLocale.
	Japanese bool

	bools     map[string]bool
	ints      map[string]int
	callCount int
}

var (
	_ prefs.Provider       = (*MockPreferences)(nil)
	_ prefs.LocaleDetector = (*MockPreferences)(nil)
)

// NewMockPreferences creates a mock with no values set.
func NewMockPreferences() *MockPreferences {
	return &MockPreferences{
		bools: make(map[string]bool),
		ints:  make(map[string]int),
	}
}

// WithBool sets a boolean preference.
func (m *MockPreferences) WithBool(key string, value bool) *MockPreferences {
	m.bools[key] = value
	return m
}

// WithInt sets an integer preference.
func (m *MockPreferences) WithInt(key string, value int) *MockPreferences {
	m.ints[key] = value
	return m
}

// WithJapaneseLocale sets the locale answer.
func (m *MockPreferences) WithJapaneseLocale(japanese bool) *MockPreferences {
	m.Japanese = japanese
	return m
}

// GetBool returns a boolean preference.
func (m *MockPreferences) GetBool(key string) bool {
	m.callCount++

	if m.GetBoolFunc != nil {
		return m.GetBoolFunc(key)
	}
	return m.bools[key]
}

// GetInt returns an integer preference.
func (m *MockPreferences) GetInt(key string) int {
	m.callCount++

	if m.GetIntFunc != nil {
		return m.GetIntFunc(key)
	}
	return m.ints[key]
}

// IsJapaneseLocale returns the configured locale answer.
func (m *MockPreferences) IsJapaneseLocale() bool {
	return m.Japanese
}

// CallCount returns the number of GetBool and GetInt calls.
func (m *MockPreferences) CallCount() int {
	return m.callCount
}

// Reset clears the call counter.
func (m *MockPreferences) Reset() {
	m.callCount = 0
}
