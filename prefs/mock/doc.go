// Package mock provides a test double for prefs.Provider and
// prefs.LocaleDetector.
//
// # Usage in Tests
//
//	p := mock.NewMockPreferences().
//	    WithBool(prefs.KeyWantRomajiToKana, true).
//	    WithInt(prefs.KeyRomajiKanaMode, int(prefs.RomajiKanaAlways))
//	opts := prefs.Resolve(p, p)
//
//	// Check call counts
//	count := p.CallCount()
//
// # Default Behavior
//
// Keys that were never set read as their zero value and the locale is
// reported as non-Japanese.
package mock
