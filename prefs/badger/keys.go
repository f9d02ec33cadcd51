package badger

import "strings"

// Key prefix for preference values
const preferencePrefix = "pref:"

// makePreferenceKey generates the storage key for a preference.
func makePreferenceKey(name string) []byte {
	return []byte(preferencePrefix + name)
}

// preferenceName recovers the preference name from a storage key.
func preferenceName(key []byte) string {
	return strings.TrimPrefix(string(key), preferencePrefix)
}
