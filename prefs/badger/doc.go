// Package badger persists preference values in BadgerDB.
//
// Values are stored one key per preference, encoded with mus-go and tagged
// with their kind so a boolean is never read back as an integer. A Store is
// a prefs.Provider: keys that were never set fall back to another Provider,
// usually the loaded prefs.Config.
package badger
