package prefs

import "errors"

var (
	// ErrUnknownKey is returned for a preference key that is not defined.
	ErrUnknownKey = errors.New("unknown preference key")

	// ErrInvalidRomajiKanaMode is returned for a mode outside 0..2.
	ErrInvalidRomajiKanaMode = errors.New("invalid romaji-kana mode")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid preferences config")
)
