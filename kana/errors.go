package kana

import (
	"errors"
	"fmt"
)

var (
	// ErrUnconvertible is returned when a romaji syllable cannot be resolved.
	ErrUnconvertible = errors.New("unconvertible romaji")

	// ErrNotRomaji is returned when the input is not romaji at all.
	ErrNotRomaji = errors.New("input is not romaji")
)

// ConversionErrorKind distinguishes the ways a romaji conversion fails.
type ConversionErrorKind int

const (
	// Unconvertible means a trailing or partial syllable has no kana reading.
	Unconvertible ConversionErrorKind = iota + 1
	// NotRomaji means the input holds characters romaji never contains.
	NotRomaji
)

// ConversionError describes a failed romaji conversion.
// It unwraps to ErrUnconvertible or ErrNotRomaji.
type ConversionError struct {
	Kind   ConversionErrorKind
	Input  string
	Offset int // byte offset of the first unreadable character
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v at offset %d in %q", e.Unwrap(), e.Offset, e.Input)
}

func (e *ConversionError) Unwrap() error {
	if e.Kind == NotRomaji {
		return ErrNotRomaji
	}
	return ErrUnconvertible
}
