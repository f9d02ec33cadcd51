// Package kana converts between the Japanese phonetic scripts.
//
// Hiragana and katakana occupy parallel Unicode blocks, so conversion between
// them is a fixed code-point shift that never fails. Romaji conversion is
// table driven and reports a *ConversionError when the input cannot be read
// as a sequence of syllables.
package kana
