// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package script decides which writing system a query fragment is written in.
//
// Classification is mutually exclusive and checked in a fixed order:
//   - Kanji: pure ideographs, or kanji-ish text mixing ideographs with kana,
//     numerals and search punctuation
//   - Furigana: hiragana and katakana only
//   - Romaji: ASCII letters, optionally with internal spaces
//   - Mixed: everything else, including the empty string
//
// All functions are pure and safe for concurrent use.
package script
