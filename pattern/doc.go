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


// Package pattern builds the tiered regular expression sources for one atom.
//
// Every atom yields four sources, one per relevance tier:
//   - Exists and Locate share the base pattern
//   - High anchors the base to a whole dictionary field
//   - Medium binds the base to word boundaries (romaji and mixed text) or
//     reuses the base (kanji and kana)
//
// Field anchors depend on the dictionary format, so Build takes the
// compilation style. Atom text is used as regular expression syntax as typed;
// only generated parts are escaped. Building never fails, compile errors from
// malformed user syntax surface in the matcher package.
package pattern
