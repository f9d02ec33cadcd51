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


// Package query turns raw dictionary queries into compiled matcher tables.
//
// The Cache runs the full compilation pipeline:
//   - normalization and atom tokenization (KanjiDict filters first)
//   - script classification of every atom
//   - pattern building per relevance tier
//   - matcher compilation into a table
//
// One slot is kept per compilation style. Asking again for the raw query a
// slot already holds returns the stored table without running any stage.
// A Cache is not safe for concurrent use; callers synchronize.
package query
