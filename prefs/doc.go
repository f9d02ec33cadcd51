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


// Package prefs resolves user preferences into transliteration options.
//
// A Provider answers boolean and integer preference lookups by key. Config
// is the file/environment backed Provider; prefs/badger persists values set
// at runtime and falls back to a Config for everything else.
//
// Resolve combines a Provider with a LocaleDetector to decide which
// transliterated variants the pattern builder adds:
//
//	opts := prefs.Resolve(cfg, prefs.NewEnvLocale())
package prefs
