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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidStyle indicates an unknown compilation style.
	ErrInvalidStyle = errors.New("invalid compilation style")

	// ErrInvalidTier indicates an unknown relevance tier.
	ErrInvalidTier = errors.New("invalid relevance tier")

	// ErrInvalidScriptClass indicates an unknown script class.
	ErrInvalidScriptClass = errors.New("invalid script class")

	// ErrInvalidAtom indicates an Atom failed validation.
	ErrInvalidAtom = errors.New("invalid atom")

	// ErrEmptyAtom indicates the atom Text field is empty.
	ErrEmptyAtom = errors.New("atom text cannot be empty")

	// ErrNegativeAtomIndex indicates an atom carries a negative position.
	ErrNegativeAtomIndex = errors.New("atom index cannot be negative")
)
