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

import (
	"fmt"
	"strings"
)

// ValidateAtom validates an Atom according to domain rules.
//
// Validation rules:
//   - Text must not be empty or whitespace only
//   - Index must not be negative
//
// NOT validated:
//   - Filter (any FilterKind is accepted, unknown kinds build no filter pattern)
func ValidateAtom(atom *Atom) error {
	if atom == nil {
		return fmt.Errorf("%w: atom is nil", ErrInvalidAtom)
	}

	if strings.TrimSpace(atom.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAtom, ErrEmptyAtom)
	}

	if atom.Index < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAtom, ErrNegativeAtomIndex)
	}

	return nil
}

// ValidateStyle validates that a Style has a defined value.
func ValidateStyle(style Style) error {
	if style < Edict || style > ExampleDict {
		return fmt.Errorf("%w: value %d", ErrInvalidStyle, style)
	}
	return nil
}

// ValidateTier validates that a Tier has a defined value.
func ValidateTier(tier Tier) error {
	if tier < Exists || tier > Medium {
		return fmt.Errorf("%w: value %d", ErrInvalidTier, tier)
	}
	return nil
}

// ValidateScriptClass validates that a ScriptClass has a defined value.
func ValidateScriptClass(class ScriptClass) error {
	if class < Kanji || class > Mixed {
		return fmt.Errorf("%w: value %d", ErrInvalidScriptClass, class)
	}
	return nil
}
