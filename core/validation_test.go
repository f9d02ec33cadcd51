package core

import (
	"errors"
	"testing"
)

func TestValidateAtom(t *testing.T) {
	tests := []struct {
		name    string
		atom    *Atom
		wantErr error
	}{
		{
			name:    "valid atom",
			atom:    &Atom{Index: 0, Text: "犬"},
			wantErr: nil,
		},
		{
			name:    "valid filter atom",
			atom:    &Atom{Index: 2, Text: "S7", Filter: FilterStrokes},
			wantErr: nil,
		},
		{
			name:    "nil atom",
			atom:    nil,
			wantErr: ErrInvalidAtom,
		},
		{
			name:    "empty text",
			atom:    &Atom{Index: 0, Text: ""},
			wantErr: ErrEmptyAtom,
		},
		{
			name:    "whitespace text",
			atom:    &Atom{Index: 0, Text: "  \t"},
			wantErr: ErrEmptyAtom,
		},
		{
			name:    "negative index",
			atom:    &Atom{Index: -1, Text: "cat"},
			wantErr: ErrNegativeAtomIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAtom(tt.atom)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAtom() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateAtom() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAtom() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEnums(t *testing.T) {
	for _, s := range Styles {
		if err := ValidateStyle(s); err != nil {
			t.Errorf("ValidateStyle(%v) error = %v", s, err)
		}
	}
	if err := ValidateStyle(Style(7)); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("ValidateStyle(7) error = %v, want %v", err, ErrInvalidStyle)
	}

	for _, tier := range Tiers {
		if err := ValidateTier(tier); err != nil {
			t.Errorf("ValidateTier(%v) error = %v", tier, err)
		}
	}
	if err := ValidateTier(Tier(-1)); !errors.Is(err, ErrInvalidTier) {
		t.Errorf("ValidateTier(-1) error = %v, want %v", err, ErrInvalidTier)
	}

	for _, c := range ScriptClasses {
		if err := ValidateScriptClass(c); err != nil {
			t.Errorf("ValidateScriptClass(%v) error = %v", c, err)
		}
	}
	if err := ValidateScriptClass(ScriptClass(4)); !errors.Is(err, ErrInvalidScriptClass) {
		t.Errorf("ValidateScriptClass(4) error = %v, want %v", err, ErrInvalidScriptClass)
	}
}
