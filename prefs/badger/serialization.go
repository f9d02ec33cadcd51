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


package badger

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/kensaku/prefs"
)

// marshalBool serializes a boolean preference with its kind tag.
func marshalBool(v bool) []byte {
	kind := int(prefs.BoolKey)
	buf := make([]byte, varint.Int.Size(kind)+ord.Bool.Size(v))
	n := varint.Int.Marshal(kind, buf)
	ord.Bool.Marshal(v, buf[n:])
	return buf
}

// marshalInt serializes an integer preference with its kind tag.
func marshalInt(v int) []byte {
	kind := int(prefs.IntKey)
	buf := make([]byte, varint.Int.Size(kind)+varint.Int.Size(v))
	n := varint.Int.Marshal(kind, buf)
	varint.Int.Marshal(v, buf[n:])
	return buf
}

// unmarshalKind reads the kind tag and returns the remaining payload.
func unmarshalKind(data []byte) (prefs.KeyKind, []byte, error) {
	kind, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrCorruptValue, err)
	}
	return prefs.KeyKind(kind), data[n:], nil
}

// unmarshalBool deserializes a boolean preference.
func unmarshalBool(data []byte) (bool, error) {
	kind, payload, err := unmarshalKind(data)
	if err != nil {
		return false, err
	}
	if kind != prefs.BoolKey {
		return false, fmt.Errorf("%w: stored kind %d, want bool", ErrKindMismatch, kind)
	}
	v, _, err := ord.Bool.Unmarshal(payload)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCorruptValue, err)
	}
	return v, nil
}

// unmarshalInt deserializes an integer preference.
func unmarshalInt(data []byte) (int, error) {
	kind, payload, err := unmarshalKind(data)
	if err != nil {
		return 0, err
	}
	if kind != prefs.IntKey {
		return 0, fmt.Errorf("%w: stored kind %d, want int", ErrKindMismatch, kind)
	}
	v, _, err := varint.Int.Unmarshal(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorruptValue, err)
	}
	return v, nil
}
