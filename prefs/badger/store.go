package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/kensaku/prefs"
)

// Entry is one stored preference.
type Entry struct {
	Key  string
	Kind prefs.KeyKind
	Bool bool
	Int  int
}

// String formats the stored value.
func (e Entry) String() string {
	if e.Kind == prefs.BoolKey {
		return fmt.Sprintf("%s=%t", e.Key, e.Bool)
	}
	return fmt.Sprintf("%s=%d", e.Key, e.Int)
}

// Store persists preferences and implements prefs.Provider.
type Store struct {
	backend  *Backend
	fallback prefs.Provider
	logger   *slog.Logger
}

var _ prefs.Provider = (*Store)(nil)

// NewStore creates a store over backend. Lookups of unset keys are answered
// by fallback, which defaults to prefs.DefaultConfig().
func NewStore(backend *Backend, fallback prefs.Provider) (*Store, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	if fallback == nil {
		fallback = prefs.DefaultConfig()
	}
	return &Store{
		backend:  backend,
		fallback: fallback,
		logger:   backend.logger,
	}, nil
}

func checkKind(key string, want prefs.KeyKind) error {
	kind, err := prefs.KindOf(key)
	if err != nil {
		return err
	}
	if kind != want {
		return fmt.Errorf("%w: %q", ErrKindMismatch, key)
	}
	return nil
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makePreferenceKey(key), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// get returns the raw value for key, or nil when the key was never set.
func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePreferenceKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	}, false)
	return value, err
}

// SetBool stores a boolean preference.
func (s *Store) SetBool(ctx context.Context, key string, value bool) error {
	if err := checkKind(key, prefs.BoolKey); err != nil {
		return err
	}
	return s.set(ctx, key, marshalBool(value))
}

// SetInt stores an integer preference.
func (s *Store) SetInt(ctx context.Context, key string, value int) error {
	if err := checkKind(key, prefs.IntKey); err != nil {
		return err
	}
	if key == prefs.KeyRomajiKanaMode && !prefs.RomajiKanaMode(value).Valid() {
		return fmt.Errorf("%w: %d", prefs.ErrInvalidRomajiKanaMode, value)
	}
	return s.set(ctx, key, marshalInt(value))
}

// LookupBool returns a stored boolean. found is false when the key was never set.
func (s *Store) LookupBool(ctx context.Context, key string) (value bool, found bool, err error) {
	if err := checkKind(key, prefs.BoolKey); err != nil {
		return false, false, err
	}
	raw, err := s.get(ctx, key)
	if err != nil || raw == nil {
		return false, false, err
	}
	value, err = unmarshalBool(raw)
	return value, err == nil, err
}

// LookupInt returns a stored integer. found is false when the key was never set.
func (s *Store) LookupInt(ctx context.Context, key string) (value int, found bool, err error) {
	if err := checkKind(key, prefs.IntKey); err != nil {
		return 0, false, err
	}
	raw, err := s.get(ctx, key)
	if err != nil || raw == nil {
		return 0, false, err
	}
	value, err = unmarshalInt(raw)
	return value, err == nil, err
}

// Delete removes a stored preference so lookups fall back again.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := prefs.KindOf(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makePreferenceKey(key)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// List returns every stored preference in key order.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(preferencePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := iter.Item()
			entry := Entry{Key: preferenceName(item.Key())}
			err := item.Value(func(val []byte) error {
				kind, _, err := unmarshalKind(val)
				if err != nil {
					return err
				}
				entry.Kind = kind
				switch kind {
				case prefs.BoolKey:
					entry.Bool, err = unmarshalBool(val)
				case prefs.IntKey:
					entry.Int, err = unmarshalInt(val)
				default:
					err = fmt.Errorf("%w: kind %d", ErrCorruptValue, kind)
				}
				return err
			})
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Key, err)
			}
			entries = append(entries, entry)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetBool returns the stored boolean or the fallback's answer.
func (s *Store) GetBool(key string) bool {
	value, found, err := s.LookupBool(context.Background(), key)
	if err != nil {
		s.logger.Warn("error reading preference, using fallback", "key", key, "err", err)
	}
	if !found {
		return s.fallback.GetBool(key)
	}
	return value
}

// GetInt returns the stored integer or the fallback's answer.
func (s *Store) GetInt(key string) int {
	value, found, err := s.LookupInt(context.Background(), key)
	if err != nil {
		s.logger.Warn("error reading preference, using fallback", "key", key, "err", err)
	}
	if !found {
		return s.fallback.GetInt(key)
	}
	return value
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
