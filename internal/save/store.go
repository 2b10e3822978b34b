package save

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Load when nothing is stored under the key
var ErrNotFound = errors.New("save not found")

// ErrReservedSlot is returned by CheckSlot for keys the store uses itself
var ErrReservedSlot = errors.New("reserved save slot")

// Store keeps named blobs
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func checkKey(key string) error {
	if !keyRegex.MatchString(key) {
		return fmt.Errorf("invalid save key %q", key)
	}
	return nil
}

// CheckSlot reports whether slot can hold a game snapshot. The preferences
// key is reserved.
func CheckSlot(slot string) error {
	if slot == PreferencesKey {
		return fmt.Errorf("%w: %s", ErrReservedSlot, slot)
	}
	return checkKey(slot)
}

// FileStore writes one JSON file per key in a directory
type FileStore struct {
	Dir    string
	Logger zerolog.Logger
}

// NewFileStore creates the directory if needed
func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	return &FileStore{Dir: dir, Logger: log}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Save writes data to a temp file and renames it over the old one
func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace save: %w", err)
	}
	s.Logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("Saved")
	return nil
}

// Load reads the blob under key
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return data, nil
}

// Delete removes the blob. Deleting a missing key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

// SaveSnapshot encodes s and stores it under slot
func SaveSnapshot(ctx context.Context, store Store, slot string, s *Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	return store.Save(ctx, slot, data)
}

// LoadSnapshot reads and decodes the snapshot under slot
func LoadSnapshot(ctx context.Context, store Store, slot string) (*Snapshot, error) {
	data, err := store.Load(ctx, slot)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// SavePreferences stores p under PreferencesKey
func SavePreferences(ctx context.Context, store Store, p Preferences) error {
	data, err := EncodePreferences(p)
	if err != nil {
		return err
	}
	return store.Save(ctx, PreferencesKey, data)
}

// LoadPreferences returns stored preferences, or the defaults when none
// are stored
func LoadPreferences(ctx context.Context, store Store) (Preferences, error) {
	data, err := store.Load(ctx, PreferencesKey)
	if errors.Is(err, ErrNotFound) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return DefaultPreferences(), err
	}
	return DecodePreferences(data)
}
