package incremental

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// storeSchemaVersion is bumped when the persisted entry format changes.
const storeSchemaVersion uint16 = 1

// ErrSchemaMismatch is returned by DiskStore.Get for entries written by
// another schema version.
var ErrSchemaMismatch = errors.New("cache entry schema mismatch")

// Store persists step values between host sessions.
type Store interface {
	// Get decodes the value stored under key into out. It returns false
	// when nothing is stored.
	Get(key string, out any) (bool, error)
	// Put stores v under key, replacing any previous value.
	Put(key string, v any) error
}

// MemoryStore keeps encoded values in memory. Stored values never alias
// the caller's.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

// Put implements Store.
func (s *MemoryStore) Put(key string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	s.items[key] = data
	s.mu.Unlock()

	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// DiskStore keeps msgpack-encoded values as files in a directory.
// Thread-safe for concurrent access.
type DiskStore struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskStore creates the directory if needed and returns a store on it.
func OpenDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open disk store: %w", err)
	}

	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) pathFor(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".mp")
}

// Put implements Store. The file is replaced atomically.
func (s *DiskStore) Put(key string, v any) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(key)

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		// the temp file is gone after a successful rename
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err = enc.EncodeUint16(storeSchemaVersion); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = enc.Encode(v); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), p)
}

// Get implements Store.
func (s *DiskStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)

	schema, err := dec.DecodeUint16()
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	if schema != storeSchemaVersion {
		return false, fmt.Errorf("%w: %s has version %d", ErrSchemaMismatch, key, schema)
	}

	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}
