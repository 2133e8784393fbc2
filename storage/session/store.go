package sessionstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/ylearn/ylearn/core/user"
)

// Key is the fixed storage key the logged-in user record lives under,
// matching the original dashboard's local-storage key.
const Key = "ylearn-user"

// FileStore persists the single session record as a small JSON document on
// disk: written on login/role-switch, removed on logout.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ user.SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return user.User{}, user.ErrNoSession
		}
		return user.User{}, errors.Wrap(err, "reading session file")
	}

	var records map[string]user.User
	if err := json.Unmarshal(data, &records); err != nil {
		return user.User{}, errors.Wrap(err, "decoding session file")
	}
	usr, ok := records[Key]
	if !ok {
		return user.User{}, user.ErrNoSession
	}
	return usr, nil
}

func (s *FileStore) Save(usr user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(map[string]user.User{Key: usr}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding session record")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	return errors.Wrap(os.WriteFile(s.path, data, 0o600), "writing session file")
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
