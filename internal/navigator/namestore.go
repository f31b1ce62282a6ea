package navigator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NameKey is the file name the display name is stored under.
const NameKey = "bjjUserName"

type FileNameStore struct {
	path string
}

func NewFileNameStore(path string) *FileNameStore {
	return &FileNameStore{path: path}
}

// DefaultNamePath is <user config dir>/nogi-trainer/bjjUserName.
func DefaultNamePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "nogi-trainer", NameKey), nil
}

func (f *FileNameStore) Path() string { return f.path }

// Load returns "" when nothing has been saved yet.
func (f *FileNameStore) Load() (string, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *FileNameStore) Save(name string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(f.path), err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(name+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename %s: %w", f.path, err)
	}
	return nil
}
