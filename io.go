package envfile

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem abstracts the whole-file reads and writes the library
// delegates its I/O to. Both operations are synchronous and fully
// buffered; there is no streaming.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFileSystem reads and writes through the operating system. Writes are
// atomic: data goes to a temp file in the target directory which is then
// renamed over the target.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFileSystem) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	tempPath, err := tempFileName(path)
	if err != nil {
		return err
	}

	var tempCreated bool
	defer func() {
		if tempCreated {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return err
	}
	tempCreated = true

	if err := os.Rename(tempPath, path); err != nil {
		return err
	}
	tempCreated = false
	return nil
}

// tempFileName generates a unique sibling name so the rename stays on one
// filesystem. Format: path + ".tmp." + randomHex.
func tempFileName(path string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return path + ".tmp." + hex.EncodeToString(randomBytes), nil
}

// Load reads an env file from the operating system and parses it.
func Load(path string, opts Options) (*Environment, error) {
	return LoadFrom(OSFileSystem{}, path, opts)
}

// LoadFrom reads an env file through the given collaborator and parses it.
func LoadFrom(fsys FileSystem, path string, opts Options) (*Environment, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	env, err := ParseEnvironment(string(data), opts)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return env, nil
}

// Save serializes the store and writes it to the operating system.
func (e *Environment) Save(path string) error {
	return e.SaveTo(OSFileSystem{}, path)
}

// SaveTo serializes the store and writes it through the given collaborator.
func (e *Environment) SaveTo(fsys FileSystem, path string) error {
	if err := fsys.WriteFile(path, []byte(e.Serialize())); err != nil {
		return fmt.Errorf("write env file %s: %w", path, err)
	}
	return nil
}
