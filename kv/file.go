package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a single JSON object file, one property per key.
//
// The file is read on every Get so that writes from other processes are
// visible. Writes go to a temporary file renamed over the original.
type File struct {
	Notifier
	mu   sync.Mutex
	path string
}

// OpenFile returns the store at path. The file is created on first Set.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("kv.OpenFile: empty path")
	}
	f := &File{path: path}
	// fail early on a malformed file.
	if _, err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) load() (map[string]json.RawMessage, error) {
	content, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read store file %q: %w", f.path, err)
	}
	values := map[string]json.RawMessage{}
	if len(content) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", f.path, err)
	}
	return values, nil
}

func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := values[key]
	return []byte(v), ok, nil
}

func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("could not set %q: value is not valid json", key)
	}
	if err := f.write(key, value); err != nil {
		return err
	}
	f.Notify(key, value)
	return nil
}

func (f *File) write(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = json.RawMessage(value)
	content, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode store file: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary store file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(append(content, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", f.path, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
