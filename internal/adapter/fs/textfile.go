package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"friendlyenum/internal/adapter/header"
)

type TextFiles struct{}

func NewTextFiles() *TextFiles {
	return &TextFiles{}
}

// ReadLines reads a header as text. A UTF-8 or UTF-16 byte order mark selects
// the decoding and is removed; without one the content is taken as UTF-8.
func (TextFiles) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return header.SplitLines(string(data)), nil
}

func (TextFiles) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteIfChanged replaces the file at path with content unless it already
// holds exactly those bytes. The file must exist. A symlink is followed and
// its target is replaced. It reports whether a write happened.
func (TextFiles) WriteIfChanged(path, content string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	current, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if bytes.Equal(current, []byte(content)) {
		return false, nil
	}
	if err := writeAtomic(path, []byte(content), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Chmod(f.Name(), perm); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}
