package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/fehu/internal/apperr"
)

// FS stores exports as plain files under a single directory.
type FS struct {
	dir string
}

// NewFS creates the exports directory if needed and returns a provider
// rooted at it.
func NewFS(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve exports dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create exports dir: %w", err)
	}
	return &FS{dir: abs}, nil
}

// Dir returns the absolute path of the exports directory.
func (f *FS) Dir() string { return f.dir }

// safePath rejects names that would escape the exports directory.
func (f *FS) safePath(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, os.PathSeparator) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid export name %q: %w", name, apperr.ErrNotFound)
	}
	p := filepath.Join(f.dir, name)
	if filepath.Dir(p) != f.dir {
		return "", fmt.Errorf("invalid export name %q: %w", name, apperr.ErrNotFound)
	}
	return p, nil
}

func (f *FS) List() ([]ExportMetadata, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("read exports dir: %w", err)
	}
	out := make([]ExportMetadata, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, ExportMetadata{
			Name:      e.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *FS) Read(name string) ([]byte, error) {
	p, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("export %q: %w", name, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("read export %q: %w", name, err)
	}
	return b, nil
}

// Write writes to a temp file first and renames it into place so readers
// never observe a partial export.
func (f *FS) Write(name string, content []byte) (string, error) {
	p, err := f.safePath(name)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(f.dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create temp export: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export %q: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("sync export %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export %q: %w", name, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return "", fmt.Errorf("rename export %q: %w", name, err)
	}
	return p, nil
}

func (f *FS) Delete(name string) error {
	p, err := f.safePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("export %q: %w", name, apperr.ErrNotFound)
		}
		return fmt.Errorf("delete export %q: %w", name, err)
	}
	return nil
}

var _ Provider = (*FS)(nil)
