package storage

import (
	"errors"
	"testing"

	"github.com/starford/fehu/internal/apperr"
)

func TestWriteReadDelete(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	path, err := fs.Write("item_details_2026-08-28.csv", []byte("Field Name,Field Value,Field Type\n"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}

	got, err := fs.Read("item_details_2026-08-28.csv")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "Field Name,Field Value,Field Type\n" {
		t.Fatalf("unexpected content: %q", got)
	}

	if err := fs.Delete("item_details_2026-08-28.csv"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := fs.Read("item_details_2026-08-28.csv"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListSkipsHiddenFiles(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	if _, err := fs.Write("a.csv", []byte("a")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := fs.Write("b.pdf", []byte("b")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	list, err := fs.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	for _, m := range list {
		if m.Size == 0 {
			t.Fatalf("expected non-zero size for %s", m.Name)
		}
	}
}

func TestRejectsPathTraversal(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	for _, name := range []string{"", ".", "..", "../escape.csv", "sub/file.csv"} {
		if _, err := fs.Write(name, []byte("x")); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Write(%q): expected rejection, got %v", name, err)
		}
		if _, err := fs.Read(name); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Read(%q): expected rejection, got %v", name, err)
		}
	}
}

func TestReadMissingExport(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	if _, err := fs.Read("nope.csv"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
