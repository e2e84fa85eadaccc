// Package storage defines the exports directory abstraction. Exported
// CSV/PDF files are the only artifacts the panel ever persists.
package storage

import "time"

// ExportMetadata is a lightweight listing entry for an exported file.
type ExportMetadata struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider is the interface for export file operations.
type Provider interface {
	// List returns metadata for every exported file, newest first.
	List() ([]ExportMetadata, error)
	// Read returns the raw bytes of the export with the given name.
	Read(name string) ([]byte, error)
	// Write atomically writes an export file and returns its absolute path.
	Write(name string, content []byte) (string, error)
	// Delete removes the export with the given name.
	Delete(name string) error
}
