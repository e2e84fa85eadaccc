// Package export renders an item snapshot to downloadable CSV and PDF
// documents.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/starford/fehu/internal/apperr"
	"github.com/starford/fehu/internal/itemservice"
)

// Filename builds the download name for an export. Spaces in the item
// name become underscores and the current date is appended.
func Filename(itemName, ext string) string {
	name := strings.ReplaceAll(itemName, " ", "_")
	if name == "" {
		name = "item"
	}
	return fmt.Sprintf("%s_details_%s.%s", name, time.Now().Format("2006-01-02"), ext)
}

// CSV renders every field, one row per field, groups in snapshot order.
// Read-only fields are included; export is a view, not an edit. The
// value column carries the host's plain text, not the panel rendering,
// so empty fields export empty instead of a placeholder glyph.
func CSV(groups []itemservice.Group) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Field Name", "Field Value", "Field Type"}); err != nil {
		return nil, fmt.Errorf("%w: csv header: %v", apperr.ErrExport, err)
	}
	for _, g := range groups {
		for _, f := range g.Fields {
			if err := w.Write([]string{f.Title, f.Text, string(f.Type)}); err != nil {
				return nil, fmt.Errorf("%w: csv row %q: %v", apperr.ErrExport, f.Title, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: csv flush: %v", apperr.ErrExport, err)
	}
	return buf.Bytes(), nil
}
