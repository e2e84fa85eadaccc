package index

import "fmt"

// Row represents one indexed field of the current snapshot.
type Row struct {
	FieldID  string
	Title    string
	Text     string
	Type     string
	Category string
	Position int
}

// Category is one display group with its field count, ordered by first
// appearance in the snapshot.
type Category struct {
	Name  string
	Count int
}

// ReplaceSnapshot swaps the indexed fields wholesale inside a single
// transaction, mirroring how the item snapshot itself is replaced.
func (db *DB) ReplaceSnapshot(itemID string, fields []Row) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if _, err := tx.Exec(`DELETE FROM fields`); err != nil {
		return fmt.Errorf("index: clear fields: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fields (item_id, field_id, title, text, type, category, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("index: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range fields {
		if _, err := stmt.Exec(itemID, f.FieldID, f.Title, f.Text, f.Type, f.Category, i); err != nil {
			return fmt.Errorf("index: insert field: %w", err)
		}
	}

	return tx.Commit()
}

// Search returns fields whose title or text contains the query,
// case-insensitively, in snapshot order.
func (db *DB) Search(query string, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 100
	}
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT field_id, title, text, type, category, position
		FROM fields
		WHERE title LIKE ? OR text LIKE ?
		ORDER BY position
		LIMIT ?
	`, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.FieldID, &r.Title, &r.Text, &r.Type, &r.Category, &r.Position); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Categories returns each category with its field count, ordered by
// the position of the category's first field.
func (db *DB) Categories() ([]Category, error) {
	rows, err := db.conn.Query(`
		SELECT category, COUNT(*)
		FROM fields
		GROUP BY category
		ORDER BY MIN(position)
	`)
	if err != nil {
		return nil, fmt.Errorf("index: categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the number of indexed fields.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM fields`).Scan(&n); err != nil {
		return 0, fmt.Errorf("index: count: %w", err)
	}
	return n, nil
}
