package index

// FieldIndex defines the interface for snapshot indexing operations.
// Consumers should depend on this interface rather than the concrete
// *DB type to facilitate testing with mocks.
type FieldIndex interface {
	ReplaceSnapshot(itemID string, fields []Row) error
	Search(query string, limit int) ([]Row, error)
	Categories() ([]Category, error)
	Count() (int, error)
	Close() error
}

// Verify *DB satisfies FieldIndex at compile time.
var _ FieldIndex = (*DB)(nil)
