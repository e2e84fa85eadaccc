// Package field defines the board item domain model and the per-type
// value codec that translates between host JSON payloads and
// display/write representations.
package field

// Type identifies the kind of a board column.
type Type string

const (
	TypeText        Type = "text"
	TypeLongText    Type = "long-text"
	TypeStatus      Type = "status"
	TypeDate        Type = "date"
	TypePeople      Type = "people"
	TypeNumbers     Type = "numbers"
	TypeDropdown    Type = "dropdown"
	TypeTimeline    Type = "timeline"
	TypeTags        Type = "tags"
	TypeLink        Type = "link"
	TypeEmail       Type = "email"
	TypePhone       Type = "phone"
	TypeCheckbox    Type = "checkbox"
	TypeRating      Type = "rating"
	TypeColor       Type = "color"
	TypeLocation    Type = "location"
	TypeCountry     Type = "country"
	TypeProgress    Type = "progress"
	TypeFormula     Type = "formula"
	TypeAutoNumber  Type = "auto-number"
	TypeCreationLog Type = "creation-log"
	TypeLastUpdated Type = "last-updated"
	TypeFile        Type = "file"
	TypeDependency  Type = "dependency"
	TypeMirror      Type = "mirror"
	TypeBoardRel    Type = "board-relation"
)

// Field is one named, typed column value of a board item.
// Text is the host-produced plain rendering and is always present
// (possibly empty). Value is the raw type-specific JSON payload, or
// empty when the host supplied none. Category is a display grouping
// label only, never authoritative data.
type Field struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     Type   `json:"type"`
	Text     string `json:"text"`
	Value    string `json:"value,omitempty"`
	Category string `json:"category"`
}

// Board is the owning board reference of an item.
type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is one complete snapshot of a board item. Fields keep the host
// column order. A snapshot is always replaced wholesale, never merged.
type Item struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Board  Board   `json:"board"`
	Fields []Field `json:"fields"`
}

// FieldByID returns the field with the given id, or nil.
func (it *Item) FieldByID(id string) *Field {
	for i := range it.Fields {
		if it.Fields[i].ID == id {
			return &it.Fields[i]
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand snapshots out without
// exposing internal state to mutation.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	cp := *it
	cp.Fields = make([]Field, len(it.Fields))
	copy(cp.Fields, it.Fields)
	return &cp
}
