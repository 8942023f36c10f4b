package domain

// TagID uniquely identifies a tag.
type TagID int64

// Tag labels recipes (e.g. breakfast, lunch). Tags are managed by operators
// and are read-only through the API.
type Tag struct {
	ID    TagID
	Name  string
	Color string
	Slug  string
}
