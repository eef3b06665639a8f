package models

// Category represents a category row.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Color      string `db:"color"`
	IsArchived bool   `db:"is_archived"`
	AuditFields
}
