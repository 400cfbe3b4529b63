package model

import "smeraldo/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldNotes    = "notes"
)

// Guest is created per booking; no dedup across stays.
type Guest struct {
	ID       string  `db:"id"`
	FullName string  `db:"full_name"`
	Phone    *string `db:"phone"`
	Email    *string `db:"email"`
	Notes    *string `db:"notes"`
	model.Metadata
}
