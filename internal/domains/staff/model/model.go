package model

import "smeraldo/shared/model"

const (
	TableName  = "staff_members"
	EntityName = "staff_member"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldRole     = "role"
	FieldIsActive = "is_active"
)

// StaffMember is the front-desk profile behind an account. The id matches the
// account id. Staff are never hard-deleted, only deactivated.
type StaffMember struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
	model.Metadata
}
