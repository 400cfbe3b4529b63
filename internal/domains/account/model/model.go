package model

import "smeraldo/shared/model"

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Account is the credential row behind a staff member. The staff profile
// shares the same id; an account without a profile row cannot sign in to
// anything useful.
type Account struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	model.Metadata
}
