package model

import "time"

// Metadata carries the audit columns shared by every mutable table. Append-only
// tables (room_status_logs, stock_movements) do not embed it.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}
