package model

import "time"

const (
	StatusLogTableName  = "room_status_logs"
	StatusLogEntityName = "room_status_log"

	StatusLogFieldID             = "id"
	StatusLogFieldRoomID         = "room_id"
	StatusLogFieldPreviousStatus = "previous_status"
	StatusLogFieldNewStatus      = "new_status"
	StatusLogFieldChangedBy      = "changed_by"
	StatusLogFieldChangedAt      = "changed_at"
	StatusLogFieldNotes          = "notes"
)

// StatusLog is the append-only audit row written alongside every room status
// mutation. Rows are never updated or deleted.
type StatusLog struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	PreviousStatus *string   `db:"previous_status"`
	NewStatus      string    `db:"new_status"`
	ChangedBy      string    `db:"changed_by"`
	ChangedAt      time.Time `db:"changed_at"`
	Notes          *string   `db:"notes"`
}
