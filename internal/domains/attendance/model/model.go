package model

import (
	"smeraldo/shared/model"
	"time"
)

const (
	TableName  = "attendance_logs"
	EntityName = "attendance_log"

	FieldID         = "id"
	FieldStaffID    = "staff_id"
	FieldLogDate    = "log_date"
	FieldShiftValue = "shift_value"
	FieldLoggedBy   = "logged_by"
)

// ShiftValues are the four half-day quanta a shift can be logged as.
var ShiftValues = []float64{0, 0.5, 1, 1.5}

// AttendanceLog is one row per (staff, date), upserted on conflict.
type AttendanceLog struct {
	ID         string    `db:"id"`
	StaffID    string    `db:"staff_id"`
	LogDate    time.Time `db:"log_date"`
	ShiftValue float64   `db:"shift_value"`
	LoggedBy   string    `db:"logged_by"`
	model.Metadata
}
