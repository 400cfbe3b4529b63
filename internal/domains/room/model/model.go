package model

import (
	"slices"
	"smeraldo/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID               = "id"
	FieldRoomNumber       = "room_number"
	FieldFloor            = "floor"
	FieldRoomType         = "room_type"
	FieldStatus           = "status"
	FieldCurrentGuestName = "current_guest_name"
)

// Room statuses. The working cycle is available -> occupied -> being_cleaned
// -> ready -> available. checking_out_today is informational and reachable
// only through a manual override.
const (
	StatusAvailable        = "available"
	StatusOccupied         = "occupied"
	StatusCheckingOutToday = "checking_out_today"
	StatusBeingCleaned     = "being_cleaned"
	StatusReady            = "ready"
)

var Statuses = []string{
	StatusAvailable,
	StatusOccupied,
	StatusCheckingOutToday,
	StatusBeingCleaned,
	StatusReady,
}

func ValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

// Room is one sellable hotel room. CurrentGuestName is set only while the
// room is occupied and cleared on every other transition.
type Room struct {
	ID               string  `db:"id"`
	RoomNumber       string  `db:"room_number"`
	Floor            int     `db:"floor"`
	RoomType         string  `db:"room_type"`
	Status           string  `db:"status"`
	CurrentGuestName *string `db:"current_guest_name"`
	model.Metadata
}
