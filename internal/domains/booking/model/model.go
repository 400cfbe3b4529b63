package model

import (
	"slices"
	"smeraldo/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldGuestID       = "guest_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldNightsCount   = "nights_count"
	FieldBookingSource = "booking_source"
	FieldStatus        = "status"
)

// Booking lifecycle: confirmed -> checked_in -> checked_out, or
// confirmed -> cancelled.
const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	SourceAgoda      = "agoda"
	SourceBookingCom = "booking_com"
	SourceTripCom    = "trip_com"
	SourceFacebook   = "facebook"
	SourceWalkIn     = "walk_in"
)

var Sources = []string{SourceAgoda, SourceBookingCom, SourceTripCom, SourceFacebook, SourceWalkIn}

func ValidSource(source string) bool {
	return slices.Contains(Sources, source)
}

// LongStayMinNights is the threshold at which a booking may be created from a
// duration instead of an explicit check-out date.
const LongStayMinNights = 30

// Booking references the room and the per-stay guest row. NightsCount is
// computed by the store from the two dates and is never written by this
// system.
type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	GuestID       string    `db:"guest_id"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	NightsCount   int       `db:"nights_count" generated:"true"`
	BookingSource *string   `db:"booking_source"`
	Status        string    `db:"status"`
	model.Metadata
}
