package dto

import (
	"smeraldo/internal/domains/booking/model"
	guestModel "smeraldo/internal/domains/guest/model"
	"smeraldo/shared"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	"smeraldo/shared/failure"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        string  `json:"room_id"         validate:"required,uuid"`
	GuestFullName string  `json:"guest_full_name" validate:"required,min=1"`
	GuestPhone    *string `json:"guest_phone,omitempty"`
	GuestEmail    *string `json:"guest_email,omitempty"    validate:"omitempty,email"`
	GuestNotes    *string `json:"guest_notes,omitempty"`
	CheckInDate   string  `json:"check_in_date"   validate:"required,dateymd"`
	// Exactly one of CheckOutDate and DurationDays must be set. DurationDays
	// is the long-stay path and must be at least 30 nights.
	CheckOutDate  *string `json:"check_out_date,omitempty" validate:"omitempty,dateymd"`
	DurationDays  *int    `json:"duration_days,omitempty"  validate:"omitempty,min=30"`
	BookingSource string  `json:"booking_source"  validate:"required,oneof=agoda booking_com trip_com facebook walk_in"`
}

// Dates resolves the stay window. Long-stay bookings compute the check-out
// date from the duration; everything else requires an explicit check-out date
// after the check-in date.
func (r *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateFormat, r.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_in_date")
	}

	if r.DurationDays != nil {
		if r.CheckOutDate != nil {
			return checkIn, checkOut, failure.BadRequestFromString("provide either check_out_date or duration_days, not both")
		}

		return checkIn, checkIn.AddDate(0, 0, *r.DurationDays), nil
	}

	if r.CheckOutDate == nil {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date is required unless duration_days is set")
	}

	checkOut, err = timezone.Parse(constant.DateFormat, *r.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_out_date")
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out_date must be after check_in_date")
	}

	return checkIn, checkOut, nil
}

func (r *CreateBookingRequest) ToGuestModel(actor string) guestModel.Guest {
	return guestModel.Guest{
		ID:       uuid.NewString(),
		FullName: r.GuestFullName,
		Phone:    r.GuestPhone,
		Email:    r.GuestEmail,
		Notes:    r.GuestNotes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

func (r *CreateBookingRequest) ToModel(guestID, actor string, checkIn, checkOut time.Time) model.Booking {
	source := r.BookingSource

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        r.RoomID,
		GuestID:       guestID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		BookingSource: &source,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// CheckInRequest carries the room the receptionist is acting on and the
// guest's display name, which reception may correct at the desk.
type CheckInRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	GuestName string `json:"guest_name" validate:"required,min=1"`
}

type CheckOutRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

// RoomCheckInRequest is the body for the room-scoped check-in action. The
// room comes from the URL.
type RoomCheckInRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	GuestName string `json:"guest_name" validate:"required,min=1"`
}

type RoomCheckOutRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	GuestID       string  `json:"guest_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	NightsCount   int     `json:"nights_count"`
	BookingSource *string `json:"booking_source,omitempty"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckInDate = model.CheckInDate.Format(constant.DateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateFormat)
	r.NightsCount = model.NightsCount
	r.BookingSource = model.BookingSource
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
