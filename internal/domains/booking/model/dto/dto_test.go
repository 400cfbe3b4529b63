package dto_test

import (
	"testing"

	"smeraldo/internal/domains/booking/model"
	"smeraldo/internal/domains/booking/model/dto"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/timezone"
	"smeraldo/shared/validator"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestCreateBookingRequest_Dates(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateBookingRequest
		wantErr      bool
		wantCheckOut string
	}{
		{
			name: "explicit check-out date",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2026-01-10",
				CheckOutDate: strPtr("2026-01-12"),
			},
			wantErr:      false,
			wantCheckOut: "2026-01-12",
		},
		{
			name: "long stay derives check-out from duration",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2026-01-10",
				DurationDays: intPtr(30),
			},
			wantErr:      false,
			wantCheckOut: "2026-02-09",
		},
		{
			name: "both check-out and duration set",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2026-01-10",
				CheckOutDate: strPtr("2026-01-12"),
				DurationDays: intPtr(30),
			},
			wantErr: true,
		},
		{
			name: "neither check-out nor duration set",
			req: dto.CreateBookingRequest{
				CheckInDate: "2026-01-10",
			},
			wantErr: true,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2026-01-10",
				CheckOutDate: strPtr("2026-01-10"),
			},
			wantErr: true,
		},
		{
			name: "invalid check-in date",
			req: dto.CreateBookingRequest{
				CheckInDate:  "10-01-2026",
				CheckOutDate: strPtr("2026-01-12"),
			},
			wantErr: true,
		},
		{
			name: "invalid check-out date",
			req: dto.CreateBookingRequest{
				CheckInDate:  "2026-01-10",
				CheckOutDate: strPtr("someday"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, checkOut, err := tt.req.Dates()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.CheckInDate, checkIn.Format("2006-01-02"))
			assert.Equal(t, tt.wantCheckOut, checkOut.Format("2006-01-02"))
		})
	}
}

func TestCreateBookingRequest_ToGuestModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestFullName: "Nguyen Van A",
		GuestPhone:    strPtr("+84901234567"),
		GuestEmail:    strPtr("guest@example.com"),
	}

	guest := req.ToGuestModel("test-user-id")

	assert.NotEmpty(t, guest.ID, "expected ID to be generated")
	assert.Equal(t, req.GuestFullName, guest.FullName)
	assert.Equal(t, req.GuestPhone, guest.Phone)
	assert.Equal(t, req.GuestEmail, guest.Email)
	assert.Equal(t, "test-user-id", guest.CreatedBy)
	assert.False(t, guest.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:        "room-id",
		GuestFullName: "Nguyen Van A",
		CheckInDate:   "2026-01-10",
		CheckOutDate:  strPtr("2026-01-12"),
		BookingSource: model.SourceWalkIn,
	}

	checkIn, checkOut, err := req.Dates()
	assert.NoError(t, err)

	booking := req.ToModel("guest-id", "test-user-id", checkIn, checkOut)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, "guest-id", booking.GuestID)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.NotNil(t, booking.BookingSource)
	assert.Equal(t, model.SourceWalkIn, *booking.BookingSource)
	assert.Equal(t, "test-user-id", booking.CreatedBy)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	source := model.SourceAgoda
	checkIn, _ := timezone.Parse("2006-01-02", "2026-01-10")
	checkOut, _ := timezone.Parse("2006-01-02", "2026-01-12")

	bookingModel := model.Booking{
		ID:            "test-id",
		RoomID:        "room-id",
		GuestID:       "guest-id",
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NightsCount:   2,
		BookingSource: &source,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, "2026-01-10", response.CheckInDate)
	assert.Equal(t, "2026-01-12", response.CheckOutDate)
	assert.Equal(t, 2, response.NightsCount)
	assert.Equal(t, &source, response.BookingSource)
	assert.Equal(t, model.StatusConfirmed, response.Status)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
}

func TestCreateBookingRequest_DurationValidation(t *testing.T) {
	base := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			RoomID:        "5f0c2e5a-9c1b-4c51-8f0e-2f4f3a6a1b2c",
			GuestFullName: "Nguyen Van A",
			CheckInDate:   "2026-01-10",
			BookingSource: "walk_in",
		}
	}

	tests := []struct {
		name     string
		duration int
		wantErr  bool
	}{
		{"twenty-nine nights rejected", 29, true},
		{"thirty nights accepted", 30, false},
		{"one night rejected", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			req.DurationDays = intPtr(tt.duration)

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
