package dto

import (
	"smeraldo/internal/domains/room/model"
	"smeraldo/shared"
	gDto "smeraldo/shared/dto"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,min=1"`
	Floor      int    `json:"floor"       validate:"required,min=1"`
	RoomType   string `json:"room_type"   validate:"required,min=1"`
}

func (r *CreateRoomRequest) ToModel(actor string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
		RoomType:   r.RoomType,
		Status:     model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// OverrideStatusRequest forces a room into any status for manual correction.
type OverrideStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=available occupied checking_out_today being_cleaned ready"`
	Notes  *string `json:"notes,omitempty"`
}

type RoomResponse struct {
	ID               string  `json:"id"`
	RoomNumber       string  `json:"room_number"`
	Floor            int     `json:"floor"`
	RoomType         string  `json:"room_type"`
	Status           string  `json:"status"`
	CurrentGuestName *string `json:"current_guest_name,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.RoomType = model.RoomType
	r.Status = model.Status
	r.CurrentGuestName = model.CurrentGuestName
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// StatusCounts is the per-status room tally used by the dashboard.
type StatusCounts struct {
	Available        int `json:"available"`
	Occupied         int `json:"occupied"`
	CheckingOutToday int `json:"checking_out_today"`
	BeingCleaned     int `json:"being_cleaned"`
	Ready            int `json:"ready"`
}

func (c *StatusCounts) FromModels(models []model.Room) {
	for _, room := range models {
		switch room.Status {
		case model.StatusAvailable:
			c.Available++
		case model.StatusOccupied:
			c.Occupied++
		case model.StatusCheckingOutToday:
			c.CheckingOutToday++
		case model.StatusBeingCleaned:
			c.BeingCleaned++
		case model.StatusReady:
			c.Ready++
		}
	}
}

type StatusLogResponse struct {
	ID             string    `json:"id"`
	RoomID         string    `json:"room_id"`
	PreviousStatus *string   `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
	Notes          *string   `json:"notes,omitempty"`
}

func (r *StatusLogResponse) FromModel(model model.StatusLog) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.PreviousStatus = model.PreviousStatus
	r.NewStatus = model.NewStatus
	r.ChangedBy = model.ChangedBy
	r.ChangedAt = model.ChangedAt
	r.Notes = model.Notes
}

type GetStatusLogsResponse struct {
	Logs      []StatusLogResponse `json:"logs"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetStatusLogsResponse) FromModels(models []model.StatusLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]StatusLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
