package dto_test

import (
	"testing"

	"smeraldo/internal/domains/room/model"
	"smeraldo/internal/domains/room/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber: "101",
		Floor:      1,
		RoomType:   "double",
	}

	room := req.ToModel("test-user-id")

	assert.NotEmpty(t, room.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomNumber, room.RoomNumber)
	assert.Equal(t, req.Floor, room.Floor)
	assert.Equal(t, req.RoomType, room.RoomType)
	assert.Equal(t, model.StatusAvailable, room.Status)
	assert.Equal(t, "test-user-id", room.CreatedBy)
	assert.False(t, room.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestStatusCounts_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: "1", Status: model.StatusAvailable},
		{ID: "2", Status: model.StatusOccupied},
		{ID: "3", Status: model.StatusOccupied},
		{ID: "4", Status: model.StatusCheckingOutToday},
		{ID: "5", Status: model.StatusBeingCleaned},
		{ID: "6", Status: model.StatusReady},
		{ID: "7", Status: model.StatusReady},
	}

	var counts dto.StatusCounts
	counts.FromModels(rooms)

	assert.Equal(t, 1, counts.Available)
	assert.Equal(t, 2, counts.Occupied)
	assert.Equal(t, 1, counts.CheckingOutToday)
	assert.Equal(t, 1, counts.BeingCleaned)
	assert.Equal(t, 2, counts.Ready)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	guestName := "Nguyen Van A"
	rooms := []model.Room{
		{ID: "1", RoomNumber: "101", Floor: 1, RoomType: "double", Status: model.StatusAvailable},
		{ID: "2", RoomNumber: "201", Floor: 2, RoomType: "twin", Status: model.StatusOccupied, CurrentGuestName: &guestName},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms, 23, 10)

	assert.Len(t, response.Rooms, 2)
	assert.Equal(t, 23, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "101", response.Rooms[0].RoomNumber)
	assert.Nil(t, response.Rooms[0].CurrentGuestName)
	assert.Equal(t, &guestName, response.Rooms[1].CurrentGuestName)
}
