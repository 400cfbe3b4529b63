package dto

import (
	roomDto "smeraldo/internal/domains/room/model/dto"
	staffDto "smeraldo/internal/domains/staff/model/dto"
)

// StaffOnDuty pairs an active staff member with the shift logged for the
// current date, zero when nothing has been logged yet.
type StaffOnDuty struct {
	StaffID    string  `json:"staff_id"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	ShiftValue float64 `json:"shift_value"`
}

type DashboardResponse struct {
	Date             string                 `json:"date"`
	Rooms            []roomDto.RoomResponse `json:"rooms"`
	StatusCounts     roomDto.StatusCounts   `json:"status_counts"`
	OccupancyPercent float64                `json:"occupancy_percent"`
	OccupancyLabel   string                 `json:"occupancy_label"`
	StaffOnDuty      []StaffOnDuty          `json:"staff_on_duty"`
}

func (r *DashboardResponse) FillStaff(staff []staffDto.StaffProfile, shifts map[string]float64) {
	r.StaffOnDuty = make([]StaffOnDuty, len(staff))

	for i, member := range staff {
		r.StaffOnDuty[i] = StaffOnDuty{
			StaffID:    member.StaffID,
			FullName:   member.FullName,
			Role:       member.Role,
			ShiftValue: shifts[member.StaffID],
		}
	}
}
