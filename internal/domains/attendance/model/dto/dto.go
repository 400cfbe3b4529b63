package dto

import (
	"smeraldo/internal/domains/attendance/model"
	"smeraldo/shared/constant"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type LogAttendanceRequest struct {
	StaffID    string  `json:"staff_id"    validate:"required,uuid"`
	LogDate    string  `json:"log_date"    validate:"required,dateymd"`
	ShiftValue float64 `json:"shift_value" validate:"shiftvalue"`
}

func (r *LogAttendanceRequest) ToModel(logDate time.Time, actor string) model.AttendanceLog {
	return model.AttendanceLog{
		ID:         uuid.NewString(),
		StaffID:    r.StaffID,
		LogDate:    logDate,
		ShiftValue: r.ShiftValue,
		LoggedBy:   actor,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	LogDate    string  `json:"log_date"`
	ShiftValue float64 `json:"shift_value"`
	LoggedBy   string  `json:"logged_by"`
}

func (r *AttendanceResponse) FromModel(model model.AttendanceLog) {
	r.ID = model.ID
	r.StaffID = model.StaffID
	r.LogDate = model.LogDate.Format(constant.DateFormat)
	r.ShiftValue = model.ShiftValue
	r.LoggedBy = model.LoggedBy
}

type GetAttendanceResponse struct {
	Logs      []AttendanceResponse `json:"logs"`
	TotalData int                  `json:"total_data"`
}

func (r *GetAttendanceResponse) FromModels(models []model.AttendanceLog) {
	r.TotalData = len(models)

	r.Logs = make([]AttendanceResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
