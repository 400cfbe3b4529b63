package dto

import (
	"smeraldo/internal/domains/staff/model"
	"smeraldo/shared"
	"smeraldo/shared/constant"
	gDto "smeraldo/shared/dto"
	gModel "smeraldo/shared/model"
	"smeraldo/shared/timezone"
)

type CreateStaffRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1"`
	Role     string `json:"role"      validate:"required,oneof=manager reception housekeeping"`
}

func (r *CreateStaffRequest) ToModel(id, actor string) model.StaffMember {
	return model.StaffMember{
		ID:       id,
		FullName: r.FullName,
		Role:     r.Role,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateStaffRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=manager reception housekeeping"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateStaffRequest) ToUpdateMap(actor string) map[string]any {
	mod := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if r.FullName != nil {
		mod[model.FieldFullName] = *r.FullName
	}

	if r.Role != nil {
		mod[model.FieldRole] = *r.Role
	}

	if r.IsActive != nil {
		mod[model.FieldIsActive] = *r.IsActive
	}

	return mod
}

type StaffResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.StaffMember) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Role = model.Role
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.StaffMember, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

// StaffProfile is the per-request identity attached after authentication:
// who the token belongs to at the desk, not just in the token claims.
type StaffProfile struct {
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (r *StaffProfile) FromModel(model model.StaffMember) {
	r.StaffID = model.ID
	r.FullName = model.FullName
	r.Role = model.Role
	r.IsActive = model.IsActive
}
