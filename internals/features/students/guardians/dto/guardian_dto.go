package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/students/guardians/model"
)

type CreateGuardianRequest struct {
	Name       string  `json:"name"                 validate:"required,min=3,max=100"`
	Phone      *string `json:"phone,omitempty"      validate:"omitempty,e164|numeric,max=20"`
	Occupation *string `json:"occupation,omitempty" validate:"omitempty,max=100"`
}

type UpdateGuardianRequest struct {
	Name       *string `json:"name,omitempty"       validate:"omitempty,min=3,max=100"`
	Phone      *string `json:"phone,omitempty"      validate:"omitempty,e164|numeric,max=20"`
	Occupation *string `json:"occupation,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateGuardianRequest) ToModel() model.GuardianModel {
	return model.GuardianModel{Name: r.Name, Phone: r.Phone, Occupation: r.Occupation}
}

func (r *UpdateGuardianRequest) ApplyUpdates(m *model.GuardianModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Occupation != nil {
		m.Occupation = r.Occupation
	}
}

type GuardianResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      *string   `json:"phone,omitempty"`
	Occupation *string   `json:"occupation,omitempty"`
}

func FromModel(m model.GuardianModel) GuardianResponse {
	return GuardianResponse{ID: m.ID, Name: m.Name, Phone: m.Phone, Occupation: m.Occupation}
}
