package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/schools/schools/model"
)

type CreateSchoolRequest struct {
	Name    string          `json:"name"    validate:"required,min=3,max=150"`
	NPSN    string          `json:"npsn"    validate:"required,numeric,len=8"`
	Address *string         `json:"address,omitempty" validate:"omitempty,max=500"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

type UpdateSchoolRequest struct {
	Name    *string         `json:"name,omitempty"    validate:"omitempty,min=3,max=150"`
	NPSN    *string         `json:"npsn,omitempty"    validate:"omitempty,numeric,len=8"`
	Address *string         `json:"address,omitempty" validate:"omitempty,max=500"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

func (r *CreateSchoolRequest) ToModel() model.SchoolModel {
	m := model.SchoolModel{
		Name:    strings.TrimSpace(r.Name),
		NPSN:    strings.TrimSpace(r.NPSN),
		Address: r.Address,
	}
	if len(r.Profile) > 0 {
		m.Profile = datatypes.JSON(r.Profile)
	}
	return m
}

func (r *UpdateSchoolRequest) ApplyUpdates(m *model.SchoolModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.NPSN != nil {
		m.NPSN = *r.NPSN
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if len(r.Profile) > 0 {
		m.Profile = datatypes.JSON(r.Profile)
	}
}

type SchoolResponse struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	NPSN    string         `json:"npsn"`
	Address *string        `json:"address,omitempty"`
	Profile datatypes.JSON `json:"profile,omitempty"`
}

func FromModel(m model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:      m.ID,
		Name:    m.Name,
		NPSN:    m.NPSN,
		Address: m.Address,
		Profile: m.Profile,
	}
}
