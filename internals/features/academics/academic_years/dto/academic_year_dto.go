package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/academic_years/model"
)

// =======================
// Request DTO
// =======================

type CreateAcademicYearRequest struct {
	// "2023/2024"
	Name     string    `json:"name"      validate:"required,school_year"`
	Start    time.Time `json:"start"     validate:"required"`
	End      time.Time `json:"end"       validate:"required,gtefield=Start"`
	IsActive *bool     `json:"is_active,omitempty"`
}

type UpdateAcademicYearRequest struct {
	Name     *string    `json:"name,omitempty"  validate:"omitempty,school_year"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}

func (r *CreateAcademicYearRequest) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		Name:     strings.TrimSpace(r.Name),
		Start:    r.Start,
		End:      r.End,
		IsActive: r.IsActive != nil && *r.IsActive,
	}
}

func (r *UpdateAcademicYearRequest) ApplyUpdates(m *model.AcademicYearModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Start != nil {
		m.Start = *r.Start
	}
	if r.End != nil {
		m.End = *r.End
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

// =======================
// Response DTO
// =======================

type AcademicYearResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	IsActive bool      `json:"is_active"`
}

func FromModel(m model.AcademicYearModel) AcademicYearResponse {
	return AcademicYearResponse{
		ID:       m.ID,
		Name:     m.Name,
		Start:    m.Start,
		End:      m.End,
		IsActive: m.IsActive,
	}
}
