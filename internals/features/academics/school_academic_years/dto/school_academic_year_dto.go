package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/school_academic_years/model"
)

type OpenAcademicYearRequest struct {
	AcademicYearID uuid.UUID `json:"academic_year_id" validate:"required"`
}

type SchoolAcademicYearResponse struct {
	ID             uuid.UUID  `json:"id"`
	SchoolID       uuid.UUID  `json:"school_id"`
	AcademicYearID uuid.UUID  `json:"academic_year_id"`
	Name           string     `json:"name,omitempty"`
	Start          *time.Time `json:"start,omitempty"`
	End            *time.Time `json:"end,omitempty"`
	IsActive       bool       `json:"is_active"`
}

func FromModel(m model.SchoolAcademicYearModel) SchoolAcademicYearResponse {
	out := SchoolAcademicYearResponse{
		ID:             m.ID,
		SchoolID:       m.SchoolID,
		AcademicYearID: m.AcademicYearID,
	}
	if ay := m.AcademicYear; ay != nil {
		out.Name = ay.Name
		out.Start = &ay.Start
		out.End = &ay.End
		out.IsActive = ay.IsActive
	}
	return out
}
