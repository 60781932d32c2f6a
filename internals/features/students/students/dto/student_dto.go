package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	guardianDTO "schoolku_backend/internals/features/students/guardians/dto"
	"schoolku_backend/internals/features/students/students/model"
)

type CreateStudentRequest struct {
	Name       string     `json:"name"                  validate:"required,min=2,max=100"`
	NISN       string     `json:"nisn"                  validate:"required,numeric,len=10"`
	Gender     string     `json:"gender"                validate:"required,oneof=L P"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	GuardianID *uuid.UUID `json:"guardian_id,omitempty" validate:"excluded_with=Guardian"`
	// wali baru dibuat sekaligus
	Guardian *guardianDTO.CreateGuardianRequest `json:"guardian,omitempty" validate:"omitempty"`
}

type UpdateStudentRequest struct {
	Name       *string    `json:"name,omitempty"        validate:"omitempty,min=2,max=100"`
	NISN       *string    `json:"nisn,omitempty"        validate:"omitempty,numeric,len=10"`
	Gender     *string    `json:"gender,omitempty"      validate:"omitempty,oneof=L P"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	GuardianID *uuid.UUID `json:"guardian_id,omitempty"`
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID) model.StudentModel {
	return model.StudentModel{
		SchoolID:   schoolID,
		GuardianID: r.GuardianID,
		Name:       strings.TrimSpace(r.Name),
		NISN:       strings.TrimSpace(r.NISN),
		Gender:     r.Gender,
		BirthDate:  r.BirthDate,
	}
}

func (r *UpdateStudentRequest) ApplyUpdates(m *model.StudentModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.NISN != nil {
		m.NISN = *r.NISN
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.BirthDate != nil {
		m.BirthDate = r.BirthDate
	}
	if r.GuardianID != nil {
		m.GuardianID = r.GuardianID
		m.Guardian = nil
	}
}

type StudentResponse struct {
	ID           uuid.UUID  `json:"id"`
	SchoolID     uuid.UUID  `json:"school_id"`
	Name         string     `json:"name"`
	NISN         string     `json:"nisn"`
	Gender       string     `json:"gender"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	GuardianID   *uuid.UUID `json:"guardian_id,omitempty"`
	GuardianName *string    `json:"guardian_name,omitempty"`
}

func FromModel(m model.StudentModel) StudentResponse {
	out := StudentResponse{
		ID:         m.ID,
		SchoolID:   m.SchoolID,
		Name:       m.Name,
		NISN:       m.NISN,
		Gender:     m.Gender,
		BirthDate:  m.BirthDate,
		GuardianID: m.GuardianID,
	}
	if m.Guardian != nil {
		name := m.Guardian.Name
		out.GuardianName = &name
	}
	return out
}
