package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/assessments/summatives/model"
)

// UpsertSummativeRequest: satu nilai per (classroom_student_id, subject_id, type);
// kalau sudah ada, nilainya ditimpa.
type UpsertSummativeRequest struct {
	ClassroomStudentID uuid.UUID       `json:"classroom_student_id" validate:"required"`
	SubjectID          uuid.UUID       `json:"subject_id"           validate:"required"`
	Type               string          `json:"type"                 validate:"required,oneof=sumatif_lingkup_materi sumatif_akhir_semester"`
	Score              *float64        `json:"score"                validate:"required,min=0,max=100"`
	Description        *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Components         json.RawMessage `json:"components,omitempty"`
}

type UpdateSummativeRequest struct {
	Score       *float64        `json:"score,omitempty"       validate:"omitempty,min=0,max=100"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Components  json.RawMessage `json:"components,omitempty"`
}

func (r *UpsertSummativeRequest) ApplyTo(m *model.SummativeModel) {
	m.ClassroomStudentID = r.ClassroomStudentID
	m.SubjectID = r.SubjectID
	m.Type = r.Type
	m.Score = *r.Score
	m.Description = r.Description
	if len(r.Components) > 0 {
		m.Components = datatypes.JSON(r.Components)
	}
}

func (r *UpdateSummativeRequest) ApplyUpdates(m *model.SummativeModel) {
	if r.Score != nil {
		m.Score = *r.Score
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if len(r.Components) > 0 {
		m.Components = datatypes.JSON(r.Components)
	}
}

type SummativeResponse struct {
	ID                 uuid.UUID      `json:"id"`
	ClassroomStudentID uuid.UUID      `json:"classroom_student_id"`
	StudentID          *uuid.UUID     `json:"student_id,omitempty"`
	StudentName        string         `json:"student_name,omitempty"`
	NISN               string         `json:"nisn,omitempty"`
	SubjectID          uuid.UUID      `json:"subject_id"`
	Type               string         `json:"type"`
	Score              float64        `json:"score"`
	Description        *string        `json:"description,omitempty"`
	Components         datatypes.JSON `json:"components,omitempty"`
}

func FromModel(m model.SummativeModel) SummativeResponse {
	out := SummativeResponse{
		ID:                 m.ID,
		ClassroomStudentID: m.ClassroomStudentID,
		SubjectID:          m.SubjectID,
		Type:               m.Type,
		Score:              m.Score,
		Description:        m.Description,
		Components:         m.Components,
	}
	if cs := m.ClassroomStudent; cs != nil && cs.Student != nil {
		id := cs.Student.ID
		out.StudentID = &id
		out.StudentName, out.NISN = cs.Student.Name, cs.Student.NISN
	}
	return out
}
