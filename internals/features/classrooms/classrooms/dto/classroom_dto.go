package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/classrooms/classrooms/model"
)

type CreateClassroomRequest struct {
	Name      string     `json:"name"                 validate:"required,max=50"`
	Level     int        `json:"level"                validate:"required,min=1,max=12"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
}

type UpdateClassroomRequest struct {
	Name      *string    `json:"name,omitempty"       validate:"omitempty,max=50"`
	Level     *int       `json:"level,omitempty"      validate:"omitempty,min=1,max=12"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	// true → lepas wali kelas
	ClearTeacher bool `json:"clear_teacher,omitempty"`
}

func (r *CreateClassroomRequest) ToModel(sayID uuid.UUID) model.ClassroomModel {
	return model.ClassroomModel{
		SchoolAcademicYearID: sayID,
		TeacherID:            r.TeacherID,
		Name:                 strings.TrimSpace(r.Name),
		Level:                r.Level,
	}
}

func (r *UpdateClassroomRequest) ApplyUpdates(m *model.ClassroomModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Level != nil {
		m.Level = *r.Level
	}
	if r.TeacherID != nil {
		m.TeacherID = r.TeacherID
	}
	if r.ClearTeacher {
		m.TeacherID = nil
		m.Teacher = nil
	}
}

type ClassroomResponse struct {
	ID                   uuid.UUID  `json:"id"`
	SchoolAcademicYearID uuid.UUID  `json:"school_academic_year_id"`
	Name                 string     `json:"name"`
	Level                int        `json:"level"`
	TeacherID            *uuid.UUID `json:"teacher_id,omitempty"`
	TeacherName          *string    `json:"teacher_name,omitempty"`
}

func FromModel(m model.ClassroomModel) ClassroomResponse {
	out := ClassroomResponse{
		ID:                   m.ID,
		SchoolAcademicYearID: m.SchoolAcademicYearID,
		Name:                 m.Name,
		Level:                m.Level,
		TeacherID:            m.TeacherID,
	}
	if m.Teacher != nil {
		name := m.Teacher.Name
		out.TeacherName = &name
	}
	return out
}
