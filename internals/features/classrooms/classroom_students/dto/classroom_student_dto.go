package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/classrooms/classroom_students/model"
)

type EnrollRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,max=100,dive,required"`
}

type EnrollResult struct {
	Enrolled []ClassroomStudentResponse `json:"enrolled"`
	Skipped  []uuid.UUID                `json:"skipped"` // sudah terdaftar
}

type ClassroomStudentResponse struct {
	ID          uuid.UUID `json:"id"`
	ClassroomID uuid.UUID `json:"classroom_id"`
	StudentID   uuid.UUID `json:"student_id"`
	Name        string    `json:"name,omitempty"`
	NISN        string    `json:"nisn,omitempty"`
	Gender      string    `json:"gender,omitempty"`
}

func FromModel(m model.ClassroomStudentModel) ClassroomStudentResponse {
	out := ClassroomStudentResponse{
		ID:          m.ID,
		ClassroomID: m.ClassroomID,
		StudentID:   m.StudentID,
	}
	if s := m.Student; s != nil {
		out.Name, out.NISN, out.Gender = s.Name, s.NISN, s.Gender
	}
	return out
}
