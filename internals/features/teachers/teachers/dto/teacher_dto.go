package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/teachers/teachers/model"
)

type CreateTeacherRequest struct {
	Name   string     `json:"name"              validate:"required,min=3,max=100"`
	NIP    *string    `json:"nip,omitempty"     validate:"omitempty,numeric,len=18"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

type UpdateTeacherRequest struct {
	Name   *string    `json:"name,omitempty"    validate:"omitempty,min=3,max=100"`
	NIP    *string    `json:"nip,omitempty"     validate:"omitempty,numeric,len=18"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (r *CreateTeacherRequest) ToModel(schoolID uuid.UUID) model.TeacherModel {
	return model.TeacherModel{
		SchoolID: schoolID,
		UserID:   r.UserID,
		Name:     strings.TrimSpace(r.Name),
		NIP:      r.NIP,
	}
}

func (r *UpdateTeacherRequest) ApplyUpdates(m *model.TeacherModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.NIP != nil {
		m.NIP = r.NIP
	}
	if r.UserID != nil {
		m.UserID = r.UserID
	}
}

type TeacherResponse struct {
	ID       uuid.UUID  `json:"id"`
	SchoolID uuid.UUID  `json:"school_id"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
	Name     string     `json:"name"`
	NIP      *string    `json:"nip,omitempty"`
	Email    *string    `json:"email,omitempty"`
}

func FromModel(m model.TeacherModel) TeacherResponse {
	out := TeacherResponse{
		ID:       m.ID,
		SchoolID: m.SchoolID,
		UserID:   m.UserID,
		Name:     m.Name,
		NIP:      m.NIP,
	}
	if m.User != nil {
		email := m.User.Email
		out.Email = &email
	}
	return out
}
