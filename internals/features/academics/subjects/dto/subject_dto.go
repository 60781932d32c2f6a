package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Code string `json:"code" validate:"required,alphanum,max=20"`
}

type UpdateSubjectRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Code *string `json:"code,omitempty" validate:"omitempty,alphanum,max=20"`
}

func (r *CreateSubjectRequest) ToModel(schoolID uuid.UUID) model.SubjectModel {
	return model.SubjectModel{
		SchoolID: schoolID,
		Name:     strings.TrimSpace(r.Name),
		Code:     strings.ToUpper(strings.TrimSpace(r.Code)),
	}
}

func (r *UpdateSubjectRequest) ApplyUpdates(m *model.SubjectModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		m.Code = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
}

type SubjectResponse struct {
	ID       uuid.UUID `json:"id"`
	SchoolID uuid.UUID `json:"school_id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
}

func FromModel(m model.SubjectModel) SubjectResponse {
	return SubjectResponse{ID: m.ID, SchoolID: m.SchoolID, Name: m.Name, Code: m.Code}
}
