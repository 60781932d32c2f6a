package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/users/model"
)

// =======================
// Request DTO
// =======================

type CreateUserRequest struct {
	Name     string `json:"name"      validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	Role     string `json:"role"      validate:"required,oneof=admin teacher student"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"      validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty"     validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty"  validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=admin teacher student"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *CreateUserRequest) ToModel() (model.UserModel, error) {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	m := model.UserModel{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Role:     r.Role,
		IsActive: active,
	}
	if err := m.SetPassword(r.Password); err != nil {
		return model.UserModel{}, err
	}
	return m, nil
}

func (r *UpdateUserRequest) ApplyUpdates(m *model.UserModel) error {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.Password != nil {
		return m.SetPassword(*r.Password)
	}
	return nil
}

// =======================
// Response DTO
// =======================

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
