package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

type TeacherModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	SchoolID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_teachers_school_nip,priority:1;column:school_id" json:"school_id"`
	UserID   *uuid.UUID `gorm:"type:uuid;index;column:user_id" json:"user_id,omitempty"`

	Name string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	// Nomor Induk Pegawai (18 digit); guru honorer boleh kosong
	NIP *string `gorm:"type:varchar(18);uniqueIndex:uq_teachers_school_nip,priority:2;column:nip" json:"nip,omitempty"`

	School *schoolModel.SchoolModel `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"-"`
	User   *userModel.UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.NIP != nil {
		n := strings.TrimSpace(*m.NIP)
		if n == "" {
			m.NIP = nil
		} else {
			m.NIP = &n
		}
	}
	return nil
}

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
