package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	guardianModel "schoolku_backend/internals/features/students/guardians/model"
)

const (
	GenderMale   = "L"
	GenderFemale = "P"
)

type StudentModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	SchoolID   uuid.UUID  `gorm:"type:uuid;not null;index;column:school_id" json:"school_id"`
	GuardianID *uuid.UUID `gorm:"type:uuid;index;column:guardian_id" json:"guardian_id,omitempty"`

	Name string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	// Nomor Induk Siswa Nasional (10 digit)
	NISN      string     `gorm:"type:varchar(10);not null;uniqueIndex:uq_students_nisn;column:nisn" json:"nisn"`
	Gender    string     `gorm:"type:varchar(1);not null;column:gender" json:"gender"` // L | P
	BirthDate *time.Time `gorm:"column:birth_date" json:"birth_date,omitempty"`

	School   *schoolModel.SchoolModel     `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"-"`
	Guardian *guardianModel.GuardianModel `gorm:"foreignKey:GuardianID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }

var ErrInvalidGender = errors.New("gender must be L or P")

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.NISN = strings.TrimSpace(m.NISN)
	m.Gender = strings.ToUpper(strings.TrimSpace(m.Gender))
	if m.Gender != GenderMale && m.Gender != GenderFemale {
		return ErrInvalidGender
	}
	return nil
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
