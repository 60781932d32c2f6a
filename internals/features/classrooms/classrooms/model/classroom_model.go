package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sayModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	teacherModel "schoolku_backend/internals/features/teachers/teachers/model"
)

// ClassroomModel: rombongan belajar dalam satu tahun akademik sekolah.
type ClassroomModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	SchoolAcademicYearID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_classrooms_year_name,priority:1;column:school_academic_year_id" json:"school_academic_year_id"`
	TeacherID            *uuid.UUID `gorm:"type:uuid;index;column:teacher_id" json:"teacher_id,omitempty"` // wali kelas

	// Example name: "7A", "X IPA 1"
	Name  string `gorm:"type:varchar(50);not null;uniqueIndex:uq_classrooms_year_name,priority:2;column:name" json:"name"`
	Level int    `gorm:"not null;column:level" json:"level"`

	SchoolAcademicYear *sayModel.SchoolAcademicYearModel `gorm:"foreignKey:SchoolAcademicYearID;constraint:OnDelete:CASCADE" json:"-"`
	Teacher            *teacherModel.TeacherModel       `gorm:"foreignKey:TeacherID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	return nil
}

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
