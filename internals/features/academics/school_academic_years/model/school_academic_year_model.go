package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ayModel "schoolku_backend/internals/features/academics/academic_years/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
)

// SchoolAcademicYearModel: tahun akademik yang dibuka oleh sebuah sekolah.
type SchoolAcademicYearModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	SchoolID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_school_academic_year,priority:1;column:school_id" json:"school_id"`
	AcademicYearID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_school_academic_year,priority:2;column:academic_year_id" json:"academic_year_id"`

	School       *schoolModel.SchoolModel     `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"-"`
	AcademicYear *ayModel.AcademicYearModel `gorm:"foreignKey:AcademicYearID;constraint:OnDelete:RESTRICT" json:"academic_year,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (SchoolAcademicYearModel) TableName() string { return "school_academic_years" }

func (m *SchoolAcademicYearModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
