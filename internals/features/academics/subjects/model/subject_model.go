package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/schools/model"
)

// SubjectModel: mata pelajaran milik sekolah.
type SubjectModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subjects_school_code,priority:1;column:school_id" json:"school_id"`

	Name string `gorm:"type:varchar(100);not null;column:name" json:"name"`
	// Example code: "MTK", "BIND"
	Code string `gorm:"type:varchar(20);not null;uniqueIndex:uq_subjects_school_code,priority:2;column:code" json:"code"`

	School *schoolModel.SchoolModel `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Code = strings.ToUpper(strings.TrimSpace(m.Code))
	return nil
}

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
