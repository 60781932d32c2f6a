// file: internals/features/academics/academic_years/model/academic_year_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`

	// Example name: "2023/2024"
	Name     string    `gorm:"type:varchar(9);not null;uniqueIndex:uq_academic_years_name;column:name" json:"name"`
	Start    time.Time `gorm:"not null;column:start" json:"start"`
	End      time.Time `gorm:"not null;column:end" json:"end"`
	IsActive bool      `gorm:"not null;column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

var ErrEndBeforeStart = errors.New("end must be >= start")

func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	if m.End.Before(m.Start) {
		return ErrEndBeforeStart
	}
	m.Name = strings.TrimSpace(m.Name)
	return nil
}

func (m *AcademicYearModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
