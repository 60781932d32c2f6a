package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SchoolModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`

	Name string `gorm:"type:varchar(150);not null;column:name" json:"name"`
	// Nomor Pokok Sekolah Nasional (8 digit)
	NPSN    string  `gorm:"type:varchar(8);not null;uniqueIndex:uq_schools_npsn;column:npsn" json:"npsn"`
	Address *string `gorm:"type:text;column:address" json:"address,omitempty"`

	// profil bebas: kepala sekolah, akreditasi, kontak, dll.
	Profile datatypes.JSON `gorm:"column:profile" json:"profile,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.NPSN = strings.TrimSpace(m.NPSN)
	if m.Address != nil {
		a := strings.TrimSpace(*m.Address)
		if a == "" {
			m.Address = nil
		} else {
			m.Address = &a
		}
	}
	return nil
}

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
