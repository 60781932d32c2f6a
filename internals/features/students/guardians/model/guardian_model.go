package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardianModel: orang tua / wali siswa.
type GuardianModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Phone      *string   `gorm:"type:varchar(20);column:phone" json:"phone,omitempty"`
	Occupation *string   `gorm:"type:varchar(100);column:occupation" json:"occupation,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (GuardianModel) TableName() string { return "guardians" }

func (m *GuardianModel) BeforeSave(tx *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Phone = trimOrNil(m.Phone)
	m.Occupation = trimOrNil(m.Occupation)
	return nil
}

func (m *GuardianModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
