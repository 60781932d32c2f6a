package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	csModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
)

const (
	TypeLingkupMateri = "sumatif_lingkup_materi"
	TypeAkhirSemester = "sumatif_akhir_semester"

	ScoreMin = 0.0
	ScoreMax = 100.0
)

var (
	ErrInvalidType     = errors.New("type harus sumatif_lingkup_materi atau sumatif_akhir_semester")
	ErrScoreOutOfRange = errors.New("score harus di antara 0 dan 100")
)

// SummativeModel: nilai sumatif satu siswa (anggota kelas) untuk satu mapel.
// Satu baris per (classroom_student, subject, type).
type SummativeModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ClassroomStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_summative,priority:1;column:classroom_student_id" json:"classroom_student_id"`
	SubjectID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_summative,priority:2;index;column:subject_id" json:"subject_id"`
	Type               string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_summative,priority:3;column:type" json:"type"`

	Score       float64        `gorm:"type:numeric(5,2);not null;column:score" json:"score"`
	Description *string        `gorm:"type:text;column:description" json:"description,omitempty"`
	Components  datatypes.JSON `gorm:"column:components" json:"components,omitempty"`

	ClassroomStudent *csModel.ClassroomStudentModel `gorm:"foreignKey:ClassroomStudentID;constraint:OnDelete:CASCADE" json:"-"`
	Subject          *subjectModel.SubjectModel     `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SummativeModel) TableName() string { return "summatives" }

func ValidType(t string) bool {
	return t == TypeLingkupMateri || t == TypeAkhirSemester
}

func (m *SummativeModel) BeforeSave(tx *gorm.DB) error {
	m.Type = strings.ToLower(strings.TrimSpace(m.Type))
	if !ValidType(m.Type) {
		return ErrInvalidType
	}
	if m.Score < ScoreMin || m.Score > ScoreMax {
		return ErrScoreOutOfRange
	}
	if m.Description != nil {
		d := strings.TrimSpace(*m.Description)
		if d == "" {
			m.Description = nil
		} else {
			m.Description = &d
		}
	}
	return nil
}

func (m *SummativeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
