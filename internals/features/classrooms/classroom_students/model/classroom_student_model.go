package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
	studentModel "schoolku_backend/internals/features/students/students/model"
)

// ClassroomStudentModel: keanggotaan siswa di kelas (satu baris per siswa per kelas).
type ClassroomStudentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ClassroomID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classroom_student,priority:1;column:classroom_id" json:"classroom_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classroom_student,priority:2;index;column:student_id" json:"student_id"`

	Classroom *classroomModel.ClassroomModel `gorm:"foreignKey:ClassroomID;constraint:OnDelete:CASCADE" json:"-"`
	Student   *studentModel.StudentModel     `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (ClassroomStudentModel) TableName() string { return "classroom_students" }

func (m *ClassroomStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
