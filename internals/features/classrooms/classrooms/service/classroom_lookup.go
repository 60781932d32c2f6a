package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/classrooms/classrooms/model"
)

// FindInSchool memuat kelas hanya jika kelas itu milik schoolID
// (lewat school_academic_years).
func FindInSchool(db *gorm.DB, schoolID, classroomID uuid.UUID) (model.ClassroomModel, error) {
	var m model.ClassroomModel
	err := db.
		Joins("JOIN school_academic_years ON school_academic_years.id = classrooms.school_academic_year_id").
		Where("school_academic_years.school_id = ?", schoolID).
		First(&m, "classrooms.id = ?", classroomID).Error
	return m, err
}
