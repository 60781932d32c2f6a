package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/classrooms/classroom_students/dto"
	"schoolku_backend/internals/features/classrooms/classroom_students/model"
	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
	classroomService "schoolku_backend/internals/features/classrooms/classrooms/service"
	studentModel "schoolku_backend/internals/features/students/students/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type ClassroomStudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewClassroomStudentController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *ClassroomStudentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClassroomStudentController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/classrooms/:classroom_id/students?sort_by=name|nisn
func (ctl *ClassroomStudentController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	cls, err := classroomOf(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.ClassroomStudentSortable...)
	if err != nil {
		return err
	}

	base := db.Where("classroom_students.classroom_id = ?", cls.ID)
	page, err := qb.Run[model.ClassroomStudentModel](base, ctl.Scopes, qb.DefaultStages, p, "Student")
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar siswa kelas", qb.MapPage(page, dto.FromModel))
}

// POST /api/a/schools/:school_id/classrooms/:classroom_id/students
// Body: {"student_ids": ["...", "..."]}; siswa yang sudah terdaftar dilewati.
func (ctl *ClassroomStudentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	result := dto.EnrollResult{
		Enrolled: []dto.ClassroomStudentResponse{},
		Skipped:  []uuid.UUID{},
	}
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		cls, err := classroomOf(c, tx)
		if err != nil {
			return err
		}
		ids := uniqueIDs(req.StudentIDs)

		var students []studentModel.StudentModel
		if err := tx.Where("school_id = ? AND id IN ?", schoolID, ids).Find(&students).Error; err != nil {
			return err
		}
		if len(students) != len(ids) {
			return helper.NewFieldError("student_ids", "student_ids must reference students of this school")
		}

		var existing []uuid.UUID
		if err := tx.Model(&model.ClassroomStudentModel{}).
			Where("classroom_id = ? AND student_id IN ?", cls.ID, ids).
			Pluck("student_id", &existing).Error; err != nil {
			return err
		}
		skip := make(map[uuid.UUID]struct{}, len(existing))
		for _, id := range existing {
			skip[id] = struct{}{}
		}

		for i := range students {
			s := &students[i]
			if _, ok := skip[s.ID]; ok {
				result.Skipped = append(result.Skipped, s.ID)
				continue
			}
			row := model.ClassroomStudentModel{ClassroomID: cls.ID, StudentID: s.ID}
			if err := tx.Omit("Classroom", "Student").Create(&row).Error; err != nil {
				return err
			}
			row.Student = s
			result.Enrolled = append(result.Enrolled, dto.FromModel(row))
		}
		return nil
	})
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	return helper.JsonCreated(c, "Berhasil menambahkan siswa ke kelas", result)
}

// DELETE /api/a/schools/:school_id/classrooms/:classroom_id/students/:id
func (ctl *ClassroomStudentController) Remove(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	cls, err := classroomOf(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := db.Delete(&model.ClassroomStudentModel{}, "id = ? AND classroom_id = ?", id, cls.ID)
	if res.Error != nil {
		return helper.FromDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak terdaftar di kelas ini")
	}
	return helper.JsonDeleted(c, "Berhasil mengeluarkan siswa dari kelas", fiber.Map{"id": id})
}

func classroomOf(c *fiber.Ctx, db *gorm.DB) (classroomModel.ClassroomModel, error) {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return classroomModel.ClassroomModel{}, err
	}
	classroomID, err := helper.ParseUUIDParam(c, "classroom_id")
	if err != nil {
		return classroomModel.ClassroomModel{}, err
	}
	cls, err := classroomService.FindInSchool(db, schoolID, classroomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cls, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return cls, err
}

func uniqueIDs(in []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(in))
	out := make([]uuid.UUID, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
