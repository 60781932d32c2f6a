package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sayModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	"schoolku_backend/internals/features/classrooms/classrooms/dto"
	"schoolku_backend/internals/features/classrooms/classrooms/model"
	teacherModel "schoolku_backend/internals/features/teachers/teachers/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type ClassroomController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewClassroomController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *ClassroomController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClassroomController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/academic-years/:say_id/classrooms?filter[q]=
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	say, err := resolveYear(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Tahun akademik sekolah tidak ditemukan")
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.ClassroomSortable...)
	if err != nil {
		return err
	}
	base := db.Where("classrooms.school_academic_year_id = ?", say.ID)
	if lvl := c.QueryInt("level"); lvl > 0 {
		base = base.Where("classrooms.level = ?", lvl)
	}
	page, err := qb.Run[model.ClassroomModel](base, ctl.Scopes, qb.DefaultStages, p, "Teacher")
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar kelas", qb.MapPage(page, dto.FromModel))
}

// GET /api/u/schools/:school_id/academic-years/:say_id/classrooms/:id
func (ctl *ClassroomController) Get(c *fiber.Ctx) error {
	m, err := ctl.find(c, ctl.DB.WithContext(c.UserContext()).Preload("Teacher"))
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail kelas", dto.FromModel(m))
}

// POST /api/a/schools/:school_id/academic-years/:say_id/classrooms
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	say, err := resolveYear(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Tahun akademik sekolah tidak ditemukan")
	}

	m := req.ToModel(say.ID)
	if err := ctl.check(db, say, &m); err != nil {
		return helper.FromDBError(c, err, "")
	}
	if err := db.Omit("SchoolAcademicYear", "Teacher").Create(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Berhasil membuat kelas", dto.FromModel(m))
}

// PATCH /api/a/schools/:school_id/academic-years/:say_id/classrooms/:id
func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	var req dto.UpdateClassroomRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	say, err := resolveYear(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Tahun akademik sekolah tidak ditemukan")
	}
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	req.ApplyUpdates(&m)
	if err := ctl.check(db, say, &m); err != nil {
		return helper.FromDBError(c, err, "")
	}
	if err := db.Omit("SchoolAcademicYear", "Teacher").Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui kelas", dto.FromModel(m))
}

// DELETE /api/a/schools/:school_id/academic-years/:say_id/classrooms/:id
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus kelas", fiber.Map{"id": m.ID})
}

// resolveYear: :say_id harus milik :school_id.
func resolveYear(c *fiber.Ctx, db *gorm.DB) (sayModel.SchoolAcademicYearModel, error) {
	var say sayModel.SchoolAcademicYearModel
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return say, err
	}
	sayID, err := helper.ParseUUIDParam(c, "say_id")
	if err != nil {
		return say, err
	}
	err = db.First(&say, "id = ? AND school_id = ?", sayID, schoolID).Error
	return say, err
}

func (ctl *ClassroomController) find(c *fiber.Ctx, db *gorm.DB) (model.ClassroomModel, error) {
	var m model.ClassroomModel
	sayID, err := helper.ParseUUIDParam(c, "say_id")
	if err != nil {
		return m, err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return m, err
	}
	err = db.Where("classrooms.school_academic_year_id = ?", sayID).First(&m, "classrooms.id = ?", id).Error
	return m, err
}

// check: nama kelas unik per tahun; wali kelas harus guru di sekolah yang sama.
func (ctl *ClassroomController) check(db *gorm.DB, say sayModel.SchoolAcademicYearModel, m *model.ClassroomModel) error {
	var n int64
	q := db.Model(&model.ClassroomModel{}).
		Where("school_academic_year_id = ? AND name = ?", say.ID, m.Name)
	if m.ID != uuid.Nil {
		q = q.Where("id <> ?", m.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "Nama kelas sudah dipakai pada tahun ini")
	}

	if m.TeacherID != nil {
		var t teacherModel.TeacherModel
		err := db.Where("school_id = ?", say.SchoolID).First(&t, "id = ?", *m.TeacherID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewFieldError("teacher_id", "teacher_id must reference a teacher of this school")
		}
		if err != nil {
			return err
		}
		m.Teacher = &t
	}
	return nil
}
