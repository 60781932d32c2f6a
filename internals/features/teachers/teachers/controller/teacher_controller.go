package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	"schoolku_backend/internals/features/teachers/teachers/dto"
	"schoolku_backend/internals/features/teachers/teachers/model"
	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewTeacherController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *TeacherController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &TeacherController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/teachers?filter[q]=nama|nip|email
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.TeacherSortable...)
	if err != nil {
		return err
	}
	base := ctl.DB.WithContext(c.UserContext()).Where("teachers.school_id = ?", schoolID)
	page, err := qb.Run[model.TeacherModel](base, ctl.Scopes, qb.DefaultStages, p, "User")
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar guru", qb.MapPage(page, dto.FromModel))
}

// GET /api/u/schools/:school_id/teachers/:id
func (ctl *TeacherController) Get(c *fiber.Ctx) error {
	m, err := ctl.find(c, ctl.DB.WithContext(c.UserContext()).Preload("User"))
	if err != nil {
		return helper.FromDBError(c, err, "Guru tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail guru", dto.FromModel(m))
}

// POST /api/a/schools/:school_id/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	var req dto.CreateTeacherRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	if err := db.Select("id").First(&schoolModel.SchoolModel{}, "id = ?", schoolID).Error; err != nil {
		return helper.FromDBError(c, err, "Sekolah tidak ditemukan")
	}
	m := req.ToModel(schoolID)
	if err := ctl.checkLinks(db, &m); err != nil {
		return helper.FromDBError(c, err, "")
	}
	if err := db.Omit("School", "User").Create(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Berhasil menambahkan guru", dto.FromModel(m))
}

// PATCH /api/a/schools/:school_id/teachers/:id
func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	var req dto.UpdateTeacherRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Guru tidak ditemukan")
	}
	req.ApplyUpdates(&m)
	if err := ctl.checkLinks(db, &m); err != nil {
		return helper.FromDBError(c, err, "")
	}
	if err := db.Omit("School", "User").Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui guru", dto.FromModel(m))
}

// DELETE /api/a/schools/:school_id/teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Guru tidak ditemukan")
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus guru", fiber.Map{"id": m.ID})
}

func (ctl *TeacherController) find(c *fiber.Ctx, db *gorm.DB) (model.TeacherModel, error) {
	var m model.TeacherModel
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return m, err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return m, err
	}
	err = db.Where("teachers.school_id = ?", schoolID).First(&m, "teachers.id = ?", id).Error
	return m, err
}

// checkLinks: NIP unik per sekolah; user yang ditautkan harus ber-role teacher.
func (ctl *TeacherController) checkLinks(db *gorm.DB, m *model.TeacherModel) error {
	if m.NIP != nil && *m.NIP != "" {
		var n int64
		q := db.Model(&model.TeacherModel{}).Where("school_id = ? AND nip = ?", m.SchoolID, *m.NIP)
		if m.ID != uuid.Nil {
			q = q.Where("id <> ?", m.ID)
		}
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "NIP sudah dipakai guru lain")
		}
	}
	if m.UserID != nil {
		var u userModel.UserModel
		if err := db.First(&u, "id = ?", *m.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewFieldError("user_id", "user_id must reference an existing user")
			}
			return err
		}
		if !u.IsTeacher() {
			return helper.NewFieldError("user_id", "user_id must belong to a teacher account")
		}
		m.User = &u
	}
	return nil
}
