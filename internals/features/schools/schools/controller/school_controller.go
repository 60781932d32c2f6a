package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/schools/schools/dto"
	"schoolku_backend/internals/features/schools/schools/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewSchoolController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *SchoolController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &SchoolController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools?filter[q]=&sort_by=name|npsn
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	p, err := helper.ParseListQuery(c, ctl.Validator, model.SchoolSortable...)
	if err != nil {
		return err
	}
	page, err := qb.Run[model.SchoolModel](ctl.DB.WithContext(c.UserContext()), ctl.Scopes, qb.DefaultStages, p)
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar sekolah", qb.MapPage(page, dto.FromModel))
}

// GET /api/u/schools/:school_id
func (ctl *SchoolController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	var m model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "Sekolah tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail sekolah", dto.FromModel(m))
}

// POST /api/a/schools
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	if taken, err := npsnTaken(db, req.NPSN, nil); err != nil {
		return helper.FromDBError(c, err, "")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "NPSN sudah terdaftar")
	}

	m := req.ToModel()
	if err := db.Create(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Berhasil membuat sekolah", dto.FromModel(m))
}

// PATCH /api/a/schools/:school_id
func (ctl *SchoolController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	var req dto.UpdateSchoolRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.SchoolModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "Sekolah tidak ditemukan")
	}
	if req.NPSN != nil {
		if taken, err := npsnTaken(db, *req.NPSN, &m); err != nil {
			return helper.FromDBError(c, err, "")
		} else if taken {
			return helper.JsonError(c, fiber.StatusConflict, "NPSN sudah terdaftar")
		}
	}
	req.ApplyUpdates(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui sekolah", dto.FromModel(m))
}

// DELETE /api/a/schools/:school_id
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SchoolModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.FromDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus sekolah", fiber.Map{"id": id})
}

func npsnTaken(db *gorm.DB, npsn string, except *model.SchoolModel) (bool, error) {
	q := db.Model(&model.SchoolModel{}).Where("npsn = ?", npsn)
	if except != nil {
		q = q.Where("id <> ?", except.ID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}
