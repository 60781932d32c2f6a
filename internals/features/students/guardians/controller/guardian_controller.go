package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/students/guardians/dto"
	"schoolku_backend/internals/features/students/guardians/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type GuardianController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewGuardianController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *GuardianController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &GuardianController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/a/guardians?filter[q]=nama|telepon
func (ctl *GuardianController) List(c *fiber.Ctx) error {
	p, err := helper.ParseListQuery(c, ctl.Validator, model.GuardianSortable...)
	if err != nil {
		return err
	}
	page, err := qb.Run[model.GuardianModel](ctl.DB.WithContext(c.UserContext()), ctl.Scopes, qb.DefaultStages, p)
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar wali", qb.MapPage(page, dto.FromModel))
}

func (ctl *GuardianController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.GuardianModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "Wali tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail wali", dto.FromModel(m))
}

func (ctl *GuardianController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuardianRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Berhasil menambahkan wali", dto.FromModel(m))
}

func (ctl *GuardianController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateGuardianRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.GuardianModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "Wali tidak ditemukan")
	}
	req.ApplyUpdates(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui wali", dto.FromModel(m))
}

func (ctl *GuardianController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.GuardianModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.FromDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Wali tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus wali", fiber.Map{"id": id})
}
