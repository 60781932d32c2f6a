// file: internals/features/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/academic_years/dto"
	"schoolku_backend/internals/features/academics/academic_years/model"
	sayModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewAcademicYearController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *AcademicYearController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AcademicYearController{DB: db, Validator: v, Scopes: reg}
}

/* ============================================
   LIST
   GET /api/u/academic-years?filter[q]=2023&sort_by=start&sort_direction=desc
============================================ */

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	p, err := helper.ParseListQuery(c, ctl.Validator, model.AcademicYearSortable...)
	if err != nil {
		return err
	}
	tx := ctl.DB.WithContext(c.UserContext())
	if c.QueryBool("active_only") {
		tx = tx.Where("academic_years.is_active = ?", true)
	}

	page, err := qb.Run[model.AcademicYearModel](tx, ctl.Scopes, qb.DefaultStages, p)
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar tahun akademik", qb.MapPage(page, dto.FromModel))
}

func (ctl *AcademicYearController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.AcademicYearModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "Tahun akademik tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail tahun akademik", dto.FromModel(m))
}

/* ============================================
   CREATE (admin)
   POST /api/a/academic-years
============================================ */

func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateAcademicYearRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}

	m := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.AcademicYearModel{}).Where("name = ?", m.Name).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusConflict, "Tahun akademik sudah ada")
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return deactivateOthers(tx, m)
	})
	if err != nil {
		return ctl.txError(c, err)
	}
	return helper.JsonCreated(c, "Berhasil membuat tahun akademik", dto.FromModel(m))
}

/* ============================================
   PATCH (admin)
   PATCH /api/a/academic-years/:id
============================================ */

func (ctl *AcademicYearController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAcademicYearRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}

	var m model.AcademicYearModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		req.ApplyUpdates(&m)
		if m.End.Before(m.Start) {
			return fiber.NewError(fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
		}
		if req.Name != nil {
			var n int64
			if err := tx.Model(&model.AcademicYearModel{}).
				Where("name = ? AND id <> ?", m.Name, m.ID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fiber.NewError(fiber.StatusConflict, "Tahun akademik sudah ada")
			}
		}
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		return deactivateOthers(tx, m)
	})
	if err != nil {
		return ctl.txError(c, err)
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui tahun akademik", dto.FromModel(m))
}

/* ============================================
   DELETE (admin) : ditolak kalau sudah dipakai sekolah
============================================ */

func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var used int64
	if err := db.Model(&sayModel.SchoolAcademicYearModel{}).
		Where("academic_year_id = ?", id).Count(&used).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Tahun akademik masih dipakai sekolah")
	}

	res := db.Delete(&model.AcademicYearModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.FromDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tahun akademik tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus tahun akademik", fiber.Map{"id": id})
}

// hanya satu tahun akademik aktif dalam satu waktu
func deactivateOthers(tx *gorm.DB, m model.AcademicYearModel) error {
	if !m.IsActive {
		return nil
	}
	return tx.Model(&model.AcademicYearModel{}).
		Where("id <> ? AND is_active = ?", m.ID, true).
		Update("is_active", false).Error
}

func (ctl *AcademicYearController) txError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if errors.Is(err, model.ErrEndBeforeStart) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}
	return helper.FromDBError(c, err, "Tahun akademik tidak ditemukan")
}
