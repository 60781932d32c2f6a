package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/academics/subjects/dto"
	"schoolku_backend/internals/features/academics/subjects/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewSubjectController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *SubjectController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &SubjectController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/subjects?filter[q]=nama|kode
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.SubjectSortable...)
	if err != nil {
		return err
	}
	base := ctl.DB.WithContext(c.UserContext()).Where("subjects.school_id = ?", schoolID)
	page, err := qb.Run[model.SubjectModel](base, ctl.Scopes, qb.DefaultStages, p)
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar mata pelajaran", qb.MapPage(page, dto.FromModel))
}

func (ctl *SubjectController) Get(c *fiber.Ctx) error {
	m, err := ctl.find(c, ctl.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.FromDBError(c, err, "Mata pelajaran tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail mata pelajaran", dto.FromModel(m))
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	var req dto.CreateSubjectRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	if err := db.Select("id").First(&schoolModel.SchoolModel{}, "id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.FromDBError(c, err, "")
	}

	m := req.ToModel(schoolID)
	if err := codeFree(db, m); err != nil {
		return helper.FromDBError(c, err, "")
	}
	if err := db.Omit("School").Create(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Berhasil membuat mata pelajaran", dto.FromModel(m))
}

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	var req dto.UpdateSubjectRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Mata pelajaran tidak ditemukan")
	}
	req.ApplyUpdates(&m)
	if req.Code != nil {
		if err := codeFree(db, m); err != nil {
			return helper.FromDBError(c, err, "")
		}
	}
	if err := db.Omit("School").Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui mata pelajaran", dto.FromModel(m))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Mata pelajaran tidak ditemukan")
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus mata pelajaran", fiber.Map{"id": m.ID})
}

func (ctl *SubjectController) find(c *fiber.Ctx, db *gorm.DB) (model.SubjectModel, error) {
	var m model.SubjectModel
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return m, err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return m, err
	}
	err = db.Where("subjects.school_id = ?", schoolID).First(&m, "subjects.id = ?", id).Error
	return m, err
}

func codeFree(db *gorm.DB, m model.SubjectModel) error {
	q := db.Model(&model.SubjectModel{}).Where("school_id = ? AND code = ?", m.SchoolID, m.Code)
	if m.ID != uuid.Nil {
		q = q.Where("id <> ?", m.ID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kode mata pelajaran sudah dipakai")
	}
	return nil
}
