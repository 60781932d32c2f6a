package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ayModel "schoolku_backend/internals/features/academics/academic_years/model"
	"schoolku_backend/internals/features/academics/school_academic_years/dto"
	"schoolku_backend/internals/features/academics/school_academic_years/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type SchoolAcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewSchoolAcademicYearController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *SchoolAcademicYearController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &SchoolAcademicYearController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/academic-years?sort_by=start&sort_direction=desc
func (ctl *SchoolAcademicYearController) List(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.SchoolAcademicYearSortable...)
	if err != nil {
		return err
	}

	base := ctl.DB.WithContext(c.UserContext()).
		Where("school_academic_years.school_id = ?", schoolID)
	page, err := qb.Run[model.SchoolAcademicYearModel](base, ctl.Scopes, qb.DefaultStages, p, "AcademicYear")
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar tahun akademik sekolah", qb.MapPage(page, dto.FromModel))
}

// POST /api/a/schools/:school_id/academic-years
func (ctl *SchoolAcademicYearController) Open(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	var req dto.OpenAcademicYearRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	if err := db.Select("id").First(&schoolModel.SchoolModel{}, "id = ?", schoolID).Error; err != nil {
		return helper.FromDBError(c, err, "Sekolah tidak ditemukan")
	}
	var ay ayModel.AcademicYearModel
	if err := db.First(&ay, "id = ?", req.AcademicYearID).Error; err != nil {
		return helper.FromDBError(c, err, "Tahun akademik tidak ditemukan")
	}

	var n int64
	if err := db.Model(&model.SchoolAcademicYearModel{}).
		Where("school_id = ? AND academic_year_id = ?", schoolID, ay.ID).
		Count(&n).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Tahun akademik sudah dibuka untuk sekolah ini")
	}

	m := model.SchoolAcademicYearModel{SchoolID: schoolID, AcademicYearID: ay.ID}
	if err := db.Omit("School", "AcademicYear").Create(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	m.AcademicYear = &ay
	return helper.JsonCreated(c, "Berhasil membuka tahun akademik", dto.FromModel(m))
}

// DELETE /api/a/schools/:school_id/academic-years/:id
func (ctl *SchoolAcademicYearController) Close(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	return ctl.deleteScoped(c, schoolID, id)
}

func (ctl *SchoolAcademicYearController) deleteScoped(c *fiber.Ctx, schoolID, id uuid.UUID) error {
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.SchoolAcademicYearModel{}, "id = ? AND school_id = ?", id, schoolID)
	if res.Error != nil {
		return helper.FromDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tahun akademik sekolah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menutup tahun akademik", fiber.Map{"id": id})
}
