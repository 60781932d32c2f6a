package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	guardianModel "schoolku_backend/internals/features/students/guardians/model"
	"schoolku_backend/internals/features/students/students/dto"
	"schoolku_backend/internals/features/students/students/model"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewStudentController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *StudentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &StudentController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/students?filter[q]=nama|nisn|nama wali&gender=L
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.StudentSortable...)
	if err != nil {
		return err
	}

	base := ctl.DB.WithContext(c.UserContext()).Where("students.school_id = ?", schoolID)
	switch g := c.Query("gender"); g {
	case "":
	case model.GenderMale, model.GenderFemale:
		base = base.Where("students.gender = ?", g)
	default:
		return helper.NewFieldError("gender", "gender must be one of [L P]")
	}

	page, err := qb.Run[model.StudentModel](base, ctl.Scopes, qb.DefaultStages, p, "Guardian")
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar siswa", qb.MapPage(page, dto.FromModel))
}

// GET /api/u/schools/:school_id/students/:id
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	m, err := ctl.find(c, ctl.DB.WithContext(c.UserContext()).Preload("Guardian"))
	if err != nil {
		return helper.FromDBError(c, err, "Siswa tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail siswa", dto.FromModel(m))
}

// POST /api/a/schools/:school_id/students
// Wali bisa ditautkan (guardian_id) atau dibuat sekaligus (guardian{...}).
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}
	var req dto.CreateStudentRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}

	m := req.ToModel(schoolID)
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&schoolModel.SchoolModel{}, "id = ?", schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sekolah tidak ditemukan")
			}
			return err
		}
		if err := nisnFree(tx, m.NISN, uuid.Nil); err != nil {
			return err
		}
		if req.Guardian != nil {
			g := req.Guardian.ToModel()
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
			m.GuardianID, m.Guardian = &g.ID, &g
		} else if err := attachGuardian(tx, &m); err != nil {
			return err
		}
		return tx.Omit("School", "Guardian").Create(&m).Error
	})
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Berhasil menambahkan siswa", dto.FromModel(m))
}

// PATCH /api/a/schools/:school_id/students/:id
func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	var req dto.UpdateStudentRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Siswa tidak ditemukan")
	}
	req.ApplyUpdates(&m)

	if req.NISN != nil {
		if err := nisnFree(db, m.NISN, m.ID); err != nil {
			return helper.FromDBError(c, err, "")
		}
	}
	if err := attachGuardian(db, &m); err != nil {
		return helper.FromDBError(c, err, "")
	}
	if err := db.Omit("School", "Guardian").Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui siswa", dto.FromModel(m))
}

// DELETE /api/a/schools/:school_id/students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Siswa tidak ditemukan")
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus siswa", fiber.Map{"id": m.ID})
}

func (ctl *StudentController) find(c *fiber.Ctx, db *gorm.DB) (model.StudentModel, error) {
	var m model.StudentModel
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return m, err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return m, err
	}
	err = db.Where("students.school_id = ?", schoolID).First(&m, "students.id = ?", id).Error
	return m, err
}

func nisnFree(db *gorm.DB, nisn string, except uuid.UUID) error {
	q := db.Model(&model.StudentModel{}).Where("nisn = ?", nisn)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "NISN sudah terdaftar")
	}
	return nil
}

func attachGuardian(db *gorm.DB, m *model.StudentModel) error {
	if m.GuardianID == nil || m.Guardian != nil {
		return nil
	}
	var g guardianModel.GuardianModel
	if err := db.First(&g, "id = ?", *m.GuardianID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewFieldError("guardian_id", "guardian_id must reference an existing guardian")
		}
		return err
	}
	m.Guardian = &g
	return nil
}
