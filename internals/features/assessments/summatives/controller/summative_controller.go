package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	"schoolku_backend/internals/features/assessments/summatives/dto"
	"schoolku_backend/internals/features/assessments/summatives/model"
	csModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
	classroomService "schoolku_backend/internals/features/classrooms/classrooms/service"
	helper "schoolku_backend/internals/helpers"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

const preloadStudent = "ClassroomStudent.Student"

type SummativeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewSummativeController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *SummativeController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &SummativeController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/u/schools/:school_id/classrooms/:classroom_id/summatives
//
//	?subject_id=...        (wajib)
//	&type=sumatif_akhir_semester
//	&filter[q]=nama siswa&sort_by=name|nisn|score
func (ctl *SummativeController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	cls, err := classroomOf(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}
	p, err := helper.ParseListQuery(c, ctl.Validator, model.SummativeSortable...)
	if err != nil {
		return err
	}

	rawSubject := c.Query("subject_id")
	if rawSubject == "" {
		return helper.NewFieldError("subject_id", "subject_id is a required field")
	}
	subjectID, err := uuid.Parse(rawSubject)
	if err != nil {
		return helper.NewFieldError("subject_id", "subject_id must be a valid UUID")
	}

	base := db.
		Where("summatives.classroom_student_id IN (?)", membersOf(db, cls.ID)).
		Where("summatives.subject_id = ?", subjectID)
	if t := c.Query("type"); t != "" {
		if !model.ValidType(t) {
			return helper.NewFieldError("type", "type must be one of [sumatif_lingkup_materi sumatif_akhir_semester]")
		}
		base = base.Where("summatives.type = ?", t)
	}

	page, err := qb.Run[model.SummativeModel](base, ctl.Scopes, qb.DefaultStages, p, preloadStudent)
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar nilai sumatif", qb.MapPage(page, dto.FromModel))
}

func (ctl *SummativeController) Get(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db, preloadStudent)
	if err != nil {
		return helper.FromDBError(c, err, "Nilai sumatif tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail nilai sumatif", dto.FromModel(m))
}

// POST /api/t/schools/:school_id/classrooms/:classroom_id/summatives
// Create atau timpa nilai untuk (classroom_student_id, subject_id, type).
func (ctl *SummativeController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSummativeRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	schoolID, err := helper.ParseUUIDParam(c, "school_id")
	if err != nil {
		return err
	}

	var (
		m       model.SummativeModel
		created bool
	)
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		cls, err := classroomOf(c, tx)
		if err != nil {
			return err
		}
		if err := checkRefs(tx, schoolID, cls.ID, req.ClassroomStudentID, req.SubjectID); err != nil {
			return err
		}

		err = tx.Where("classroom_student_id = ? AND subject_id = ? AND type = ?",
			req.ClassroomStudentID, req.SubjectID, req.Type).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
		case err != nil:
			return err
		}

		req.ApplyTo(&m)
		if created {
			return tx.Omit("ClassroomStudent", "Subject").Create(&m).Error
		}
		return tx.Omit("ClassroomStudent", "Subject").Save(&m).Error
	})
	if err != nil {
		return helper.FromDBError(c, err, "Kelas tidak ditemukan")
	}

	if created {
		return helper.JsonCreated(c, "Berhasil menyimpan nilai sumatif", dto.FromModel(m))
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui nilai sumatif", dto.FromModel(m))
}

func (ctl *SummativeController) Patch(c *fiber.Ctx) error {
	var req dto.UpdateSummativeRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Nilai sumatif tidak ditemukan")
	}
	req.ApplyUpdates(&m)
	if err := db.Omit("ClassroomStudent", "Subject").Save(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui nilai sumatif", dto.FromModel(m))
}

func (ctl *SummativeController) Delete(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.find(c, db)
	if err != nil {
		return helper.FromDBError(c, err, "Nilai sumatif tidak ditemukan")
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus nilai sumatif", fiber.Map{"id": m.ID})
}

// find memuat nilai :id yang siswanya terdaftar di kelas :classroom_id.
func (ctl *SummativeController) find(c *fiber.Ctx, db *gorm.DB, preloads ...string) (model.SummativeModel, error) {
	var m model.SummativeModel
	cls, err := classroomOf(c, db)
	if err != nil {
		return m, err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return m, err
	}
	q := db.Where("summatives.classroom_student_id IN (?)", membersOf(db, cls.ID))
	for _, name := range preloads {
		q = q.Preload(name)
	}
	err = q.First(&m, "summatives.id = ?", id).Error
	return m, err
}

func membersOf(db *gorm.DB, classroomID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&csModel.ClassroomStudentModel{}).
		Select("classroom_students.id").
		Where("classroom_students.classroom_id = ?", classroomID)
}

func checkRefs(tx *gorm.DB, schoolID, classroomID, classroomStudentID, subjectID uuid.UUID) error {
	var n int64
	if err := tx.Model(&csModel.ClassroomStudentModel{}).
		Where("id = ? AND classroom_id = ?", classroomStudentID, classroomID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NewFieldError("classroom_student_id", "classroom_student_id must reference a student of this classroom")
	}

	if err := tx.Model(&subjectModel.SubjectModel{}).
		Where("id = ? AND school_id = ?", subjectID, schoolID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NewFieldError("subject_id", "subject_id must reference a subject of this school")
	}
	return nil
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
