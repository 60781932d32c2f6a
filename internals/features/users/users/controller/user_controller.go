package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/users/dto"
	"schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	qb "schoolku_backend/internals/helpers/querybuilder"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}

func NewUserController(db *gorm.DB, v *validator.Validate, reg *qb.Registry) *UserController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &UserController{DB: db, Validator: v, Scopes: reg}
}

// GET /api/a/users?filter[q]=&role=&sort_by=&sort_direction=&per_page=&page=
func (ctl *UserController) List(c *fiber.Ctx) error {
	p, err := helper.ParseListQuery(c, ctl.Validator, model.UserSortable...)
	if err != nil {
		return err
	}

	tx := ctl.DB.WithContext(c.UserContext())
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("users.role = ?", role)
	}

	page, err := qb.Run[model.UserModel](tx, ctl.Scopes, qb.DefaultStages, p)
	if err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonPage(c, "Daftar user", qb.MapPage(page, dto.FromModel))
}

// GET /api/a/users/:id
func (ctl *UserController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var u model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&u, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail user", dto.FromModel(u))
}

// POST /api/a/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}

	if taken, err := ctl.emailTaken(c, req.Email, ""); err != nil {
		return helper.FromDBError(c, err, "")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	u, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&u).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(u))
}

// PATCH /api/a/users/:id
func (ctl *UserController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validator, &req); !ok {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var u model.UserModel
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		return helper.FromDBError(c, err, "User tidak ditemukan")
	}
	if req.Email != nil {
		if taken, err := ctl.emailTaken(c, *req.Email, u.ID.String()); err != nil {
			return helper.FromDBError(c, err, "")
		} else if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
	}
	if err := req.ApplyUpdates(&u); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := db.Save(&u).Error; err != nil {
		return helper.FromDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(u))
}

// DELETE /api/a/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if me, err := helperAuth.GetUserID(c); err == nil && me == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.FromDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}

func (ctl *UserController) emailTaken(c *fiber.Ctx, email, exceptID string) (bool, error) {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
