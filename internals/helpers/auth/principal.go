// file: internals/helpers/auth/principal.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Nama locals yang diisi middleware AuthJWT
const (
	LocUserID   = "user_id"
	LocRole     = "userRole"
	LocUserName = "user_name"
	LocClaims   = "jwt_claims"
)

// GetUserID mengambil user_id dari Locals.
// 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	case nil:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}

func HasAnyRole(c *fiber.Ctx, roles ...string) bool {
	role := GetRole(c)
	if role == "" {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func IsAdmin(c *fiber.Ctx) bool   { return HasAnyRole(c, constants.RoleAdmin) }
func IsTeacher(c *fiber.Ctx) bool { return HasAnyRole(c, constants.RoleTeacher) }
func IsStudent(c *fiber.Ctx) bool { return HasAnyRole(c, constants.RoleStudent) }

// SetPrincipal dipakai middleware setelah token & user terverifikasi.
func SetPrincipal(c *fiber.Ctx, userID uuid.UUID, role, name string) {
	c.Locals(LocUserID, userID.String())
	c.Locals(LocRole, role)
	c.Locals(LocUserName, name)
}
