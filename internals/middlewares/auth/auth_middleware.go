// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"gorm.io/gorm"

	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/logger"
)

type AuthJWTOpts struct {
	Secret              string
	DB                  *gorm.DB
	CacheTTL            time.Duration // 0 → 1 menit
	CacheSize           int           // 0 → 1024
	AllowCookieFallback bool          // pakai cookie access_token jika tidak ada Bearer
}

// principal adalah potongan users yang dibutuhkan per request.
type principal struct {
	ID       uuid.UUID
	Name     string
	Role     string
	IsActive bool
}

// AuthJWT memverifikasi bearer token HS256 (sub = user id), memuat user
// (di-cache dengan expirable LRU) lalu menyimpan principal ke Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	ttl := o.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	size := o.CacheSize
	if size <= 0 {
		size = 1024
	}
	cache := expirable.NewLRU[uuid.UUID, principal](size, nil, ttl)

	return func(c *fiber.Ctx) error {
		if secret == "" {
			logger.Error("JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := helper.GetRawAccessToken(c, o.AllowCookieFallback)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		// 2) Parse + verifikasi algoritma & exp
		claims, err := ParseAccessToken(raw, secret)
		if err != nil {
			logger.Debug("token ditolak", "err", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}
		userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		// 3) Ambil user (cache → DB) & validasi aktif
		p, ok := cache.Get(userID)
		if !ok {
			p, err = loadPrincipal(c, o.DB, userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
				}
				logger.Error("gagal memuat user", "user_id", userID, "err", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
			}
			cache.Add(userID, p)
		}
		if !p.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals(helperAuth.LocClaims, claims)
		helperAuth.SetPrincipal(c, p.ID, p.Role, p.Name)
		return c.Next()
	}
}

func loadPrincipal(c *fiber.Ctx, db *gorm.DB, id uuid.UUID) (principal, error) {
	var u userModel.UserModel
	err := db.WithContext(c.UserContext()).
		Select("id", "name", "role", "is_active").
		First(&u, "id = ?", id).Error
	if err != nil {
		return principal{}, err
	}
	return principal{ID: u.ID, Name: u.Name, Role: u.Role, IsActive: u.IsActive}, nil
}
