package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users (akun login admin/guru/siswa)
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null;column:name" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:email" json:"email"`
	PasswordHash string    `gorm:"type:text;not null;column:password_hash" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;column:role" json:"role"`
	IsActive     bool      `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	return nil
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

/* ===== role predicates ===== */

func (u *UserModel) IsAdmin() bool   { return u.Role == constants.RoleAdmin }
func (u *UserModel) IsTeacher() bool { return u.Role == constants.RoleTeacher }
func (u *UserModel) IsStudent() bool { return u.Role == constants.RoleStudent }

func (u *UserModel) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

/* ===== password ===== */

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
