package commands

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/users/model"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormLogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))
	return db
}

func TestIssueToken(t *testing.T) {
	db := openDB(t)
	active := userModel.UserModel{Name: "Guru", Email: "guru@schoolku.id", Role: constants.RoleTeacher, IsActive: true}
	require.NoError(t, db.Create(&active).Error)
	inactive := userModel.UserModel{Name: "Lama", Email: "lama@schoolku.id", Role: constants.RoleTeacher}
	require.NoError(t, db.Create(&inactive).Error)

	t.Run("Should mint a token whose subject is the user id", func(t *testing.T) {
		tok, err := issueToken(db, "s3cret", "  GURU@schoolku.id ", time.Hour)
		require.NoError(t, err)
		claims, err := authMiddleware.ParseAccessToken(tok, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, active.ID.String(), claims.Subject)
		assert.Equal(t, constants.RoleTeacher, claims.Role)
	})

	t.Run("Should refuse unknown and inactive users", func(t *testing.T) {
		_, err := issueToken(db, "s3cret", "nobody@schoolku.id", time.Hour)
		assert.ErrorContains(t, err, "tidak ditemukan")
		_, err = issueToken(db, "s3cret", "lama@schoolku.id", time.Hour)
		assert.ErrorContains(t, err, "nonaktif")
	})

	t.Run("Should refuse a non-positive ttl", func(t *testing.T) {
		_, err := issueToken(db, "s3cret", "guru@schoolku.id", 0)
		assert.Error(t, err)
	})
}

func TestRootCmd(t *testing.T) {
	root := RootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "token"} {
		assert.True(t, names[want], want)
	}
	assert.NotNil(t, root.Flags().Lookup("migrate"))
}
