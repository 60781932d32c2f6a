package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
)

func TestUserModel(t *testing.T) {
	t.Run("Should expose role predicates", func(t *testing.T) {
		u := UserModel{Role: constants.RoleTeacher}
		assert.True(t, u.IsTeacher())
		assert.False(t, u.IsAdmin())
		assert.False(t, u.IsStudent())
		assert.True(t, u.HasAnyRole(constants.TeacherAndAbove...))
		assert.False(t, u.HasAnyRole(constants.AdminOnly...))
	})

	t.Run("Should hash and verify passwords", func(t *testing.T) {
		var u UserModel
		require.NoError(t, u.SetPassword("rahasia123"))
		assert.NotEqual(t, "rahasia123", u.PasswordHash)
		assert.True(t, u.CheckPassword("rahasia123"))
		assert.False(t, u.CheckPassword("salah"))
	})

	t.Run("Should normalize before save", func(t *testing.T) {
		u := UserModel{Name: "  Siti ", Email: " Siti@Sekolah.ID "}
		require.NoError(t, u.BeforeSave(nil))
		assert.Equal(t, "Siti", u.Name)
		assert.Equal(t, "siti@sekolah.id", u.Email)
		assert.Equal(t, constants.RoleStudent, u.Role)
	})
}
