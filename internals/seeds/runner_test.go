package seeds

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "schoolku_backend/internals/databases"
	csModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
	studentModel "schoolku_backend/internals/features/students/students/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormLogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func counts(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	out := map[string]int64{}
	for _, table := range []string{
		"academic_years", "schools", "school_academic_years", "users", "teachers",
		"guardians", "students", "subjects", "classrooms", "classroom_students",
	} {
		var n int64
		require.NoError(t, db.Table(table).Count(&n).Error)
		out[table] = n
	}
	return out
}

func TestRunAllSeeds(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	t.Run("Should load the embedded data", func(t *testing.T) {
		require.NoError(t, RunAllSeeds(ctx, db))
		c := counts(t, db)
		assert.EqualValues(t, 2, c["academic_years"])
		assert.EqualValues(t, 1, c["schools"])
		assert.EqualValues(t, 5, c["students"])
		assert.EqualValues(t, 5, c["classroom_students"])

		var admin userModel.UserModel
		require.NoError(t, db.First(&admin, "email = ?", "admin@schoolku.id").Error)
		assert.True(t, admin.IsAdmin())
		assert.True(t, admin.IsActive)
		assert.True(t, admin.CheckPassword("admin12345"))
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		before := counts(t, db)
		require.NoError(t, RunAllSeeds(ctx, db))
		assert.Equal(t, before, counts(t, db))
	})

	t.Run("Should link students to guardians and classrooms", func(t *testing.T) {
		var budi studentModel.StudentModel
		require.NoError(t, db.Preload("Guardian").First(&budi, "nisn = ?", "0141234001").Error)
		require.NotNil(t, budi.Guardian)
		assert.Equal(t, "Slamet Riyadi", budi.Guardian.Name)

		var n int64
		require.NoError(t, db.Model(&csModel.ClassroomStudentModel{}).Where("student_id = ?", budi.ID).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})
}
