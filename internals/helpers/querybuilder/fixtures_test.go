package querybuilder

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type year struct {
	ID    uint `gorm:"primaryKey"`
	Name  string
	Start time.Time
}

type guardian struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

type student struct {
	ID         uint `gorm:"primaryKey"`
	SchoolID   uint
	GuardianID *uint
	Name       string
	NISN       string `gorm:"column:nisn"`
}

type enrollment struct {
	ID        uint `gorm:"primaryKey"`
	Room      string
	StudentID uint
	Student   *student `gorm:"foreignKey:StudentID"`
}

// tag is never registered: no search, no custom sort.
type tag struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&year{}, &guardian{}, &student{}, &enrollment{}, &tag{}))
	return db
}

func testRegistry() *Registry {
	reg := NewRegistry()
	Register[year](reg, Scope{
		DefaultSort: "name",
		Search:      AnyOf(Contains("years.name")),
	})
	Register[student](reg, Scope{
		DefaultSort: "name",
		Search: AnyOf(
			Contains("students.name"),
			ContainsRaw("students.nisn"),
			Related(Relation{Table: "guardians", On: "guardians.id = students.guardian_id"},
				Contains("guardians.name")),
		),
	})
	Register[enrollment](reg, Scope{
		DefaultSort: "name",
		Search: AnyOf(
			Related(Relation{Table: "students", On: "students.id = enrollments.student_id"},
				Contains("students.name")),
		),
		Sort: func(tx *gorm.DB, field, dir string) *gorm.DB {
			return tx.Joins("JOIN students ON students.id = enrollments.student_id").
				Order(OrderBy("students", field, dir))
		},
	})
	return reg
}

func seedStudents(t *testing.T, db *gorm.DB, names ...string) []student {
	t.Helper()
	out := make([]student, 0, len(names))
	for i, n := range names {
		s := student{SchoolID: 1, Name: n, NISN: fmt.Sprintf("%03d", i+1)}
		require.NoError(t, db.Create(&s).Error)
		out = append(out, s)
	}
	return out
}

func names(items []student) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Name)
	}
	return out
}
