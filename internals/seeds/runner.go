package seeds

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"schoolku_backend/internals/logger"
)

//go:embed data/*.json
var dataFS embed.FS

const dateLayout = "2006-01-02"

// RunAllSeeds mengisi data contoh. Aman dijalankan berulang: setiap baris dicari
// lewat natural key dulu (npsn, nisn, email, ...) dan hanya dibuat jika belum ada.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(tx *gorm.DB, ix *index) error
	}{
		{"academic_years", seedAcademicYears},
		{"schools", seedSchools},
		{"users", seedUsers},
		{"teachers", seedTeachers},
		{"guardians", seedGuardians},
		{"students", seedStudents},
		{"subjects", seedSubjects},
		{"classrooms", seedClassrooms},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ix := newIndex()
		for _, s := range steps {
			start := time.Now()
			if err := s.run(tx, ix); err != nil {
				return fmt.Errorf("seed %s: %w", s.name, err)
			}
			logger.Info("seed selesai", "step", s.name, "dur", time.Since(start))
		}
		return nil
	})
}

func readJSON(name string, dst any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(raw, dst)
}

// firstOrCreate mencari baris dengan query; kalau tidak ada, m dibuat.
func firstOrCreate[T any](tx *gorm.DB, m *T, query string, args ...any) (bool, error) {
	res := tx.Where(query, args...).FirstOrCreate(m)
	return res.RowsAffected > 0, res.Error
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
