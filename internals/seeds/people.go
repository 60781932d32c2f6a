package seeds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	guardianModel "schoolku_backend/internals/features/students/guardians/model"
	studentModel "schoolku_backend/internals/features/students/students/model"
	teacherModel "schoolku_backend/internals/features/teachers/teachers/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

type userSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type teacherSeed struct {
	SchoolNPSN string  `json:"school_npsn"`
	Name       string  `json:"name"`
	NIP        string  `json:"nip"`
	UserEmail  *string `json:"user_email"`
}

type guardianSeed struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Occupation *string `json:"occupation"`
}

type studentSeed struct {
	SchoolNPSN    string `json:"school_npsn"`
	Name          string `json:"name"`
	NISN          string `json:"nisn"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birth_date"`
	GuardianPhone string `json:"guardian_phone"`
}

func seedUsers(tx *gorm.DB, ix *index) error {
	var rows []userSeed
	if err := readJSON("users.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		var m userModel.UserModel
		err := tx.Where("email = ?", r.Email).Limit(1).Find(&m).Error
		if err != nil {
			return err
		}
		if m.ID == uuid.Nil {
			// 🔐 hash hanya saat insert
			m = userModel.UserModel{Name: r.Name, Email: r.Email, Role: r.Role, IsActive: true}
			if err := m.SetPassword(r.Password); err != nil {
				return err
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		ix.users[m.Email] = m.ID
	}
	return nil
}

func seedTeachers(tx *gorm.DB, ix *index) error {
	var rows []teacherSeed
	if err := readJSON("teachers.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		schoolID, err := lookup(ix.schools, "sekolah", r.SchoolNPSN)
		if err != nil {
			return err
		}
		nip := r.NIP
		m := teacherModel.TeacherModel{SchoolID: schoolID, Name: r.Name, NIP: &nip}
		if r.UserEmail != nil {
			uid, err := lookup(ix.users, "user", *r.UserEmail)
			if err != nil {
				return err
			}
			m.UserID = &uid
		}
		if _, err := firstOrCreate(tx, &m, "school_id = ? AND nip = ?", schoolID, nip); err != nil {
			return err
		}
		ix.teachers[nip] = m.ID
	}
	return nil
}

func seedGuardians(tx *gorm.DB, ix *index) error {
	var rows []guardianSeed
	if err := readJSON("guardians.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		phone := r.Phone
		m := guardianModel.GuardianModel{Name: r.Name, Phone: &phone, Occupation: r.Occupation}
		if _, err := firstOrCreate(tx, &m, "phone = ?", phone); err != nil {
			return err
		}
		ix.guardians[phone] = m.ID
	}
	return nil
}

func seedStudents(tx *gorm.DB, ix *index) error {
	var rows []studentSeed
	if err := readJSON("students.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		schoolID, err := lookup(ix.schools, "sekolah", r.SchoolNPSN)
		if err != nil {
			return err
		}
		m := studentModel.StudentModel{SchoolID: schoolID, Name: r.Name, NISN: r.NISN, Gender: r.Gender}
		if r.BirthDate != "" {
			var d time.Time
			if d, err = parseDate(r.BirthDate); err != nil {
				return err
			}
			m.BirthDate = &d
		}
		if r.GuardianPhone != "" {
			gid, err := lookup(ix.guardians, "wali", r.GuardianPhone)
			if err != nil {
				return err
			}
			m.GuardianID = &gid
		}
		if _, err := firstOrCreate(tx, &m, "nisn = ?", r.NISN); err != nil {
			return err
		}
		ix.students[m.NISN] = m.ID
	}
	return nil
}
