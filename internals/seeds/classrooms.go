package seeds

import (
	"gorm.io/gorm"

	csModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
)

type classroomSeed struct {
	SchoolNPSN   string   `json:"school_npsn"`
	AcademicYear string   `json:"academic_year"`
	Name         string   `json:"name"`
	Level        int      `json:"level"`
	HomeroomNIP  string   `json:"homeroom_nip"`
	Students     []string `json:"students"` // nisn
}

func seedClassrooms(tx *gorm.DB, ix *index) error {
	var rows []classroomSeed
	if err := readJSON("classrooms.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		sayID, err := lookup(ix.schoolYrs, "tahun ajaran sekolah", r.SchoolNPSN+"|"+r.AcademicYear)
		if err != nil {
			return err
		}
		m := classroomModel.ClassroomModel{SchoolAcademicYearID: sayID, Name: r.Name, Level: r.Level}
		if r.HomeroomNIP != "" {
			tid, err := lookup(ix.teachers, "guru", r.HomeroomNIP)
			if err != nil {
				return err
			}
			m.TeacherID = &tid
		}
		if _, err := firstOrCreate(tx, &m, "school_academic_year_id = ? AND name = ?", sayID, r.Name); err != nil {
			return err
		}

		for _, nisn := range r.Students {
			sid, err := lookup(ix.students, "siswa", nisn)
			if err != nil {
				return err
			}
			row := csModel.ClassroomStudentModel{ClassroomID: m.ID, StudentID: sid}
			if _, err := firstOrCreate(tx, &row, "classroom_id = ? AND student_id = ?", m.ID, sid); err != nil {
				return err
			}
		}
	}
	return nil
}
