package seeds

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	academicYearModel "schoolku_backend/internals/features/academics/academic_years/model"
	sayModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	"schoolku_backend/internals/logger"
)

type academicYearSeed struct {
	Name     string `json:"name"`
	Start    string `json:"start"`
	End      string `json:"end"`
	IsActive bool   `json:"is_active"`
}

type schoolSeed struct {
	Name          string         `json:"name"`
	NPSN          string         `json:"npsn"`
	Address       *string        `json:"address"`
	Profile       datatypes.JSON `json:"profile"`
	AcademicYears []string       `json:"academic_years"`
}

type subjectSeed struct {
	SchoolNPSN string `json:"school_npsn"`
	Name       string `json:"name"`
	Code       string `json:"code"`
}

func seedAcademicYears(tx *gorm.DB, ix *index) error {
	var rows []academicYearSeed
	if err := readJSON("academic_years.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		start, err := parseDate(r.Start)
		if err != nil {
			return err
		}
		end, err := parseDate(r.End)
		if err != nil {
			return err
		}
		m := academicYearModel.AcademicYearModel{Name: r.Name, Start: start, End: end, IsActive: r.IsActive}
		created, err := firstOrCreate(tx, &m, "name = ?", r.Name)
		if err != nil {
			return err
		}
		if !created {
			logger.Debug("tahun ajaran sudah ada, dilewati", "name", r.Name)
		}
		ix.years[m.Name] = m.ID
	}
	return nil
}

func seedSchools(tx *gorm.DB, ix *index) error {
	var rows []schoolSeed
	if err := readJSON("schools.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		m := schoolModel.SchoolModel{Name: r.Name, NPSN: r.NPSN, Address: r.Address, Profile: r.Profile}
		if _, err := firstOrCreate(tx, &m, "npsn = ?", r.NPSN); err != nil {
			return err
		}
		ix.schools[m.NPSN] = m.ID

		for _, name := range r.AcademicYears {
			yearID, err := lookup(ix.years, "tahun ajaran", name)
			if err != nil {
				return err
			}
			say := sayModel.SchoolAcademicYearModel{SchoolID: m.ID, AcademicYearID: yearID}
			if _, err := firstOrCreate(tx, &say, "school_id = ? AND academic_year_id = ?", m.ID, yearID); err != nil {
				return err
			}
			ix.schoolYrs[m.NPSN+"|"+name] = say.ID
		}
	}
	return nil
}

func seedSubjects(tx *gorm.DB, ix *index) error {
	var rows []subjectSeed
	if err := readJSON("subjects.json", &rows); err != nil {
		return err
	}
	for _, r := range rows {
		schoolID, err := lookup(ix.schools, "sekolah", r.SchoolNPSN)
		if err != nil {
			return err
		}
		m := subjectModel.SubjectModel{SchoolID: schoolID, Name: r.Name, Code: r.Code}
		if _, err := firstOrCreate(tx, &m, "school_id = ? AND code = ?", schoolID, r.Code); err != nil {
			return err
		}
	}
	return nil
}
