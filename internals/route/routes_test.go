package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	database "schoolku_backend/internals/databases"
	academicYearModel "schoolku_backend/internals/features/academics/academic_years/model"
	sayModel "schoolku_backend/internals/features/academics/school_academic_years/model"
	subjectModel "schoolku_backend/internals/features/academics/subjects/model"
	csModel "schoolku_backend/internals/features/classrooms/classroom_students/model"
	classroomModel "schoolku_backend/internals/features/classrooms/classrooms/model"
	schoolModel "schoolku_backend/internals/features/schools/schools/model"
	guardianModel "schoolku_backend/internals/features/students/guardians/model"
	studentModel "schoolku_backend/internals/features/students/students/model"
	teacherModel "schoolku_backend/internals/features/teachers/teachers/model"
	userModel "schoolku_backend/internals/features/users/users/model"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

const testSecret = "test-secret"

type env struct {
	app *fiber.App
	db  *gorm.DB
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormLogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := configs.Defaults()
	cfg.JWTSecret = testSecret
	cfg.RateLimitMax = 0

	app := NewApp(&cfg, io.Discard)
	SetupRoutes(app, db, &cfg)
	return &env{app: app, db: db}
}

func (e *env) user(t *testing.T, role string, active bool) string {
	t.Helper()
	u := userModel.UserModel{
		Name:     role + " user",
		Email:    uuid.NewString() + "@schoolku.test",
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, e.db.Create(&u).Error)
	tok, err := authMiddleware.IssueAccessToken(testSecret, u.ID, u.Role, time.Hour)
	require.NoError(t, err)
	return tok
}

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

type pageOf[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

func (e *env) do(t *testing.T, method, target, token string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out envelope
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func decodePage[T any](t *testing.T, env envelope) pageOf[T] {
	t.Helper()
	var p pageOf[T]
	require.NoError(t, sonic.Unmarshal(env.Data, &p))
	return p
}

type named struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score float64   `json:"score"`
}

func namesOf(items []named) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func listURL(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// ---------- fixtures ----------

func (e *env) school(t *testing.T, npsn string) schoolModel.SchoolModel {
	t.Helper()
	s := schoolModel.SchoolModel{Name: "SD Negeri " + npsn, NPSN: npsn}
	require.NoError(t, e.db.Create(&s).Error)
	return s
}

func (e *env) students(t *testing.T, schoolID uuid.UUID, names ...string) []studentModel.StudentModel {
	t.Helper()
	out := make([]studentModel.StudentModel, 0, len(names))
	for i, n := range names {
		s := studentModel.StudentModel{
			SchoolID: schoolID,
			Name:     n,
			NISN:     uuid.NewString()[:7] + string(rune('0'+i%10)),
			Gender:   studentModel.GenderMale,
		}
		require.NoError(t, e.db.Create(&s).Error)
		out = append(out, s)
	}
	return out
}

func (e *env) classroom(t *testing.T, schoolID uuid.UUID) classroomModel.ClassroomModel {
	t.Helper()
	y := academicYearModel.AcademicYearModel{
		Name:  "2024/2025",
		Start: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, e.db.Create(&y).Error)
	say := sayModel.SchoolAcademicYearModel{SchoolID: schoolID, AcademicYearID: y.ID}
	require.NoError(t, e.db.Omit("School", "AcademicYear").Create(&say).Error)
	cls := classroomModel.ClassroomModel{SchoolAcademicYearID: say.ID, Name: "4A", Level: 4}
	require.NoError(t, e.db.Omit("SchoolAcademicYear", "Teacher").Create(&cls).Error)
	return cls
}

func (e *env) enroll(t *testing.T, classroomID uuid.UUID, studs []studentModel.StudentModel) []csModel.ClassroomStudentModel {
	t.Helper()
	out := make([]csModel.ClassroomStudentModel, 0, len(studs))
	for _, s := range studs {
		row := csModel.ClassroomStudentModel{ClassroomID: classroomID, StudentID: s.ID}
		require.NoError(t, e.db.Omit("Classroom", "Student").Create(&row).Error)
		out = append(out, row)
	}
	return out
}

// ---------- tests ----------

func TestHealth(t *testing.T) {
	e := newEnv(t)
	status, _ := e.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAuthGate(t *testing.T) {
	e := newEnv(t)

	t.Run("Should reject requests without a token", func(t *testing.T) {
		status, body := e.do(t, http.MethodGet, "/api/u/academic-years", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.False(t, body.Success)
		assert.Equal(t, "UNAUTHORIZED", body.ErrorCode)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		tok, err := authMiddleware.IssueAccessToken("other", uuid.New(), constants.RoleAdmin, time.Hour)
		require.NoError(t, err)
		status, _ := e.do(t, http.MethodGet, "/api/u/academic-years", tok, nil)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("Should reject an inactive user", func(t *testing.T) {
		tok := e.user(t, constants.RoleAdmin, false)
		status, _ := e.do(t, http.MethodGet, "/api/u/academic-years", tok, nil)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("Should keep non-admins out of admin routes", func(t *testing.T) {
		tok := e.user(t, constants.RoleTeacher, true)
		status, body := e.do(t, http.MethodGet, "/api/a/users", tok, nil)
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", body.ErrorCode)
	})

	t.Run("Should keep students out of teacher routes", func(t *testing.T) {
		tok := e.user(t, constants.RoleStudent, true)
		path := "/api/t/schools/" + uuid.NewString() + "/classrooms/" + uuid.NewString() + "/summatives"
		status, _ := e.do(t, http.MethodPost, path, tok, map[string]any{})
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("Should let an admin list users", func(t *testing.T) {
		tok := e.user(t, constants.RoleAdmin, true)
		status, body := e.do(t, http.MethodGet, "/api/a/users", tok, nil)
		require.Equal(t, fiber.StatusOK, status)
		page := decodePage[named](t, body)
		assert.GreaterOrEqual(t, page.Total, int64(1))
	})
}

func TestStudentSearch(t *testing.T) {
	e := newEnv(t)
	tok := e.user(t, constants.RoleStudent, true)
	s := e.school(t, "20100001")
	e.students(t, s.ID, "Budi", "Ani", "Charlie")
	other := e.school(t, "20100002")
	e.students(t, other.ID, "Anita")

	path := "/api/u/schools/" + s.ID.String() + "/students"

	t.Run("Should find Ani for q=an within the school", func(t *testing.T) {
		status, body := e.do(t, http.MethodGet, listURL(path, url.Values{"filter[q]": {"an"}}), tok, nil)
		require.Equal(t, fiber.StatusOK, status)
		page := decodePage[named](t, body)
		assert.Equal(t, []string{"Ani"}, namesOf(page.Items))
		assert.EqualValues(t, 1, page.Total)
	})

	t.Run("Should match case-insensitively", func(t *testing.T) {
		status, body := e.do(t, http.MethodGet, listURL(path, url.Values{"filter[q]": {"CHAR"}}), tok, nil)
		require.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, []string{"Charlie"}, namesOf(decodePage[named](t, body).Items))
	})

	t.Run("Should sort by name by default", func(t *testing.T) {
		status, body := e.do(t, http.MethodGet, path, tok, nil)
		require.Equal(t, fiber.StatusOK, status)
		page := decodePage[named](t, body)
		assert.Equal(t, []string{"Ani", "Budi", "Charlie"}, namesOf(page.Items))
		assert.Equal(t, 1, page.From)
		assert.Equal(t, 3, page.To)
		assert.Equal(t, 10, page.PerPage)
	})
}

func TestAcademicYearSort(t *testing.T) {
	e := newEnv(t)
	tok := e.user(t, constants.RoleStudent, true)

	// names out of step with start dates
	rows := []academicYearModel.AcademicYearModel{
		{Name: "2021/2022", Start: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "2022/2023", Start: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "2023/2024", Start: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	for i := range rows {
		rows[i].End = rows[i].Start.AddDate(1, 0, -1)
		require.NoError(t, e.db.Create(&rows[i]).Error)
	}

	status, body := e.do(t, http.MethodGet,
		listURL("/api/u/academic-years", url.Values{"sort_by": {"start"}, "sort_direction": {"desc"}}), tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"2021/2022", "2023/2024", "2022/2023"}, namesOf(decodePage[named](t, body).Items))
}

func TestClassroomStudentSort(t *testing.T) {
	e := newEnv(t)
	tok := e.user(t, constants.RoleTeacher, true)
	s := e.school(t, "20100003")
	cls := e.classroom(t, s.ID)
	studs := e.students(t, s.ID, "Citra", "Agus", "Bayu")
	e.enroll(t, cls.ID, studs)

	path := "/api/u/schools/" + s.ID.String() + "/classrooms/" + cls.ID.String() + "/students"
	status, body := e.do(t, http.MethodGet, listURL(path, url.Values{"sort_by": {"name"}}), tok, nil)
	require.Equal(t, fiber.StatusOK, status)

	var direct []string
	require.NoError(t, e.db.Table("classroom_students").
		Joins("JOIN students ON students.id = classroom_students.student_id").
		Where("classroom_students.classroom_id = ?", cls.ID).
		Order("students.name ASC").
		Pluck("students.name", &direct).Error)

	assert.Equal(t, direct, namesOf(decodePage[named](t, body).Items))
	assert.Equal(t, []string{"Agus", "Bayu", "Citra"}, direct)
}

func TestListQueryValidation(t *testing.T) {
	e := newEnv(t)
	tok := e.user(t, constants.RoleStudent, true)

	tests := []struct {
		name  string
		q     url.Values
		field string
	}{
		{name: "Should reject a per_page outside the allow-list", q: url.Values{"per_page": {"15"}}, field: "per_page"},
		{name: "Should reject a non-numeric page", q: url.Values{"page": {"abc"}}, field: "page"},
		{name: "Should reject page 0", q: url.Values{"page": {"0"}}, field: "page"},
		{name: "Should reject an unknown sort key", q: url.Values{"sort_by": {"password"}}, field: "sort_by"},
		{name: "Should reject an unknown direction", q: url.Values{"sort_direction": {"up"}}, field: "sort_direction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := e.do(t, http.MethodGet, listURL("/api/u/academic-years", tt.q), tok, nil)
			assert.Equal(t, fiber.StatusUnprocessableEntity, status)
			assert.Equal(t, "VALIDATION_ERROR", body.ErrorCode)
			assert.Contains(t, body.Errors, tt.field)
		})
	}

	t.Run("Should accept every allowed page size", func(t *testing.T) {
		for _, n := range []string{"10", "20", "30", "40", "50", "100"} {
			status, body := e.do(t, http.MethodGet, listURL("/api/u/academic-years", url.Values{"per_page": {n}}), tok, nil)
			require.Equal(t, fiber.StatusOK, status, n)
			assert.Equal(t, n, strconv.Itoa(decodePage[named](t, body).PerPage))
		}
	})
}

func TestSummatives(t *testing.T) {
	e := newEnv(t)
	teacherTok := e.user(t, constants.RoleTeacher, true)
	studentTok := e.user(t, constants.RoleStudent, true)

	s := e.school(t, "20100004")
	cls := e.classroom(t, s.ID)
	members := e.enroll(t, cls.ID, e.students(t, s.ID, "Wati", "Joko", "Sari"))
	subj := subjectModel.SubjectModel{SchoolID: s.ID, Name: "Matematika", Code: "MTK"}
	require.NoError(t, e.db.Omit("School").Create(&subj).Error)

	base := "/schools/" + s.ID.String() + "/classrooms/" + cls.ID.String() + "/summatives"
	score := func(csID uuid.UUID, v float64) map[string]any {
		return map[string]any{
			"classroom_student_id": csID,
			"subject_id":           subj.ID,
			"type":                 "sumatif_akhir_semester",
			"score":                v,
		}
	}

	t.Run("Should create then overwrite the same score", func(t *testing.T) {
		status, first := e.do(t, http.MethodPost, "/api/t"+base, teacherTok, score(members[0].ID, 70))
		require.Equal(t, fiber.StatusCreated, status, first.Message)

		status, second := e.do(t, http.MethodPost, "/api/t"+base, teacherTok, score(members[0].ID, 85))
		require.Equal(t, fiber.StatusOK, status, second.Message)

		var a, b named
		require.NoError(t, sonic.Unmarshal(first.Data, &a))
		require.NoError(t, sonic.Unmarshal(second.Data, &b))
		assert.Equal(t, a.ID, b.ID)
		assert.Equal(t, 85.0, b.Score)

		var n int64
		require.NoError(t, e.db.Table("summatives").Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("Should reject a score above 100", func(t *testing.T) {
		status, body := e.do(t, http.MethodPost, "/api/t"+base, teacherTok, score(members[1].ID, 101))
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, body.Errors, "score")
	})

	t.Run("Should reject a student outside the classroom", func(t *testing.T) {
		status, body := e.do(t, http.MethodPost, "/api/t"+base, teacherTok, score(uuid.New(), 50))
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, body.Errors, "classroom_student_id")
	})

	t.Run("Should not let students write scores", func(t *testing.T) {
		status, _ := e.do(t, http.MethodPost, "/api/t"+base, studentTok, score(members[1].ID, 90))
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("Should list by score and search the student name", func(t *testing.T) {
		for i, v := range map[int]float64{1: 60, 2: 95} {
			status, body := e.do(t, http.MethodPost, "/api/t"+base, teacherTok, score(members[i].ID, v))
			require.Equal(t, fiber.StatusCreated, status, body.Message)
		}

		q := url.Values{"subject_id": {subj.ID.String()}, "sort_by": {"score"}, "sort_direction": {"desc"}}
		status, body := e.do(t, http.MethodGet, listURL("/api/u"+base, q), studentTok, nil)
		require.Equal(t, fiber.StatusOK, status, body.Message)
		page := decodePage[named](t, body)
		require.Len(t, page.Items, 3)
		assert.Equal(t, []float64{95, 85, 60}, []float64{page.Items[0].Score, page.Items[1].Score, page.Items[2].Score})

		q = url.Values{"subject_id": {subj.ID.String()}, "filter[q]": {"jok"}}
		status, body = e.do(t, http.MethodGet, listURL("/api/u"+base, q), studentTok, nil)
		require.Equal(t, fiber.StatusOK, status)
		page = decodePage[named](t, body)
		require.Len(t, page.Items, 1)
		assert.Equal(t, 60.0, page.Items[0].Score)
	})

	t.Run("Should require subject_id when listing", func(t *testing.T) {
		status, body := e.do(t, http.MethodGet, "/api/u"+base, studentTok, nil)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, body.Errors, "subject_id")
	})
}

func TestSearchPaths(t *testing.T) {
	e := newEnv(t)
	tok := e.user(t, constants.RoleAdmin, true)

	merdeka := schoolModel.SchoolModel{Name: "SD Negeri Merdeka", NPSN: "20219001"}
	require.NoError(t, e.db.Create(&merdeka).Error)
	harapan := schoolModel.SchoolModel{Name: "SD Harapan", NPSN: "30330002"}
	require.NoError(t, e.db.Create(&harapan).Error)

	rina := userModel.UserModel{Name: "Rina", Email: "rina.wali@schoolku.id", Role: constants.RoleTeacher, IsActive: true}
	dedi := userModel.UserModel{Name: "Dedi", Email: "guru2@schoolku.id", Role: constants.RoleTeacher, IsActive: true}
	require.NoError(t, e.db.Create(&rina).Error)
	require.NoError(t, e.db.Create(&dedi).Error)

	nip1, nip2 := "198001012005012001", "197505052000031002"
	tRina := teacherModel.TeacherModel{SchoolID: merdeka.ID, UserID: &rina.ID, Name: "Rina Wulandari", NIP: &nip1}
	tDedi := teacherModel.TeacherModel{SchoolID: merdeka.ID, UserID: &dedi.ID, Name: "Dedi Kurniawan", NIP: &nip2}
	require.NoError(t, e.db.Omit("School", "User").Create(&tRina).Error)
	require.NoError(t, e.db.Omit("School", "User").Create(&tDedi).Error)

	y := academicYearModel.AcademicYearModel{
		Name:  "2024/2025",
		Start: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, e.db.Create(&y).Error)
	say := sayModel.SchoolAcademicYearModel{SchoolID: merdeka.ID, AcademicYearID: y.ID}
	require.NoError(t, e.db.Omit("School", "AcademicYear").Create(&say).Error)
	for _, cls := range []classroomModel.ClassroomModel{
		{SchoolAcademicYearID: say.ID, TeacherID: &tRina.ID, Name: "4A", Level: 4},
		{SchoolAcademicYearID: say.ID, TeacherID: &tDedi.ID, Name: "4B", Level: 4},
		{SchoolAcademicYearID: say.ID, Name: "5A", Level: 5},
	} {
		require.NoError(t, e.db.Omit("SchoolAcademicYear", "Teacher").Create(&cls).Error)
	}

	for _, sub := range []subjectModel.SubjectModel{
		{SchoolID: merdeka.ID, Name: "Matematika", Code: "MTK"},
		{SchoolID: merdeka.ID, Name: "Bahasa Indonesia", Code: "BIN"},
	} {
		require.NoError(t, e.db.Omit("School").Create(&sub).Error)
	}

	p1, p2 := "081234567890", "082198765432"
	require.NoError(t, e.db.Create(&guardianModel.GuardianModel{Name: "Suparman", Phone: &p1}).Error)
	require.NoError(t, e.db.Create(&guardianModel.GuardianModel{Name: "Wati", Phone: &p2}).Error)

	school := "/api/u/schools/" + merdeka.ID.String()
	cases := []struct {
		name string
		path string
		q    string
		want []string
	}{
		{"Should find a classroom by homeroom teacher name", school + "/academic-years/" + say.ID.String() + "/classrooms", "kurniawan", []string{"4B"}},
		{"Should find a classroom by homeroom teacher user email", school + "/academic-years/" + say.ID.String() + "/classrooms", "RINA.WALI", []string{"4A"}},
		{"Should find a teacher by user email", school + "/teachers", "guru2", []string{"Dedi Kurniawan"}},
		{"Should find a teacher by nip", school + "/teachers", "19800101", []string{"Rina Wulandari"}},
		{"Should find a school by npsn", "/api/u/schools", "3033", []string{"SD Harapan"}},
		{"Should find a subject by code", school + "/subjects", "bin", []string{"Bahasa Indonesia"}},
		{"Should find a guardian by phone", "/api/a/guardians", "0821", []string{"Wati"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := e.do(t, http.MethodGet, listURL(tc.path, url.Values{"filter[q]": {tc.q}}), tok, nil)
			require.Equal(t, fiber.StatusOK, status, body.Message)
			page := decodePage[named](t, body)
			assert.Equal(t, tc.want, namesOf(page.Items))
			assert.EqualValues(t, len(tc.want), page.Total)
		})
	}
}
