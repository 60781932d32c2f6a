package querybuilder

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Run("Should leave the query untouched when the entity has no search scope", func(t *testing.T) {
		db := openTestDB(t)
		for _, n := range []string{"b", "a", "c"} {
			require.NoError(t, db.Create(&tag{Name: n}).Error)
		}
		q := db.Model(&tag{})
		out := Filter(q, Target{Table: "tags"}, Params{Query: "anything"})
		assert.Same(t, q, out)

		page, err := Run[tag](db, testRegistry(), DefaultStages, Params{Query: "anything"})
		require.NoError(t, err)
		assert.EqualValues(t, 3, page.Total)
	})

	t.Run("Should be a no-op for an empty or blank term", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Budi", "Ani")
		for _, q := range []string{"", "   "} {
			page, err := Run[student](db, testRegistry(), DefaultStages, Params{Query: q})
			require.NoError(t, err)
			assert.EqualValues(t, 2, page.Total)
		}
	})

	t.Run("Should match case-insensitively", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.Create(&year{Name: "Angkatan ABC"}).Error)
		require.NoError(t, db.Create(&year{Name: "Other"}).Error)
		reg := testRegistry()

		upper, err := Run[year](db, reg, DefaultStages, Params{Query: "ABC"})
		require.NoError(t, err)
		lower, err := Run[year](db, reg, DefaultStages, Params{Query: "abc"})
		require.NoError(t, err)
		require.Len(t, upper.Items, 1)
		assert.Equal(t, upper.Items, lower.Items)
	})

	t.Run("Should match substrings, not whole values", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.Create(&year{Name: "2023/2024"}).Error)
		require.NoError(t, db.Create(&year{Name: "2019/2020"}).Error)
		reg := testRegistry()
		for _, q := range []string{"2023", "23/20"} {
			page, err := Run[year](db, reg, DefaultStages, Params{Query: q})
			require.NoError(t, err)
			require.Len(t, page.Items, 1, q)
			assert.Equal(t, "2023/2024", page.Items[0].Name)
		}
	})

	t.Run("Should find students by name (Budi, Ani, Charlie with q=an)", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Budi", "Ani", "Charlie")
		page, err := Run[student](db, testRegistry(), DefaultStages, Params{Query: "an"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ani"}, names(page.Items))
	})

	t.Run("Should match the numeric identifier as text", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Budi", "Ani", "Charlie")
		page, err := Run[student](db, testRegistry(), DefaultStages, Params{Query: "003"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Charlie"}, names(page.Items))
	})

	t.Run("Should match through a related table", func(t *testing.T) {
		db := openTestDB(t)
		g := guardian{Name: "Pak Slamet"}
		require.NoError(t, db.Create(&g).Error)
		require.NoError(t, db.Create(&student{SchoolID: 1, Name: "Dewi", NISN: "100", GuardianID: &g.ID}).Error)
		require.NoError(t, db.Create(&student{SchoolID: 1, Name: "Eko", NISN: "101"}).Error)

		page, err := Run[student](db, testRegistry(), DefaultStages, Params{Query: "slamet"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Dewi"}, names(page.Items))
	})

	t.Run("Should AND the search with the caller's base conditions", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Ana", "Anto")
		require.NoError(t, db.Create(&student{SchoolID: 2, Name: "Andi", NISN: "900"}).Error)

		base := db.Where("school_id = ?", 2)
		page, err := Run[student](base, testRegistry(), DefaultStages, Params{Query: "an"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Andi"}, names(page.Items))
	})

	t.Run("Should treat LIKE wildcards in the term literally", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Budi", "100% Ani")
		page, err := Run[student](db, testRegistry(), DefaultStages, Params{Query: "%"})
		require.NoError(t, err)
		assert.Equal(t, []string{"100% Ani"}, names(page.Items))
	})
}

func TestSort(t *testing.T) {
	t.Run("Should use the declared default field ascending when sort_by is empty", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Charlie", "Ani", "Budi")
		reg := testRegistry()

		implicit, err := Run[student](db, reg, DefaultStages, Params{})
		require.NoError(t, err)
		explicit, err := Run[student](db, reg, DefaultStages, Params{SortBy: "name", SortDirection: Asc})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ani", "Budi", "Charlie"}, names(implicit.Items))
		assert.Equal(t, names(explicit.Items), names(implicit.Items))
	})

	t.Run("Should reverse the order for desc", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Charlie", "Ani", "Budi", "Dodi")
		reg := testRegistry()

		asc, err := Run[student](db, reg, DefaultStages, Params{SortBy: "name", SortDirection: Asc})
		require.NoError(t, err)
		desc, err := Run[student](db, reg, DefaultStages, Params{SortBy: "name", SortDirection: Desc})
		require.NoError(t, err)

		got := names(desc.Items)
		want := names(asc.Items)
		for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
			want[i], want[j] = want[j], want[i]
		}
		assert.Equal(t, want, got)
	})

	t.Run("Should order by start date regardless of the name string", func(t *testing.T) {
		db := openTestDB(t)
		// names deliberately out of step with the dates
		rows := []year{
			{Name: "2022/2023", Start: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "2021/2022", Start: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "2023/2024", Start: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)},
		}
		for i := range rows {
			require.NoError(t, db.Create(&rows[i]).Error)
		}
		page, err := Run[year](db, testRegistry(), DefaultStages, Params{SortBy: "start", SortDirection: Desc})
		require.NoError(t, err)
		got := make([]string, 0, 3)
		for _, y := range page.Items {
			got = append(got, y.Name)
		}
		assert.Equal(t, []string{"2021/2022", "2023/2024", "2022/2023"}, got)
	})

	t.Run("Should order by the joined column when a resolver is declared", func(t *testing.T) {
		db := openTestDB(t)
		studs := seedStudents(t, db, "Citra", "Agus", "Bayu")
		// enrollment ids inserted in the opposite order of student names
		for i := len(studs) - 1; i >= 0; i-- {
			require.NoError(t, db.Create(&enrollment{Room: "7A", StudentID: studs[i].ID}).Error)
		}

		page, err := Run[enrollment](db.Where("room = ?", "7A"), testRegistry(), DefaultStages,
			Params{SortBy: "name", SortDirection: Asc})
		require.NoError(t, err)

		var direct []enrollment
		require.NoError(t, db.Table("enrollments").
			Select("enrollments.*").
			Joins("JOIN students ON students.id = enrollments.student_id").
			Order("students.name ASC").
			Find(&direct).Error)

		require.Len(t, page.Items, 3)
		assert.Equal(t, direct, page.Items)
		assert.EqualValues(t, 3, page.Total)
	})

	t.Run("Should preload relations on the page fetch only", func(t *testing.T) {
		db := openTestDB(t)
		studs := seedStudents(t, db, "Dewi", "Eka")
		for _, s := range studs {
			require.NoError(t, db.Create(&enrollment{Room: "8B", StudentID: s.ID}).Error)
		}

		page, err := Run[enrollment](db, testRegistry(), DefaultStages,
			Params{SortBy: "name", SortDirection: Desc}, "Student")
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.EqualValues(t, 2, page.Total)
		require.NotNil(t, page.Items[0].Student)
		assert.Equal(t, "Eka", page.Items[0].Student.Name)
		assert.Equal(t, "Dewi", page.Items[1].Student.Name)
	})

	t.Run("Should break ties by primary key", func(t *testing.T) {
		db := openTestDB(t)
		seedStudents(t, db, "Sama", "Sama", "Sama")
		page, err := Run[student](db, testRegistry(), DefaultStages, Params{SortBy: "name"})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Less(t, page.Items[0].ID, page.Items[1].ID)
		assert.Less(t, page.Items[1].ID, page.Items[2].ID)
	})
}

func TestRunPagination(t *testing.T) {
	db := openTestDB(t)
	ns := make([]string, 0, 25)
	for i := 1; i <= 25; i++ {
		ns = append(ns, fmt.Sprintf("Siswa %02d", i))
	}
	seedStudents(t, db, ns...)
	reg := testRegistry()

	tests := []struct {
		name     string
		page     int
		perPage  int
		items    int
		from, to int
		last     int
	}{
		{name: "Should return the tail of the last page", page: 3, perPage: 10, items: 5, from: 21, to: 25, last: 3},
		{name: "Should return a full first page", page: 1, perPage: 10, items: 10, from: 1, to: 10, last: 3},
		{name: "Should default to page 1 and 10 per page", items: 10, from: 1, to: 10, last: 3},
		{name: "Should return nothing past the end", page: 4, perPage: 10, items: 0, from: 0, to: 0, last: 3},
		{name: "Should fit everything in one page", page: 1, perPage: 50, items: 25, from: 1, to: 25, last: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Run[student](db, reg, DefaultStages, Params{Page: tt.page, PerPage: tt.perPage})
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.items)
			assert.EqualValues(t, 25, page.Total)
			assert.Equal(t, tt.from, page.From)
			assert.Equal(t, tt.to, page.To)
			assert.Equal(t, tt.last, page.LastPage)
			assert.NotNil(t, page.Items)
		})
	}
}

func TestRunLeavesBaseQueryUntouched(t *testing.T) {
	db := openTestDB(t)
	seedStudents(t, db, "Ani", "Budi")
	base := db.Model(&student{}).Where("school_id = ?", 1)

	_, err := Run[student](base, testRegistry(), DefaultStages, Params{Query: "ani"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, base.Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
