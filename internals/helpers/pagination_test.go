package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/helpers/querybuilder"
)

func parse(t *testing.T, target string, sortable ...string) (querybuilder.Params, error) {
	t.Helper()
	var (
		got    querybuilder.Params
		gotErr error
	)
	app := fiber.New()
	v := NewValidator()
	app.Get("/", func(c *fiber.Ctx) error {
		got, gotErr = ParseListQuery(c, v, sortable...)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	return got, gotErr
}

func TestParseListQuery(t *testing.T) {
	t.Run("Should read every list parameter", func(t *testing.T) {
		p, err := parse(t, "/?filter%5Bq%5D=ani&sort_by=name&sort_direction=DESC&per_page=20&page=2", "name")
		require.NoError(t, err)
		assert.Equal(t, querybuilder.Params{
			Query: "ani", SortBy: "name", SortDirection: "desc", PerPage: 20, Page: 2,
		}, p)
	})

	t.Run("Should accept q as an alias of filter[q]", func(t *testing.T) {
		p, err := parse(t, "/?q=budi")
		require.NoError(t, err)
		assert.Equal(t, "budi", p.Query)
	})

	t.Run("Should leave defaults to the pipeline", func(t *testing.T) {
		p, err := parse(t, "/")
		require.NoError(t, err)
		assert.Zero(t, p)
	})

	t.Run("Should collect every invalid field", func(t *testing.T) {
		_, err := parse(t, "/?per_page=7&page=x&sort_by=secret&sort_direction=up", "name")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 4)
		assert.Equal(t, []string{"page must be a number"}, ve.Fields["page"])
		assert.Contains(t, ve.Fields["per_page"][0], "per_page must be one of")
	})

	t.Run("Should reject sort_by when the entity declares no sortable fields", func(t *testing.T) {
		_, err := parse(t, "/?sort_by=name")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "sort_by")
	})
}
