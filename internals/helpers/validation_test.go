package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name"  validate:"required"`
	Year  string `json:"year"  validate:"omitempty,school_year"`
	Score int    `json:"score" validate:"min=0,max=100"`
}

func TestValidationMessages(t *testing.T) {
	v := NewValidator()

	t.Run("Should key messages by json field name", func(t *testing.T) {
		err := v.Struct(sampleRequest{Score: 101})
		require.Error(t, err)
		msgs := ValidationMessages(v, err)
		assert.Equal(t, []string{"name is a required field"}, msgs["name"])
		assert.Contains(t, msgs["score"][0], "score must be 100 or less")
	})

	t.Run("Should validate school years", func(t *testing.T) {
		assert.NoError(t, v.Struct(sampleRequest{Name: "x", Year: "2023/2024"}))

		err := v.Struct(sampleRequest{Name: "x", Year: "2023/2025"})
		require.Error(t, err)
		assert.Equal(t, []string{"year must look like 2023/2024"}, ValidationMessages(v, err)["year"])
	})
}

func TestNewValidatorWiring(t *testing.T) {
	t.Run("Should register translations without error", func(t *testing.T) {
		v, err := newValidator()
		require.NoError(t, err)
		_, ok := translators.Load(v)
		assert.True(t, ok)
	})

	t.Run("Should keep a translator per validator", func(t *testing.T) {
		a, b := NewValidator(), NewValidator()
		for _, v := range []*validator.Validate{a, b} {
			err := v.Struct(sampleRequest{})
			require.Error(t, err)
			assert.Equal(t, []string{"name is a required field"}, ValidationMessages(v, err)["name"])
		}
	})
}
