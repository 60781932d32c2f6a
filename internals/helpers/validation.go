package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

// satu translator per validator
var translators sync.Map // *validator.Validate → ut.Translator

// NewValidator: validator dengan nama field dari tag json/query dan pesan
// error berbahasa Inggris yang sudah diterjemahkan. Panic kalau wiring
// translator gagal; ini hanya dipanggil saat startup.
func NewValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	english := en.New()
	uni := ut.New(english, english)
	translator, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("validator: translator en tidak ditemukan")
	}
	if err := enTranslations.RegisterDefaultTranslations(v, translator); err != nil {
		return nil, fmt.Errorf("validator: register default translations: %w", err)
	}
	if err := v.RegisterValidation("school_year", isSchoolYear); err != nil {
		return nil, fmt.Errorf("validator: register school_year: %w", err)
	}
	err := v.RegisterTranslation("school_year", translator,
		func(t ut.Translator) error {
			return t.Add("school_year", "{0} must look like 2023/2024", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("school_year", fe.Field())
			return msg
		},
	)
	if err != nil {
		return nil, fmt.Errorf("validator: register school_year translation: %w", err)
	}

	translators.Store(v, translator)
	return v, nil
}

// isSchoolYear: "YYYY/YYYY" dengan tahun kedua = tahun pertama + 1.
func isSchoolYear(fl validator.FieldLevel) bool {
	a, b, ok := strings.Cut(fl.Field().String(), "/")
	if !ok || len(a) != 4 || len(b) != 4 {
		return false
	}
	y1, err1 := strconv.Atoi(a)
	y2, err2 := strconv.Atoi(b)
	return err1 == nil && err2 == nil && y2 == y1+1
}

func translate(v *validator.Validate, fe validator.FieldError) string {
	if t, ok := translators.Load(v); ok {
		return fe.Translate(t.(ut.Translator))
	}
	return fe.Error()
}

// ValidationMessages mengubah validator.ValidationErrors jadi map field → pesan.
func ValidationMessages(v *validator.Validate, err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], translate(v, fe))
	}
	return out
}

// BindAndValidate: parse body lalu validasi. Error sudah berupa response.
func BindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return false, JsonValidationError(c, ValidationMessages(v, err))
		}
	}
	return true, nil
}
