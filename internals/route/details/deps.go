package details

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	qb "schoolku_backend/internals/helpers/querybuilder"
)

// Deps dibagi ke semua controller.
type Deps struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scopes    *qb.Registry
}
