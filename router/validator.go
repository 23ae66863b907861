package router

import (
	"github.com/go-playground/validator/v10"

	"hoacuong/entities"
)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("quality", validateQuality)
	return &Validator{v: v}
}

func (cv *Validator) Validate(i any) error {
	return cv.v.Struct(i)
}

func validateQuality(fl validator.FieldLevel) bool {
	q := entities.QualityType(fl.Field().String())
	for _, known := range entities.QualityTypes() {
		if q == known {
			return true
		}
	}
	return false
}
