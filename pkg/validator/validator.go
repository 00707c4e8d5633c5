package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the format accepted by the "date" tag
const DateLayout = "2006-01-02"

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the "date" tag registered
func New() *CustomValidator {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("date", isDate)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// isDate accepts YYYY-MM-DD calendar dates on string and *string fields
func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
