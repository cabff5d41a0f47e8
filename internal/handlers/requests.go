package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/authpage/internal/authform"
)

const tagFormField = "form_field"

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator that also knows the form_field tag,
// which accepts exactly the input names of the auth form.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation(tagFormField, func(fl validator.FieldLevel) bool {
		_, err := authform.ParseField(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FieldUpdateRequest is posted by an input whenever its value changes. The
// value itself arrives under the input's own name.
type FieldUpdateRequest struct {
	Field string `form:"field" validate:"required,form_field"`
}

// Target returns the input the request updates. It must only be called
// after the request passed validation.
func (r FieldUpdateRequest) Target() authform.Field {
	return authform.Field(r.Field)
}
