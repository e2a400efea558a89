package dto

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// personNamePattern matches display names: 2 to 50 letters or spaces.
var personNamePattern = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)

func ValidPersonName(name string) bool {
	return personNamePattern.MatchString(name)
}

// RegisterValidators installs the custom binding tags used by the auth DTOs
// on gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return ValidPersonName(fl.Field().String())
	})
}
