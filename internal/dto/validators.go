package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// RegisterCustomValidators registers custom binding tags with gin's validator
// engine. Must be called once during startup, before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("cronspec", validateCronSpec)
}

// validateCronSpec accepts any schedule the standard 5-field cron parser
// accepts (including @daily style descriptors).
func validateCronSpec(fl validator.FieldLevel) bool {
	spec, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := cron.ParseStandard(spec)
	return err == nil
}
