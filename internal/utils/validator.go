package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	Validate      *validator.Validate
	validatorOnce sync.Once
)

func InitValidator() {
	validatorOnce.Do(func() {
		Validate = validator.New()
		_ = Validate.RegisterValidation("moderation_status", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "approved", "rejected":
				return true
			}
			return false
		})
	})
}
