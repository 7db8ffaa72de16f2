package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"sync"
)

var (
	Validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		Validate = validator.New()
		_ = Validate.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
			return domain.IsValidBloodType(fl.Field().String())
		})
	})
}
