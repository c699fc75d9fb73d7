package dto

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jvamontagens/jva_backend/internal/utils"
)

var registerOnce sync.Once

// RegisterValidators adds the document validators used in binding tags
// ("cnpj", "cpf") to gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return utils.IsCNPJ(fl.Field().String())
		}); err != nil {
			return
		}
		err = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			_, nerr := utils.NormalizeCPF(fl.Field().String())
			return nerr == nil
		})
	})
	return err
}
