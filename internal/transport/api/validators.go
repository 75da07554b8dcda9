package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/thanhnd-dev/casso-recon/internal/extract"
)

// validateOrderRef проверяет, что значение поля целиком — распознаваемый
// номер заказа (каскад форматов тот же, что у извлечения из назначения
// платежа, других определений "валидного номера" в системе нет).
func validateOrderRef(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	code, found := extract.Extract(str)
	return found && code == strings.ToUpper(str)
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("order_ref", validateOrderRef); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
