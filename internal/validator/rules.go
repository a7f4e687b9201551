package validator

import (
	"log"

	"mentorlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-connection-decision", validateConnectionDecision)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is left to 'required'
	}
	return models.ValidUserRole(models.UserRole(value))
}

func validateConnectionDecision(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidDecision(models.ConnectionStatus(value))
}
