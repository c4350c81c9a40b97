package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"skilllink_backend/internal/models"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-week-day", validateWeekDay)
	mustRegister("is-plan", validatePlan)
	mustRegister("is-time-of-day", validateTimeOfDay)
	mustRegister("is-user-state", validateUserState)
}

// Empty values pass; 'required' owns presence checks.

func validateWeekDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsWeekDay(value)
}

func validatePlan(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == models.PlanFree || value == models.PlanPremium
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return timeOfDayRe.MatchString(value)
}

func validateUserState(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.UserStateActive, models.UserStateBlocked, models.UserStateDeleted:
		return true
	}
	return false
}
