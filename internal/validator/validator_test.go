package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Email string  `json:"email" validate:"required,email"`
	Day   string  `json:"dia" validate:"omitempty,is-week-day"`
	Plan  string  `json:"plan" validate:"omitempty,is-plan"`
	Start string  `json:"hora_inicio" validate:"omitempty,is-time-of-day"`
	Price float64 `json:"precio" validate:"omitempty,gt=0"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "not-an-email"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "email")
}

func TestValidateWeekDayRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Day: "lunes"}))
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Day: "domingo"}))

	err := v.Validate(&sampleDTO{Email: "a@b.com", Day: "funday"})
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Contains(t, verr.Errors, "dia")
}

func TestValidatePlanRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Plan: "premium"}))
	assert.Error(t, v.Validate(&sampleDTO{Email: "a@b.com", Plan: "gold"}))
}

func TestValidateTimeOfDayRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Start: "09:30"}))
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Start: "23:59"}))
	assert.Error(t, v.Validate(&sampleDTO{Email: "a@b.com", Start: "24:00"}))
	assert.Error(t, v.Validate(&sampleDTO{Email: "a@b.com", Start: "9:30"}))
}

func TestValidatePositivePrice(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Price: 10}))
	assert.Error(t, v.Validate(&sampleDTO{Email: "a@b.com", Price: -5}))
}
