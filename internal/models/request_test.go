package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionFromPending(t *testing.T) {
	assert.True(t, CanTransition(RequestStatusPending, RequestStatusAccepted))
	assert.True(t, CanTransition(RequestStatusPending, RequestStatusRejected))
	assert.True(t, CanTransition(RequestStatusPending, RequestStatusCancelled))
	assert.False(t, CanTransition(RequestStatusPending, RequestStatusCompleted))
	assert.False(t, CanTransition(RequestStatusPending, RequestStatusPending))
}

func TestCanTransitionFromAccepted(t *testing.T) {
	assert.True(t, CanTransition(RequestStatusAccepted, RequestStatusCompleted))
	assert.True(t, CanTransition(RequestStatusAccepted, RequestStatusCancelled))
	assert.False(t, CanTransition(RequestStatusAccepted, RequestStatusRejected))
	assert.False(t, CanTransition(RequestStatusAccepted, RequestStatusPending))
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	terminals := []string{
		RequestStatusRejected,
		RequestStatusCompleted,
		RequestStatusCancelled,
	}
	all := []string{
		RequestStatusPending,
		RequestStatusAccepted,
		RequestStatusRejected,
		RequestStatusCompleted,
		RequestStatusCancelled,
	}

	for _, from := range terminals {
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "unexpected edge %s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&ServiceRequest{Status: RequestStatusPending}).IsTerminal())
	assert.False(t, (&ServiceRequest{Status: RequestStatusAccepted}).IsTerminal())
	assert.True(t, (&ServiceRequest{Status: RequestStatusRejected}).IsTerminal())
	assert.True(t, (&ServiceRequest{Status: RequestStatusCompleted}).IsTerminal())
	assert.True(t, (&ServiceRequest{Status: RequestStatusCancelled}).IsTerminal())
}

func TestIsWeekDay(t *testing.T) {
	for _, d := range WeekDays {
		assert.True(t, IsWeekDay(d))
	}
	assert.False(t, IsWeekDay("monday"))
	assert.False(t, IsWeekDay(""))
}
