package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilllink_backend/test/helpers"
)

func TestAvailabilityCRUD(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)

	createBody := map[string]interface{}{
		"dia":         "martes",
		"hora_inicio": "09:00",
		"hora_fin":    "13:00",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/disponibilidad", token, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var entry struct {
		ID        string `json:"id"`
		Day       string `json:"dia"`
		StartTime string `json:"hora_inicio"`
		EndTime   string `json:"hora_fin"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &entry))
	assert.Equal(t, "martes", entry.Day)
	assert.Equal(t, "09:00", entry.StartTime)
	assert.Equal(t, "13:00", entry.EndTime)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/disponibilidad/mias", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, entry.ID)

	updateBody := map[string]interface{}{
		"dia":         "martes",
		"hora_inicio": "10:00",
		"hora_fin":    "14:00",
	}
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/disponibilidad/"+entry.ID, token, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "10:00")

	// Workers' schedules are public for booking.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/disponibilidad/trabajador/"+profile.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, entry.ID)

	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/disponibilidad/"+entry.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/disponibilidad/mias", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, entry.ID)
}

func TestAvailabilityValidation(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	badDay := map[string]interface{}{
		"dia":         "monday",
		"hora_inicio": "09:00",
		"hora_fin":    "13:00",
	}
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/disponibilidad", token, badDay)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	badWindow := map[string]interface{}{
		"dia":         "martes",
		"hora_inicio": "13:00",
		"hora_fin":    "09:00",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/disponibilidad", token, badWindow)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "hora_fin")
}

func TestAvailabilityOwnershipEnforced(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	createBody := map[string]interface{}{
		"dia":         "viernes",
		"hora_inicio": "08:00",
		"hora_fin":    "12:00",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/disponibilidad", ownerToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var entry struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &entry))

	intruderToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/disponibilidad/"+entry.ID, intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
