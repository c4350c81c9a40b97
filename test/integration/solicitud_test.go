package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/internal/services/dto"
	"skilllink_backend/test/helpers"
)

func addAvailability(t *testing.T, tx *gorm.DB, workerID, day, start, end string) {
	t.Helper()
	s, err := dto.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := dto.ParseTimeOfDay(end)
	require.NoError(t, err)
	entry := &models.Availability{
		WorkerID:  workerID,
		Day:       day,
		StartTime: s,
		EndTime:   e,
	}
	require.NoError(t, tx.Create(entry).Error)
}

func TestCreateRequestHappyPath(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio solicitable")
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	body := map[string]interface{}{
		"servicio_id": service.ID,
		"mensaje":     "Necesito ayuda con una fuga",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes", clientToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var request struct {
		ID       string `json:"id"`
		Status   string `json:"estado"`
		WorkerID string `json:"trabajador_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &request))
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, profile.ID, request.WorkerID)
}

func TestCreateRequestOwnServiceRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Mi propio servicio")

	body := map[string]interface{}{"servicio_id": service.ID}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes", workerToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "your own service")
}

func TestCreateRequestUnapprovedServiceRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	pending := &models.Service{
		WorkerID:          profile.ID,
		Title:             "Servicio sin aprobar",
		Description:       "Descripcion larga del servicio sin aprobar.",
		Category:          "plomeria",
		Price:             90,
		PublicationStatus: models.PublicationStatusPending,
	}
	require.NoError(t, tx.Create(pending).Error)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	body := map[string]interface{}{"servicio_id": pending.ID}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes", clientToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "approved services")
}

func TestCreateRequestWindowMustBeCovered(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio con horario")
	addAvailability(t, tx, profile.ID, "lunes", "09:00", "12:00")

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	inside := map[string]interface{}{
		"servicio_id": service.ID,
		"dia":         "lunes",
		"hora_inicio": "10:00",
		"hora_fin":    "11:00",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes", clientToken, inside)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	outside := map[string]interface{}{
		"servicio_id": service.ID,
		"dia":         "lunes",
		"hora_inicio": "11:00",
		"hora_fin":    "13:00",
	}
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes", clientToken, outside)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "not available")

	partial := map[string]interface{}{
		"servicio_id": service.ID,
		"dia":         "lunes",
	}
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes", clientToken, partial)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "provided together")
}

func TestRequestLifecycleTransitions(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio con ciclo")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusPending)

	// The client cannot drive the lifecycle.
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes/"+request.ID+"/aceptar", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes/"+request.ID+"/aceptar", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, models.RequestStatusAccepted)

	// pendiente is no longer reachable; rechazar from aceptada is off-machine.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes/"+request.ID+"/rechazar", workerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes/"+request.ID+"/finalizar", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, models.RequestStatusCompleted)

	// Terminal states are immutable.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/solicitudes/"+request.ID+"/cancelar", workerToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestRequestVisibility(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio visible")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusPending)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/solicitudes/cliente", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, request.ID)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/solicitudes/trabajador", workerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, request.ID)

	// Outsiders cannot read someone else's request.
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/solicitudes/"+request.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/solicitudes/"+request.ID, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
