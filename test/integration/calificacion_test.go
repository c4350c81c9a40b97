package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilllink_backend/internal/models"
	"skilllink_backend/test/helpers"
)

func TestRateCompletedRequest(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio calificable")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusCompleted)

	body := map[string]interface{}{
		"solicitud_id": request.ID,
		"puntaje":      5,
		"comentario":   "Excelente trabajo",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/calificaciones", clientToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// The denormalized worker average is recomputed on write.
	var updated models.WorkerProfile
	require.NoError(t, tx.First(&updated, "id = ?", profile.ID).Error)
	assert.InDelta(t, 5.0, updated.Rating, 0.001)
}

func TestRateUncompletedRequestRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio pendiente de cierre")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusAccepted)

	body := map[string]interface{}{
		"solicitud_id": request.ID,
		"puntaje":      4,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/calificaciones", clientToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "completed requests")
}

func TestRateTwiceRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio con doble voto")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusCompleted)

	body := map[string]interface{}{
		"solicitud_id": request.ID,
		"puntaje":      4,
	}
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/calificaciones", clientToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/calificaciones", clientToken, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already been rated")
}

func TestOnlyClientCanRate(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio ajeno")
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusCompleted)

	body := map[string]interface{}{
		"solicitud_id": request.ID,
		"puntaje":      1,
	}
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/calificaciones", workerToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestWorkerRatingsAverage(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio promediado")

	scores := []int{5, 3}
	for _, score := range scores {
		clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)
		request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusCompleted)

		body := map[string]interface{}{
			"solicitud_id": request.ID,
			"puntaje":      score,
		}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/calificaciones", clientToken, body)
		require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/calificaciones/trabajador/"+profile.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Ratings []json.RawMessage `json:"calificaciones"`
		Average float64           `json:"promedio"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Len(t, response.Ratings, 2)
	assert.InDelta(t, 4.0, response.Average, 0.001)
}
