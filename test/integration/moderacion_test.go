package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
	"skilllink_backend/test/helpers"
)

// createFlaggedService publishes a service whose title trips the word scan.
func createFlaggedService(t *testing.T, ts *helpers.TestServer, tx *gorm.DB, workerToken string) string {
	t.Helper()

	body := map[string]interface{}{
		"titulo":      "Venta de armas usadas",
		"descripcion": "Descripcion suficientemente larga del anuncio.",
		"categoria":   "otros",
		"precio":      50,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", workerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var service struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &service))
	return service.ID
}

func findModerationRecord(t *testing.T, tx *gorm.DB, serviceID string) *models.ModerationRecord {
	t.Helper()
	var record models.ModerationRecord
	require.NoError(t, tx.Where("servicio_id = ?", serviceID).First(&record).Error)
	return &record
}

func TestModerationApproveFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	serviceID := createFlaggedService(t, ts, tx, workerToken)
	record := findModerationRecord(t, tx, serviceID)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/moderacion/pendientes", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, record.ID)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/moderacion/"+record.ID+"/aprobar", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resolved struct {
		Status       string  `json:"estado"`
		ReviewedByID *string `json:"revisado_por_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resolved))
	assert.Equal(t, models.PublicationStatusApproved, resolved.Status)
	require.NotNil(t, resolved.ReviewedByID)
	assert.Equal(t, admin.ID, *resolved.ReviewedByID)

	// The outcome is mirrored onto the service, which goes live.
	var service models.Service
	require.NoError(t, tx.First(&service, "id = ?", serviceID).Error)
	assert.Equal(t, models.PublicationStatusApproved, service.PublicationStatus)
	assert.NotNil(t, service.PublishedAt)
}

func TestModerationRejectFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	serviceID := createFlaggedService(t, ts, tx, workerToken)
	record := findModerationRecord(t, tx, serviceID)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/moderacion/"+record.ID+"/rechazar-servicio", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var service models.Service
	require.NoError(t, tx.First(&service, "id = ?", serviceID).Error)
	assert.Equal(t, models.PublicationStatusRejected, service.PublicationStatus)
	assert.Nil(t, service.PublishedAt)
}

func TestModerationResolveIsFinal(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	serviceID := createFlaggedService(t, ts, tx, workerToken)
	record := findModerationRecord(t, tx, serviceID)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/moderacion/"+record.ID+"/aprobar", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/moderacion/"+record.ID+"/rechazar-servicio", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "already been resolved")
}

func TestModerationIsAdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/moderacion/pendientes", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
