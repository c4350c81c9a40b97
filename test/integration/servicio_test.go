package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilllink_backend/internal/models"
	"skilllink_backend/test/helpers"
)

func createServiceBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"titulo":      title,
		"descripcion": "Reparacion de tuberias y grifos a domicilio.",
		"categoria":   "plomeria",
		"precio":      120.5,
	}
}

func TestCreateServiceRequiresProfile(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", token, createServiceBody("Plomeria basica"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "worker profile is required")
}

func TestCreateServiceCleanIsPublished(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", token, createServiceBody("Plomeria basica"))
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var service struct {
		ID                string `json:"id"`
		PublicationStatus string `json:"estado_publicacion"`
		WordsDetected     bool   `json:"palabras_detectadas"`
		PublishedAt       string `json:"fecha_publicacion"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &service))
	assert.Equal(t, models.PublicationStatusApproved, service.PublicationStatus)
	assert.False(t, service.WordsDetected)
	assert.NotEmpty(t, service.PublishedAt)

	// A clean service never opens a moderation record.
	var count int64
	tx.Model(&models.ModerationRecord{}).Where("servicio_id = ?", service.ID).Count(&count)
	assert.Zero(t, count)

	_ = profile
}

func TestCreateServiceFlaggedStaysPending(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	body := createServiceBody("Se venden armas de coleccion")
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var service struct {
		ID                string `json:"id"`
		PublicationStatus string `json:"estado_publicacion"`
		WordsDetected     bool   `json:"palabras_detectadas"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &service))
	assert.Equal(t, models.PublicationStatusPending, service.PublicationStatus)
	assert.True(t, service.WordsDetected)

	var record models.ModerationRecord
	require.NoError(t, tx.Where("servicio_id = ?", service.ID).First(&record).Error)
	assert.Equal(t, models.PublicationStatusPending, record.Status)
	assert.Contains(t, record.DetectedWords, "arma")
}

func TestFreePlanServiceLimit(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	for i := 0; i < models.FreePlanServiceLimit; i++ {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", token,
			createServiceBody(fmt.Sprintf("Servicio numero %d", i+1)))
		require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", token,
		createServiceBody("Servicio de mas"))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Free plan limit")
}

func TestPremiumPlanHasNoLimit(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)

	membership := &models.Membership{
		WorkerID: profile.ID,
		Plan:     models.PlanPremium,
		State:    models.MembershipStateActive,
	}
	require.NoError(t, tx.Create(membership).Error)

	for i := 0; i < models.FreePlanServiceLimit+2; i++ {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/servicios", token,
			createServiceBody(fmt.Sprintf("Servicio premium %d", i+1)))
		require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	}
}

func TestPublicCatalogShowsOnlyApproved(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)

	approved := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio aprobado visible")

	pending := &models.Service{
		WorkerID:          profile.ID,
		Title:             "Servicio pendiente oculto",
		Description:       "Descripcion larga del servicio pendiente.",
		Category:          "plomeria",
		Price:             80,
		PublicationStatus: models.PublicationStatusPending,
	}
	require.NoError(t, tx.Create(pending).Error)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/servicios/publicos", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, approved.Title)
	assert.NotContains(t, bodyStr, pending.Title)

	// Fetching the pending one directly is a 404, not a 403.
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/servicios/publicos/"+pending.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/servicios/publicos/"+approved.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUpdateServiceOwnershipEnforced(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, ownerProfile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, ownerProfile.ID, "Servicio de otro")

	intruderToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	updateBody := map[string]interface{}{"titulo": "Titulo secuestrado"}
	res, _ := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/servicios/"+service.ID, intruderToken, updateBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
