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

func TestEnsureMembershipIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)

	// No row exists before the first ensure; reads never create.
	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/membresias/mi", workerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/ensure", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var membership struct {
		ID   string `json:"id"`
		Plan string `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &membership))
	assert.Equal(t, models.PlanFree, membership.Plan)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/ensure", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var second struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &second))
	assert.Equal(t, membership.ID, second.ID)

	var count int64
	tx.Model(&models.Membership{}).Where("trabajador_id = ?", profile.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnsureMembershipNeedsProfile(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/ensure", clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "worker profile is required")
}

func TestChangePlanIsAdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/ensure", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	changeBody := map[string]interface{}{
		"trabajador_id": profile.ID,
		"nuevo_plan":    models.PlanPremium,
	}

	// A worker cannot upgrade themselves.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/cambiar-plan", workerToken, changeBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/cambiar-plan", adminToken, changeBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var membership struct {
		Plan  string `json:"plan"`
		State string `json:"estado"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &membership))
	assert.Equal(t, models.PlanPremium, membership.Plan)
	assert.Equal(t, models.MembershipStateActive, membership.State)
}

func TestListMembershipsIsAdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membresias/ensure", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/membresias", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/membresias", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "membresias")
}
