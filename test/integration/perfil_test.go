package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilllink_backend/test/helpers"
)

func TestCreateAndReadProfile(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	// Nothing to read before the profile exists.
	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/perfiles/mi", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	createBody := map[string]interface{}{
		"categoria_principal": "electricidad",
		"descripcion":         "Instalaciones electricas residenciales",
		"experiencia":         8,
		"habilidades":         "cableado, tableros, iluminacion",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/perfiles", token, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var profile struct {
		ID           string `json:"id"`
		MainCategory string `json:"categoria_principal"`
		Experience   int    `json:"experiencia"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &profile))
	assert.Equal(t, "electricidad", profile.MainCategory)
	assert.Equal(t, 8, profile.Experience)

	// One profile per user.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/perfiles", token, createBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// The public card is readable without a session.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/perfiles/"+profile.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "electricidad")
}

func TestUpdateProfile(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	updateBody := map[string]interface{}{
		"descripcion": "Ahora tambien instalaciones de gas",
		"experiencia": 10,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/perfiles/mi", token, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var profile struct {
		Description  string `json:"descripcion"`
		Experience   int    `json:"experiencia"`
		MainCategory string `json:"categoria_principal"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &profile))
	assert.Equal(t, "Ahora tambien instalaciones de gas", profile.Description)
	assert.Equal(t, 10, profile.Experience)
	// Untouched fields keep their value.
	assert.Equal(t, "plomeria", profile.MainCategory)
}
