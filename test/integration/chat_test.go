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

func TestChatBetweenParticipants(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio con chat")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusAccepted)
	chatBase := "/api/v1/chat/solicitudes/" + request.ID

	msgBody := map[string]interface{}{"texto": "Hola, llego a las 10"}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, chatBase+"/mensajes", clientToken, msgBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, chatBase+"/mensajes", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Hola, llego a las 10")

	// The worker marks the client's message as read.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, chatBase+"/leidos", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var marked struct {
		Marked int64 `json:"mensajes_marcados"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &marked))
	assert.Equal(t, int64(1), marked.Marked)

	// Marking again touches nothing.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, chatBase+"/leidos", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &marked))
	assert.Equal(t, int64(0), marked.Marked)
}

func TestChatRejectsOutsiders(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio privado")
	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusAccepted)
	chatBase := "/api/v1/chat/solicitudes/" + request.ID

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, chatBase+"/mensajes", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "not a participant")

	msgBody := map[string]interface{}{"texto": "dejenme entrar"}
	res, _ = ts.SendRequest(t, tx, http.MethodPost, chatBase+"/mensajes", strangerToken, msgBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestChatMessageNeedsContent(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, _, profile := helpers.CreateAndLoginWorker(t, ts, tx)
	service := helpers.CreateApprovedService(t, tx, profile.ID, "Servicio sin contenido")
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateRequestFixture(t, tx, service.ID, client.ID, profile.ID, models.RequestStatusAccepted)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/chat/solicitudes/"+request.ID+"/mensajes", clientToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "texto or archivo")
}
