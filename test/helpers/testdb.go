package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skilllink_backend/internal/models"
)

// CreateUser inserts a user into the transaction, hashing the password when
// a raw one was provided.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.State == "" {
		user.State = models.UserStateActive
	}
	if user.RegistrationMethod == "" {
		user.RegistrationMethod = models.RegistrationMethodLocal
	}

	require.NoError(t, tx.Create(user).Error, "failed to create test user %s", user.Email)
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password, role string) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, tx, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: %s", bodyStr)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginClient creates a plain user with a unique email.
func CreateAndLoginClient(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("cliente_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Cliente Test", email, "password123", models.RoleUser)
}

// CreateAndLoginWorker creates a user with a worker profile.
func CreateAndLoginWorker(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User, *models.WorkerProfile) {
	t.Helper()
	email := fmt.Sprintf("trabajador_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, "Trabajador Test", email, "password123", models.RoleUser)

	profile := &models.WorkerProfile{
		UserID:       user.ID,
		MainCategory: "plomeria",
		Description:  "Servicios de plomeria en general",
		Experience:   5,
		State:        "activo",
	}
	require.NoError(t, tx.Create(profile).Error, "failed to create worker profile")

	return token, user, profile
}

// CreateAndLoginAdmin creates an admin account.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Admin Test", email, "password123", models.RoleAdmin)
}

// CreateApprovedService inserts a service already past both publication
// gates, as the catalog would show it.
func CreateApprovedService(t *testing.T, tx *gorm.DB, workerID, title string) *models.Service {
	t.Helper()

	now := time.Now()
	service := &models.Service{
		WorkerID:          workerID,
		Title:             title,
		Description:       "Una descripcion suficientemente larga del servicio.",
		Category:          "plomeria",
		Price:             150,
		PublicationStatus: models.PublicationStatusApproved,
		PublishedAt:       &now,
	}
	require.NoError(t, tx.Create(service).Error, "failed to create test service")
	return service
}

// CreateRequestFixture inserts a service request in the given state.
func CreateRequestFixture(t *testing.T, tx *gorm.DB, serviceID, clientID, workerID, status string) *models.ServiceRequest {
	t.Helper()

	request := &models.ServiceRequest{
		ServiceID: serviceID,
		ClientID:  clientID,
		WorkerID:  workerID,
		Status:    status,
	}
	require.NoError(t, tx.Create(request).Error, "failed to create test request")
	return request
}
