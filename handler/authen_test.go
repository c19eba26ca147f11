package handler_test

import (
	"net/http"
	"testing"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/model"

	"github.com/stretchr/testify/require"
)

func TestSignupCreatesStudentByDefault(t *testing.T) {
	app := setupApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    "new@test.local",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user model.User
	require.NoError(t, database.DB.Where("email = ?", "new@test.local").First(&user).Error)
	require.Equal(t, constants.ROLE_STUDENT, user.Role)
	require.True(t, user.IsActive)
	require.False(t, user.IsApprovedLister)
	require.NotEqual(t, "secret123", user.Password)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	app := setupApp(t)

	createUser(t, "taken@test.local", constants.ROLE_STUDENT, false)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    "taken@test.local",
		"password": "secret123",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, constants.EMAIL_TAKEN, body["message"])
}

func TestSignupRejectsBadInput(t *testing.T) {
	app := setupApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    "not-an-email",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"email":    "short@test.local",
		"password": "abc",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMeReturnsCaller(t *testing.T) {
	app := setupApp(t)

	user, token := createUser(t, "me@test.local", constants.ROLE_COACHING, true)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	require.Equal(t, user.Email, data["email"])
	require.Equal(t, user.Role, data["role"])
	_, leaked := data["password"]
	require.False(t, leaked)
}

func TestTokensHonorSecretSetAfterStartup(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	app := setupApp(t)

	user, token := createUser(t, "late@test.local", constants.ROLE_STUDENT, false)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	require.Equal(t, user.Email, data["email"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := setupApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/auth/me", "not.a.jwt", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
