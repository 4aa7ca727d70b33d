package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"vidtube/internal/api/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSuccess(t *testing.T) {
	r, _ := newTestServer(t)

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register",
		map[string]string{
			"username":  "Alice",
			"email":     "alice@example.com",
			"full_name": "Alice Example",
			"password":  "password123",
		},
		map[string]string{"avatar": "avatar.png"},
	)
	w, env := doRequest(t, r, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.StatusCode)

	var user struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterWithoutAvatar(t *testing.T) {
	r, _ := newTestServer(t)

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register",
		map[string]string{
			"username":  "alice",
			"email":     "alice@example.com",
			"full_name": "Alice",
			"password":  "password123",
		},
		nil,
	)
	w, env := doRequest(t, r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "alice")

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register",
		map[string]string{
			"username":  "alice",
			"email":     "other@example.com",
			"full_name": "Alice Again",
			"password":  "password123",
		},
		map[string]string{"avatar": "avatar.png"},
	)
	w, env := doRequest(t, r, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func TestLoginSetsTokenCookies(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "alice")

	w, env := doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/login",
		map[string]string{"username": "alice", "password": "password123"}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	cookies := w.Result().Cookies()
	names := map[string]*http.Cookie{}
	for _, c := range cookies {
		names[c.Name] = c
	}
	require.Contains(t, names, middleware.AccessTokenCookie)
	require.Contains(t, names, middleware.RefreshTokenCookie)
	assert.True(t, names[middleware.AccessTokenCookie].HttpOnly)
	assert.True(t, names[middleware.RefreshTokenCookie].HttpOnly)
	assert.NotEmpty(t, names[middleware.AccessTokenCookie].Value)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "alice")

	w, env := doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/login",
		map[string]string{"username": "alice", "password": "wrong-password"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestMeRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptestNewGet("/api/v1/users/me")
	w, env := doRequest(t, r, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestMeWithBearerToken(t *testing.T) {
	r, _ := newTestServer(t)
	userID, token := registerAndLogin(t, r, "alice")

	w, env := doRequest(t, r, withBearer(httptestNewGet("/api/v1/users/me"), token))

	require.Equal(t, http.StatusOK, w.Code)
	var user struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestMeWithAccessTokenCookie(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerAndLogin(t, r, "alice")

	req := httptestNewGet("/api/v1/users/me")
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	w, _ := doRequest(t, r, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshWithBodyToken(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "alice")

	_, env := doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/login",
		map[string]string{"username": "alice", "password": "password123"}))
	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, env := doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/refresh-token",
		map[string]string{"refresh_token": login.RefreshToken}))

	require.Equal(t, http.StatusOK, w.Code)
	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshWithoutToken(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/refresh-token", map[string]string{}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "alice")

	_, env := doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/login",
		map[string]string{"username": "alice", "password": "password123"}))
	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, _ := doRequest(t, r, withBearer(
		httptestNewPost("/api/v1/users/logout"), login.AccessToken))
	require.Equal(t, http.StatusOK, w.Code)

	// 登出后旧刷新令牌不能再换新
	w, env = doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/refresh-token",
		map[string]string{"refresh_token": login.RefreshToken}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestChangePassword(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerAndLogin(t, r, "alice")

	w, env := doRequest(t, r, withBearer(jsonRequest(t, http.MethodPost, "/api/v1/users/change-password",
		map[string]string{"old_password": "wrong-password", "new_password": "newpassword"}), token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, _ = doRequest(t, r, withBearer(jsonRequest(t, http.MethodPost, "/api/v1/users/change-password",
		map[string]string{"old_password": "password123", "new_password": "newpassword"}), token))
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, r, jsonRequest(t, http.MethodPost, "/api/v1/users/login",
		map[string]string{"username": "alice", "password": "newpassword"}))
	assert.Equal(t, http.StatusOK, w.Code)
}
