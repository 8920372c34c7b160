package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"barbershop-backend/models"
	"barbershop-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileOwn(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/Users/profile/%d", user.ID), nil, env.tokenFor(t, user))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	profile := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "user@example.com", profile["email"])
	assert.Equal(t, models.RoleUser, profile["role"])
	_, exposesHash := profile["passwordHash"]
	assert.False(t, exposesHash)
}

func TestGetProfileOfAnotherUserIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	victim := env.createUser(t, "victim@example.com", models.RoleUser, "secret123")

	// An existing id that is not the caller's own answers exactly like an
	// unknown id.
	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/Users/profile/%d", victim.ID), nil, env.tokenFor(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/Users/profile/424242", nil, env.tokenFor(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/Users/profile/%d", user.ID), nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileFieldsAndPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	token := env.tokenFor(t, user)

	w := env.doForm(t, http.MethodPut, fmt.Sprintf("/api/Users/update-profile/%d", user.ID), map[string]string{
		"fullName":        "Jamie Updated",
		"username":        "jamie",
		"bio":             "Regular customer",
		"location":        "Pune",
		"gender":          "Other",
		"password":        "newsecret1",
		"confirmPassword": "newsecret1",
	}, "", "", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	profile := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "Jamie Updated", profile["fullName"])
	assert.Equal(t, "jamie", profile["username"])

	var stored models.User
	require.NoError(t, env.DB.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("newsecret1", stored.PasswordHash), "password must be re-hashed")
	assert.NotNil(t, stored.UpdatedAt)
}

func TestUpdateProfileCannotChangeRole(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	token := env.tokenFor(t, user)

	w := env.doForm(t, http.MethodPut, fmt.Sprintf("/api/Users/update-profile/%d", user.ID), map[string]string{
		"fullName": "Still Jamie",
		"role":     models.RoleAdmin,
	}, "", "", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleUser, stored.Role, "role is never client-settable")
}

func TestUpdateProfileOfAnotherUserIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	victim := env.createUser(t, "victim@example.com", models.RoleUser, "secret123")

	w := env.doForm(t, http.MethodPut, fmt.Sprintf("/api/Users/update-profile/%d", victim.ID), map[string]string{
		"fullName": "Hijacked",
	}, "", "", nil, env.tokenFor(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, "id = ?", victim.ID).Error)
	assert.NotEqual(t, "Hijacked", stored.FullName)
}

func TestUpdateProfileMismatchedPasswords(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")

	w := env.doForm(t, http.MethodPut, fmt.Sprintf("/api/Users/update-profile/%d", user.ID), map[string]string{
		"fullName":        "Jamie",
		"password":        "newsecret1",
		"confirmPassword": "different1",
	}, "", "", nil, env.tokenFor(t, user))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileAvatarUpload(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	token := env.tokenFor(t, user)
	path := fmt.Sprintf("/api/Users/update-profile/%d", user.ID)

	// Bad extension is rejected and nothing changes.
	w := env.doForm(t, http.MethodPut, path, map[string]string{"fullName": "Jamie"},
		"avatar", "avatar.svg", []byte("<svg/>"), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Valid upload lands and the response carries an absolute URL.
	w = env.doForm(t, http.MethodPut, path, map[string]string{"fullName": "Jamie"},
		"avatar", "avatar.jpg", []byte("jpeg-bytes"), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	profile := decodeBody(t, w)["user"].(map[string]interface{})
	avatar, _ := profile["avatar"].(string)
	assert.Contains(t, avatar, "http://")
	assert.Contains(t, avatar, "/uploads/avatars/")
}
