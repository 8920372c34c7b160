package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"barbershop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewOwnerComesFromClaims(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	intruder := env.createUser(t, "intruder@example.com", models.RoleUser, "secret123")
	token := env.tokenFor(t, user)

	// The body tries to claim another user's id; it must be ignored.
	w := env.doJSON(t, http.MethodPost, "/api/Reviews", map[string]interface{}{
		"review": "Great fade, will come back",
		"rating": 5,
		"userId": intruder.ID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeBody(t, w)
	assert.EqualValues(t, user.ID, created["userId"])
	assert.Equal(t, user.FullName, created["userFullName"])

	var stored models.CustomerReview
	require.NoError(t, env.DB.First(&stored).Error)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestCreateReviewValidatesRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	token := env.tokenFor(t, user)

	for _, rating := range []int{0, 6, -1} {
		w := env.doJSON(t, http.MethodPost, "/api/Reviews", map[string]interface{}{
			"review": "out of range",
			"rating": rating,
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d must be rejected", rating)
	}
	assert.EqualValues(t, 0, countRows(t, env.DB, &models.CustomerReview{}, ""))
}

func TestReviewsArePubliclyReadable(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	require.NoError(t, env.DB.Create(&models.CustomerReview{
		Review: "Great fade", Rating: 5, UserID: user.ID,
	}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/Reviews", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Great fade", list[0]["review"])
	assert.Equal(t, user.FullName, list[0]["userFullName"], "public reviews carry the author name")
}

func TestGetMyReviewsListsOnlyOwn(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user@example.com", models.RoleUser, "secret123")
	other := env.createUser(t, "other@example.com", models.RoleUser, "secret123")

	require.NoError(t, env.DB.Create(&models.CustomerReview{Review: "mine", Rating: 4, UserID: user.ID}).Error)
	require.NoError(t, env.DB.Create(&models.CustomerReview{Review: "theirs", Rating: 2, UserID: other.ID}).Error)

	w := env.doJSON(t, http.MethodGet, "/api/Reviews/me", nil, env.tokenFor(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0]["review"])
}

func TestDeleteReviewOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com", models.RoleUser, "secret123")
	other := env.createUser(t, "other@example.com", models.RoleUser, "secret123")

	review := models.CustomerReview{Review: "Great fade", Rating: 5, UserID: owner.ID}
	require.NoError(t, env.DB.Create(&review).Error)
	path := fmt.Sprintf("/api/Reviews/%d", review.ID)

	// Someone else holding a valid primary key still sees not found.
	w := env.doJSON(t, http.MethodDelete, path, nil, env.tokenFor(t, other))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, 1, countRows(t, env.DB, &models.CustomerReview{}, ""))

	// The owner can delete; a repeat is a clean 404.
	ownerToken := env.tokenFor(t, owner)
	assert.Equal(t, http.StatusOK, env.doJSON(t, http.MethodDelete, path, nil, ownerToken).Code)
	assert.Equal(t, http.StatusNotFound, env.doJSON(t, http.MethodDelete, path, nil, ownerToken).Code)
}
