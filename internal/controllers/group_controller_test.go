package controllers

import (
	"net/http"
	"testing"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryCrewGroup(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/v1/groups/delivery-crew/users"

	w := env.do(http.MethodGet, path, env.manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := decode[[]UserView](t, w)
	require.Len(t, members, 1)
	assert.Equal(t, "dave", members[0].Username)

	w = env.do(http.MethodPost, path, env.manager, gin.H{"username": "oscar"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "User oscar added to Delivery Crew group", decode[MessageResponse](t, w).Message)

	// Adding twice is accepted and keeps one membership.
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, path, env.manager, gin.H{"username": "oscar"}).Code)
	assert.Len(t, decode[[]UserView](t, env.do(http.MethodGet, path, env.manager, nil)), 2)

	w = env.do(http.MethodGet, path+"/5", env.manager, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "oscar", decode[UserView](t, w).Username)

	w = env.do(http.MethodDelete, path+"/5", env.admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, path+"/5", env.manager, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, path+"/5", env.manager, nil).Code)
}

func TestGroupErrors(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/v1/groups/delivery-crew/users"

	testCases := []struct {
		name   string
		user   *models.User
		method string
		path   string
		body   any
		status int
	}{
		{"customer cannot list", env.customer, http.MethodGet, path, nil, http.StatusForbidden},
		{"crew cannot add", env.crew, http.MethodPost, path, gin.H{"username": "carol"}, http.StatusForbidden},
		{"unknown user", env.manager, http.MethodPost, path, gin.H{"username": "ghost"}, http.StatusNotFound},
		{"missing username", env.manager, http.MethodPost, path, gin.H{}, http.StatusBadRequest},
		{"non member lookup", env.manager, http.MethodGet, path + "/4", nil, http.StatusNotFound},
		{"bad id", env.manager, http.MethodGet, path + "/x", nil, http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.user, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
