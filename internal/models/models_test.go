package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSetAdminSatisfiesEveryRole(t *testing.T) {
	admin := NewRoleSet(RoleCustomer, RoleAdmin)

	for _, r := range []Role{RoleCustomer, RoleManager, RoleDeliveryCrew, RoleAdmin} {
		assert.True(t, admin.Has(r), "admin should satisfy %s", r)
	}
	assert.False(t, admin.Holds(RoleManager))
}

func TestRoleSetHasAny(t *testing.T) {
	crew := NewRoleSet(RoleCustomer, RoleDeliveryCrew)

	assert.True(t, crew.HasAny(RoleManager, RoleDeliveryCrew))
	assert.False(t, crew.HasAny(RoleManager, RoleAdmin))
	assert.Equal(t, []Role{RoleCustomer, RoleDeliveryCrew}, crew.Slice())
}

func TestRoleGroupName(t *testing.T) {
	name, err := RoleManager.GroupName()
	require.NoError(t, err)
	assert.Equal(t, ManagerGroup, name)

	name, err = RoleDeliveryCrew.GroupName()
	require.NoError(t, err)
	assert.Equal(t, DeliveryCrewGroup, name)

	_, err = RoleAdmin.GroupName()
	assert.Error(t, err)
}

func TestUserPassword(t *testing.T) {
	user := &User{Username: "mario", Password: "s3cret-pass"}
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestOAuthClientVerifyPassword(t *testing.T) {
	user := &User{Password: "client-secret"}
	require.NoError(t, user.HashPassword())
	client := &OAuthClient{ID: "web", Secret: user.Password, UserID: 12}

	assert.True(t, client.VerifyPassword("client-secret"))
	assert.False(t, client.VerifyPassword("nope"))
	assert.Equal(t, "12", client.GetUserID())
	assert.Equal(t, "", (&OAuthClient{}).GetUserID())
}

func TestOAuthClientAllowsGrant(t *testing.T) {
	client := &OAuthClient{GrantTypes: "password client_credentials"}

	assert.True(t, client.AllowsGrant("password"))
	assert.True(t, client.AllowsGrant("client_credentials"))
	assert.False(t, client.AllowsGrant("authorization_code"))
	assert.False(t, (&OAuthClient{}).AllowsGrant("password"))
}

func TestOrderOwnershipAndAssignment(t *testing.T) {
	crew := uint(42)
	order := &Order{ID: 7, UserID: 3, DeliveryCrewID: &crew, Total: decimal.RequireFromString("22.00")}

	assert.True(t, order.IsOwnedBy(3))
	assert.False(t, order.IsOwnedBy(42))
	assert.True(t, order.IsAssignedTo(42))
	assert.False(t, order.IsAssignedTo(3))
	assert.Equal(t, "placed", order.StatusLabel())

	order.Status = StatusDelivered
	assert.Equal(t, "delivered", order.StatusLabel())
	assert.False(t, (&Order{}).IsAssignedTo(0))
}
