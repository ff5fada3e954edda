package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the payload of every access token issued by the token endpoint.
// Roles is informational; requests resolve roles again from group membership.
type AccessClaims struct {
	UserID string   `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
	Scope  string   `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// ParsedUserID returns the uid claim as a user id.
func (c *AccessClaims) ParsedUserID() (uint, error) {
	if c.UserID == "" {
		return 0, errors.New("token missing required 'uid' claim")
	}
	id, err := strconv.ParseUint(c.UserID, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid uid claim %q", c.UserID)
	}
	return uint(id), nil
}

// AccessTokenGenerator signs access tokens for go-oauth2's manager.
type AccessTokenGenerator struct {
	key    []byte
	method jwt.SigningMethod
	roles  services.RoleService
}

func NewAccessTokenGenerator(key []byte, method jwt.SigningMethod, roles services.RoleService) *AccessTokenGenerator {
	return &AccessTokenGenerator{key: key, method: method, roles: roles}
}

// Token implements oauth2.AccessGenerate. Refresh tokens are never issued.
func (g *AccessTokenGenerator) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	// Password grants carry the user; client_credentials act as the client owner.
	claims := &AccessClaims{UserID: data.UserID}
	if claims.UserID == "" {
		claims.UserID = data.Client.GetUserID()
	}
	userID, err := claims.ParsedUserID()
	if err != nil {
		return "", "", fmt.Errorf("cannot generate token: %w", err)
	}

	roles, err := g.roles.ResolveRoles(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve user roles: %w", err)
	}
	for _, r := range roles.Slice() {
		claims.Roles = append(claims.Roles, string(r))
	}
	claims.Scope = data.TokenInfo.GetScope()

	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Audience:  jwt.ClaimStrings{data.Client.GetID()},
		IssuedAt:  jwt.NewNumericDate(createdAt),
		ExpiresAt: jwt.NewNumericDate(createdAt.Add(data.TokenInfo.GetAccessExpiresIn())),
	}

	access, err := jwt.NewWithClaims(g.method, claims).SignedString(g.key)
	if err != nil {
		return "", "", err
	}
	return access, "", nil
}
