package middleware

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/policy"
	"github.com/franciscosanchezn/bytebistro-api/internal/services"
	"github.com/gin-gonic/gin"
)

const contextPrincipal = "principal"

// LoadPrincipal resolves the authenticated user's roles from group membership
// and stores the principal in the context. It must run after OAuth2Auth.
func LoadPrincipal(roles services.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
			return
		}

		set, err := roles.ResolveRoles(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User no longer exists"))
				return
			}
			log.WithError(err).WithField("user_id", userID).Error("Failed to resolve roles")
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to resolve roles"))
			return
		}

		c.Set(contextPrincipal, models.Principal{UserID: userID, Roles: set})
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by LoadPrincipal, or the zero
// principal, which every guarded operation rejects.
func PrincipalFrom(c *gin.Context) models.Principal {
	if p, ok := c.Get(contextPrincipal); ok {
		if principal, ok := p.(models.Principal); ok {
			return principal
		}
	}
	return models.Principal{}
}

// RequireOperation rejects the request unless the principal may run op.
// Order-scoped operations are checked by the service once the order is loaded.
func RequireOperation(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if err := policy.Authorize(p, op, nil); err != nil {
			var forbidden *errs.ForbiddenError
			message := err.Error()
			if errors.As(err, &forbidden) {
				message = forbidden.Reason
			}
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions", map[string]interface{}{
				"operation": string(op),
				"reason":    message,
				"roles":     p.Roles.Slice(),
			}))
			return
		}
		c.Next()
	}
}
