package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/membora/membora-api/internal/api/handler/v1/response"
	"github.com/membora/membora-api/internal/domain"
)

// RequireRoles rejects with 403 unless the authenticated principal holds
// one of the given roles. Must run after VerifyJWT.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(PrincipalKey)
		if !exists {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		principal := value.(domain.Principal)
		for _, role := range roles {
			if principal.Role == role {
				ctx.Next()

				return
			}
		}

		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("membre %v with role %q is not allowed to perform this action", principal.MembreID, principal.Role),
		))
	}
}
