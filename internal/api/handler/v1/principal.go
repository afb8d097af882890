package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/membora/membora-api/internal/api/handler/v1/response"
	"github.com/membora/membora-api/internal/domain"
)

var errNoPrincipal = errors.New("no authenticated principal in request context")

// principalFromContext reads the principal stored by the JWT middleware.
func principalFromContext(ctx *gin.Context) (domain.Principal, *response.Err) {
	value, exists := ctx.Get("principal")
	if !exists {
		return domain.Principal{}, response.ErrUnauthorized(errNoPrincipal)
	}

	principal, ok := value.(domain.Principal)
	if !ok {
		return domain.Principal{}, response.ErrUnauthorized(errNoPrincipal)
	}

	return principal, nil
}
