package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/membora/membora-api/internal/api/handler/v1/response"
	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/pkg/jwthelper"
)

// PrincipalKey is the gin context key holding the authenticated
// domain.Principal for the request.
const PrincipalKey = "principal"

var (
	errMissingToken = errors.New("missing or malformed Authorization header")
	errInvalidToken = errors.New("invalid or expired token")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT validates the bearer token and stores the resulting principal
// in the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))

			return
		}

		ctx.Set(PrincipalKey, domain.Principal{
			MembreID: claims.MembreID,
			Role:     claims.Role,
			TenantID: claims.TenantID,
		})

		ctx.Next()
	}
}
