package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/membora/membora-api/internal/api/handler/v1/response"
	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/service"
)

type MembreService interface {
	GetMembre(ctx context.Context, principal domain.Principal, id uint) (domain.Membre, error)
	ListMembres(ctx context.Context, principal domain.Principal) ([]domain.Membre, error)
}

type MembreHandler struct {
	svc MembreService
}

func NewMembreHandler(svc MembreService) *MembreHandler {
	return &MembreHandler{
		svc: svc,
	}
}

// HandleGetMembre godoc
// @Summary      Get a member
// @Tags         membres
// @Produce      json
// @Param        id   path      int  true  "Membre ID"
// @Success      200  {object}  domain.Membre
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /membres/{id} [get]
// @Security     BearerAuth
func (h *MembreHandler) HandleGetMembre(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid membre ID: %w", err)))

		return
	}

	membre, err := h.svc.GetMembre(ctx.Request.Context(), principal, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMembreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("membre", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetMembre -> h.svc.GetMembre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, membre)
}

// HandleListMembres godoc
// @Summary      List the tenant's members
// @Tags         membres
// @Produce      json
// @Success      200  {array}   domain.Membre
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /membres [get]
// @Security     BearerAuth
func (h *MembreHandler) HandleListMembres(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	membres, err := h.svc.ListMembres(ctx.Request.Context(), principal)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMembres -> h.svc.ListMembres -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, membres)
}
