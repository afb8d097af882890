package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/membora/membora-api/internal/api/handler/v1/request"
	"github.com/membora/membora-api/internal/api/handler/v1/response"
	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/service"
)

type BadgeService interface {
	CreateBadge(ctx context.Context, principal domain.Principal, membreID uint, categorie string) (domain.Badge, error)
	GetBadgesByMembre(ctx context.Context, principal domain.Principal, membreID uint) ([]domain.Badge, error)
}

type BadgeHandler struct {
	svc BadgeService
}

func NewBadgeHandler(svc BadgeService) *BadgeHandler {
	return &BadgeHandler{
		svc: svc,
	}
}

// HandleCreateBadge godoc
// @Summary      Grant a badge to a member
// @Tags         badges
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateBadgeRequest  true  "request body"
// @Success      201      {object}  domain.Badge
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /badges [post]
// @Security     BearerAuth
func (h *BadgeHandler) HandleCreateBadge(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	badge, err := h.svc.CreateBadge(ctx.Request.Context(), principal, req.MembreID, req.Categorie)
	if err != nil {
		if errors.Is(err, service.ErrMembreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("membre", "ID", req.MembreID))

			return
		}

		err = fmt.Errorf("v1.HandleCreateBadge -> h.svc.CreateBadge -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, badge)
}

// HandleGetBadgesByMembre godoc
// @Summary      List a member's badges
// @Tags         badges
// @Produce      json
// @Param        membreID  path      int  true  "Membre ID"
// @Success      200  {array}   domain.Badge
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /badges/membre/{membreID} [get]
// @Security     BearerAuth
func (h *BadgeHandler) HandleGetBadgesByMembre(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	membreID, err := strconv.ParseUint(ctx.Param("membreID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid membre ID: %w", err)))

		return
	}

	badges, err := h.svc.GetBadgesByMembre(ctx.Request.Context(), principal, uint(membreID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetBadgesByMembre -> h.svc.GetBadgesByMembre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, badges)
}
