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

type TrancheService interface {
	CreateTranche(ctx context.Context, principal domain.Principal, tranche domain.Tranche) (domain.Tranche, error)
	UpdateTranche(ctx context.Context, principal domain.Principal, id uint, update domain.TrancheUpdate) (domain.Tranche, error)
	DeleteTranche(ctx context.Context, principal domain.Principal, id uint) error
	GetTranchesByEvenement(ctx context.Context, principal domain.Principal, evenementID uint) ([]domain.Tranche, error)
}

type TrancheHandler struct {
	svc TrancheService
}

func NewTrancheHandler(svc TrancheService) *TrancheHandler {
	return &TrancheHandler{
		svc: svc,
	}
}

// HandleCreateTranche godoc
// @Summary      Create a tranche
// @Tags         tranches
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTrancheRequest  true  "request body"
// @Success      201      {object}  domain.Tranche
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tranches [post]
// @Security     BearerAuth
func (h *TrancheHandler) HandleCreateTranche(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateTrancheRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tranche, err := h.svc.CreateTranche(ctx.Request.Context(), principal, domain.Tranche{
		EvenementID:    req.EvenementID,
		Debut:          req.Debut,
		Fin:            req.Fin,
		ValeurCoches:   req.ValeurCoches,
		BadgeCategorie: req.BadgeCategorie,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeWindow) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTimeWindow))

			return
		}
		if errors.Is(err, service.ErrEvenementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("evenement", "ID", req.EvenementID))

			return
		}

		err = fmt.Errorf("v1.HandleCreateTranche -> h.svc.CreateTranche -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, tranche)
}

// HandleUpdateTranche godoc
// @Summary      Update a tranche
// @Description  Applies only the supplied fields; an empty body returns the record unchanged.
// @Tags         tranches
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true  "Tranche ID"
// @Param        request  body      request.UpdateTrancheRequest  true  "request body"
// @Success      200      {object}  domain.Tranche
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tranches/{id} [put]
// @Security     BearerAuth
func (h *TrancheHandler) HandleUpdateTranche(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tranche ID: %w", err)))

		return
	}

	var req request.UpdateTrancheRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tranche, err := h.svc.UpdateTranche(ctx.Request.Context(), principal, uint(id), domain.TrancheUpdate{
		Debut:          req.Debut,
		Fin:            req.Fin,
		ValeurCoches:   req.ValeurCoches,
		BadgeCategorie: req.BadgeCategorie,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeWindow) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTimeWindow))

			return
		}
		if errors.Is(err, service.ErrTrancheNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tranche", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTranche -> h.svc.UpdateTranche -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tranche)
}

// HandleDeleteTranche godoc
// @Summary      Delete a tranche
// @Description  Deletes the tranche only; its inscriptions are not cascaded.
// @Tags         tranches
// @Produce      json
// @Param        id   path      int  true  "Tranche ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tranches/{id} [delete]
// @Security     BearerAuth
func (h *TrancheHandler) HandleDeleteTranche(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tranche ID: %w", err)))

		return
	}

	if err = h.svc.DeleteTranche(ctx.Request.Context(), principal, uint(id)); err != nil {
		err = fmt.Errorf("v1.HandleDeleteTranche -> h.svc.DeleteTranche -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetTranchesByEvenement godoc
// @Summary      List tranches for an event
// @Tags         tranches
// @Produce      json
// @Param        eventID  path      int  true  "Evenement ID"
// @Success      200  {array}   domain.Tranche
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tranches/event/{eventID} [get]
// @Security     BearerAuth
func (h *TrancheHandler) HandleGetTranchesByEvenement(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))

		return
	}

	tranches, err := h.svc.GetTranchesByEvenement(ctx.Request.Context(), principal, uint(eventID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTranchesByEvenement -> h.svc.GetTranchesByEvenement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tranches)
}
