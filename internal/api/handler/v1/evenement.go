package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/membora/membora-api/internal/api/handler/v1/request"
	"github.com/membora/membora-api/internal/api/handler/v1/response"
	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/service"
)

const evenementDateLayout = "02/01/2006"

type EvenementService interface {
	CreateEvenement(ctx context.Context, principal domain.Principal, evenement domain.Evenement) (domain.Evenement, error)
	UpdateEvenement(ctx context.Context, principal domain.Principal, id uint, nom string, date *time.Time, lieu, description string) (domain.Evenement, error)
	DeleteEvenement(ctx context.Context, principal domain.Principal, id uint) error
	GetEvenement(ctx context.Context, principal domain.Principal, id uint) (domain.Evenement, error)
	ListEvenements(ctx context.Context, principal domain.Principal) ([]domain.Evenement, error)
}

type EvenementHandler struct {
	svc EvenementService
}

func NewEvenementHandler(svc EvenementService) *EvenementHandler {
	return &EvenementHandler{
		svc: svc,
	}
}

// HandleCreateEvenement godoc
// @Summary      Create an event
// @Tags         evenements
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEvenementRequest  true  "request body"
// @Success      201      {object}  domain.Evenement
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /evenements [post]
// @Security     BearerAuth
func (h *EvenementHandler) HandleCreateEvenement(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateEvenementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	parsedDate, err := time.Parse(evenementDateLayout, req.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))

		return
	}

	evenement, err := h.svc.CreateEvenement(ctx.Request.Context(), principal, domain.Evenement{
		Nom:         req.Nom,
		Date:        parsedDate,
		Lieu:        req.Lieu,
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvenement -> h.svc.CreateEvenement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, evenement)
}

// HandleUpdateEvenement godoc
// @Summary      Update an event
// @Tags         evenements
// @Accept       json
// @Produce      json
// @Param        id       path      int                              true  "Evenement ID"
// @Param        request  body      request.UpdateEvenementRequest  true  "request body"
// @Success      200      {object}  domain.Evenement
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /evenements/{id} [put]
// @Security     BearerAuth
func (h *EvenementHandler) HandleUpdateEvenement(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid evenement ID: %w", err)))

		return
	}

	var req request.UpdateEvenementRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var date *time.Time
	if req.Date != "" {
		parsedDate, err := time.Parse(evenementDateLayout, req.Date)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))

			return
		}
		date = &parsedDate
	}

	evenement, err := h.svc.UpdateEvenement(ctx.Request.Context(), principal, uint(id), req.Nom, date, req.Lieu, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrEvenementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("evenement", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvenement -> h.svc.UpdateEvenement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, evenement)
}

// HandleDeleteEvenement godoc
// @Summary      Delete an event
// @Tags         evenements
// @Produce      json
// @Param        id   path      int  true  "Evenement ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /evenements/{id} [delete]
// @Security     BearerAuth
func (h *EvenementHandler) HandleDeleteEvenement(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid evenement ID: %w", err)))

		return
	}

	if err = h.svc.DeleteEvenement(ctx.Request.Context(), principal, uint(id)); err != nil {
		err = fmt.Errorf("v1.HandleDeleteEvenement -> h.svc.DeleteEvenement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetEvenement godoc
// @Summary      Get an event
// @Tags         evenements
// @Produce      json
// @Param        id   path      int  true  "Evenement ID"
// @Success      200  {object}  domain.Evenement
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /evenements/{id} [get]
// @Security     BearerAuth
func (h *EvenementHandler) HandleGetEvenement(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid evenement ID: %w", err)))

		return
	}

	evenement, err := h.svc.GetEvenement(ctx.Request.Context(), principal, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEvenementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("evenement", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvenement -> h.svc.GetEvenement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, evenement)
}

// HandleListEvenements godoc
// @Summary      List the tenant's events
// @Tags         evenements
// @Produce      json
// @Success      200  {array}   domain.Evenement
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /evenements [get]
// @Security     BearerAuth
func (h *EvenementHandler) HandleListEvenements(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	evenements, err := h.svc.ListEvenements(ctx.Request.Context(), principal)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvenements -> h.svc.ListEvenements -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, evenements)
}
