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

type InscriptionService interface {
	SignUp(ctx context.Context, principal domain.Principal, trancheID, membreID uint) (domain.Inscription, error)
	Cancel(ctx context.Context, principal domain.Principal, inscriptionID uint) error
	Approve(ctx context.Context, principal domain.Principal, inscriptionID uint) (domain.Inscription, error)
	GetByTranche(ctx context.Context, principal domain.Principal, trancheID uint) ([]domain.Inscription, error)
	GetByMembre(ctx context.Context, principal domain.Principal, membreID uint) ([]domain.MembreInscription, error)
}

type InscriptionHandler struct {
	svc InscriptionService
}

func NewInscriptionHandler(svc InscriptionService) *InscriptionHandler {
	return &InscriptionHandler{
		svc: svc,
	}
}

// HandleCreateInscription godoc
// @Summary      Sign up to a tranche
// @Description  Creates an inscription for a member on a time slot, enforcing the tranche's badge gate.
// @Tags         inscriptions
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateInscriptionRequest  true  "request body"
// @Success      201      {object}  domain.Inscription
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inscriptions [post]
// @Security     BearerAuth
func (h *InscriptionHandler) HandleCreateInscription(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateInscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	membreID := req.MembreID
	if membreID == 0 {
		membreID = principal.MembreID
	}

	inscription, err := h.svc.SignUp(ctx.Request.Context(), principal, req.TrancheID, membreID)
	if err != nil {
		if errors.Is(err, service.ErrTrancheNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tranche", "ID", req.TrancheID))

			return
		}
		if errors.Is(err, service.ErrBadgeRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrBadgeRequired))

			return
		}

		err = fmt.Errorf("v1.HandleCreateInscription -> h.svc.SignUp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, inscription)
}

// HandleDeleteInscription godoc
// @Summary      Cancel a sign-up
// @Tags         inscriptions
// @Produce      json
// @Param        id   path      int  true  "Inscription ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inscriptions/{id} [delete]
// @Security     BearerAuth
func (h *InscriptionHandler) HandleDeleteInscription(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid inscription ID: %w", err)))

		return
	}

	if err = h.svc.Cancel(ctx.Request.Context(), principal, uint(id)); err != nil {
		err = fmt.Errorf("v1.HandleDeleteInscription -> h.svc.Cancel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetInscriptionsByTranche godoc
// @Summary      List sign-ups for a tranche
// @Tags         inscriptions
// @Produce      json
// @Param        trancheID  path      int  true  "Tranche ID"
// @Success      200  {array}   domain.Inscription
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inscriptions/tranche/{trancheID} [get]
// @Security     BearerAuth
func (h *InscriptionHandler) HandleGetInscriptionsByTranche(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	trancheID, err := strconv.ParseUint(ctx.Param("trancheID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tranche ID: %w", err)))

		return
	}

	inscriptions, err := h.svc.GetByTranche(ctx.Request.Context(), principal, uint(trancheID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetInscriptionsByTranche -> h.svc.GetByTranche -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, inscriptions)
}

// HandleGetInscriptionsByMembre godoc
// @Summary      List a member's sign-ups with credit values
// @Description  Each row is annotated with the tranche's valeur_coches and evenement_id for coche totals.
// @Tags         inscriptions
// @Produce      json
// @Param        membreID  path      int  true  "Membre ID"
// @Success      200  {array}   domain.MembreInscription
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inscriptions/membre/{membreID} [get]
// @Security     BearerAuth
func (h *InscriptionHandler) HandleGetInscriptionsByMembre(ctx *gin.Context) {
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

	inscriptions, err := h.svc.GetByMembre(ctx.Request.Context(), principal, uint(membreID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetInscriptionsByMembre -> h.svc.GetByMembre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, inscriptions)
}

// HandleValiderInscription godoc
// @Summary      Mark the coche as attributed
// @Description  Idempotent: validating an already-validated inscription succeeds without change.
// @Tags         inscriptions
// @Produce      json
// @Param        id   path      int  true  "Inscription ID"
// @Success      200  {object}  domain.Inscription
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inscriptions/{id}/valider [post]
// @Security     BearerAuth
func (h *InscriptionHandler) HandleValiderInscription(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid inscription ID: %w", err)))

		return
	}

	inscription, err := h.svc.Approve(ctx.Request.Context(), principal, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrInscriptionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("inscription", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleValiderInscription -> h.svc.Approve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, inscription)
}
