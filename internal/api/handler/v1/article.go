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

type ArticleService interface {
	CreateArticle(ctx context.Context, principal domain.Principal, article domain.Article) (domain.Article, error)
	UpdateArticle(ctx context.Context, principal domain.Principal, id uint, titre, contenu, categorie string) (domain.Article, error)
	DeleteArticle(ctx context.Context, principal domain.Principal, id uint) error
	GetArticle(ctx context.Context, principal domain.Principal, id uint) (domain.Article, error)
	ListArticles(ctx context.Context, principal domain.Principal) ([]domain.Article, error)
}

type ArticleHandler struct {
	svc ArticleService
}

func NewArticleHandler(svc ArticleService) *ArticleHandler {
	return &ArticleHandler{
		svc: svc,
	}
}

// HandleCreateArticle godoc
// @Summary      Publish an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateArticleRequest  true  "request body"
// @Success      201      {object}  domain.Article
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /articles [post]
// @Security     BearerAuth
func (h *ArticleHandler) HandleCreateArticle(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	article, err := h.svc.CreateArticle(ctx.Request.Context(), principal, domain.Article{
		Titre:     req.Titre,
		Contenu:   req.Contenu,
		Categorie: req.Categorie,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateArticle -> h.svc.CreateArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, article)
}

// HandleUpdateArticle godoc
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Article ID"
// @Param        request  body      request.UpdateArticleRequest  true  "request body"
// @Success      200      {object}  domain.Article
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /articles/{id} [put]
// @Security     BearerAuth
func (h *ArticleHandler) HandleUpdateArticle(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid article ID: %w", err)))

		return
	}

	var req request.UpdateArticleRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	article, err := h.svc.UpdateArticle(ctx.Request.Context(), principal, uint(id), req.Titre, req.Contenu, req.Categorie)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("article", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateArticle -> h.svc.UpdateArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, article)
}

// HandleDeleteArticle godoc
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /articles/{id} [delete]
// @Security     BearerAuth
func (h *ArticleHandler) HandleDeleteArticle(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid article ID: %w", err)))

		return
	}

	if err = h.svc.DeleteArticle(ctx.Request.Context(), principal, uint(id)); err != nil {
		err = fmt.Errorf("v1.HandleDeleteArticle -> h.svc.DeleteArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetArticle godoc
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      200  {object}  domain.Article
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /articles/{id} [get]
// @Security     BearerAuth
func (h *ArticleHandler) HandleGetArticle(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid article ID: %w", err)))

		return
	}

	article, err := h.svc.GetArticle(ctx.Request.Context(), principal, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("article", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetArticle -> h.svc.GetArticle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, article)
}

// HandleListArticles godoc
// @Summary      List the tenant's articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}   domain.Article
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /articles [get]
// @Security     BearerAuth
func (h *ArticleHandler) HandleListArticles(ctx *gin.Context) {
	principal, respErr := principalFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	articles, err := h.svc.ListArticles(ctx.Request.Context(), principal)
	if err != nil {
		err = fmt.Errorf("v1.HandleListArticles -> h.svc.ListArticles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, articles)
}
