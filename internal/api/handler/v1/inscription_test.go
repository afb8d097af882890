package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/service"
)

type stubInscriptionService struct {
	signUpFunc       func(ctx context.Context, principal domain.Principal, trancheID, membreID uint) (domain.Inscription, error)
	cancelFunc       func(ctx context.Context, principal domain.Principal, inscriptionID uint) error
	approveFunc      func(ctx context.Context, principal domain.Principal, inscriptionID uint) (domain.Inscription, error)
	getByTrancheFunc func(ctx context.Context, principal domain.Principal, trancheID uint) ([]domain.Inscription, error)
	getByMembreFunc  func(ctx context.Context, principal domain.Principal, membreID uint) ([]domain.MembreInscription, error)
}

func (s *stubInscriptionService) SignUp(ctx context.Context, principal domain.Principal, trancheID, membreID uint) (domain.Inscription, error) {
	return s.signUpFunc(ctx, principal, trancheID, membreID)
}

func (s *stubInscriptionService) Cancel(ctx context.Context, principal domain.Principal, inscriptionID uint) error {
	return s.cancelFunc(ctx, principal, inscriptionID)
}

func (s *stubInscriptionService) Approve(ctx context.Context, principal domain.Principal, inscriptionID uint) (domain.Inscription, error) {
	return s.approveFunc(ctx, principal, inscriptionID)
}

func (s *stubInscriptionService) GetByTranche(ctx context.Context, principal domain.Principal, trancheID uint) ([]domain.Inscription, error) {
	return s.getByTrancheFunc(ctx, principal, trancheID)
}

func (s *stubInscriptionService) GetByMembre(ctx context.Context, principal domain.Principal, membreID uint) ([]domain.MembreInscription, error) {
	return s.getByMembreFunc(ctx, principal, membreID)
}

func withPrincipal(principal domain.Principal) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("principal", principal)
	}
}

func newInscriptionRouter(svc InscriptionService, principal domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewInscriptionHandler(svc)

	router := gin.New()
	group := router.Group("", withPrincipal(principal))
	group.POST("/inscriptions", handler.HandleCreateInscription)
	group.DELETE("/inscriptions/:id", handler.HandleDeleteInscription)
	group.GET("/inscriptions/tranche/:trancheID", handler.HandleGetInscriptionsByTranche)
	group.GET("/inscriptions/membre/:membreID", handler.HandleGetInscriptionsByMembre)
	group.POST("/inscriptions/:id/valider", handler.HandleValiderInscription)

	return router
}

var membrePrincipal = domain.Principal{MembreID: 7, Role: domain.RoleMembre, TenantID: 3}

func TestHandleCreateInscription_Created(t *testing.T) {
	svc := &stubInscriptionService{
		signUpFunc: func(_ context.Context, principal domain.Principal, trancheID, membreID uint) (domain.Inscription, error) {
			return domain.Inscription{ID: 42, TrancheID: trancheID, MembreID: membreID, TenantID: principal.TenantID}, nil
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{"tranche_id": 10}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Inscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, uint(10), got.TrancheID)
	// Omitted membre_id defaults to the authenticated member.
	assert.Equal(t, uint(7), got.MembreID)
}

func TestHandleCreateInscription_ExplicitMembre(t *testing.T) {
	svc := &stubInscriptionService{
		signUpFunc: func(_ context.Context, _ domain.Principal, trancheID, membreID uint) (domain.Inscription, error) {
			return domain.Inscription{ID: 42, TrancheID: trancheID, MembreID: membreID}, nil
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{"tranche_id": 10, "membre_id": 12}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Inscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(12), got.MembreID)
}

func TestHandleCreateInscription_BadgeRequired(t *testing.T) {
	svc := &stubInscriptionService{
		signUpFunc: func(_ context.Context, _ domain.Principal, _, _ uint) (domain.Inscription, error) {
			return domain.Inscription{}, service.ErrBadgeRequired
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{"tranche_id": 10}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "badge")
}

func TestHandleCreateInscription_TrancheNotFound(t *testing.T) {
	svc := &stubInscriptionService{
		signUpFunc: func(_ context.Context, _ domain.Principal, _, _ uint) (domain.Inscription, error) {
			return domain.Inscription{}, service.ErrTrancheNotFound
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{"tranche_id": 999}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCreateInscription_MissingTranche(t *testing.T) {
	router := newInscriptionRouter(&stubInscriptionService{}, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateInscription_GenericErrorHidesCause(t *testing.T) {
	svc := &stubInscriptionService{
		signUpFunc: func(_ context.Context, _ domain.Principal, _, _ uint) (domain.Inscription, error) {
			return domain.Inscription{}, errors.New("pq: connection refused on 10.0.0.5")
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{"tranche_id": 10}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body["message"], "10.0.0.5")
}

func TestHandleCreateInscription_NoPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewInscriptionHandler(&stubInscriptionService{})

	router := gin.New()
	router.POST("/inscriptions", handler.HandleCreateInscription)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions", strings.NewReader(`{"tranche_id": 10}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleDeleteInscription_NoContent(t *testing.T) {
	svc := &stubInscriptionService{
		cancelFunc: func(_ context.Context, _ domain.Principal, inscriptionID uint) error {
			assert.Equal(t, uint(42), inscriptionID)

			return nil
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/inscriptions/42", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleDeleteInscription_BadID(t *testing.T) {
	router := newInscriptionRouter(&stubInscriptionService{}, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/inscriptions/abc", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValiderInscription_OK(t *testing.T) {
	svc := &stubInscriptionService{
		approveFunc: func(_ context.Context, _ domain.Principal, inscriptionID uint) (domain.Inscription, error) {
			return domain.Inscription{ID: inscriptionID, CocheAttribue: true}, nil
		},
	}
	router := newInscriptionRouter(svc, domain.Principal{MembreID: 1, Role: domain.RoleResponsable, TenantID: 3})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions/42/valider", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Inscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.CocheAttribue)
}

func TestHandleValiderInscription_NotFound(t *testing.T) {
	svc := &stubInscriptionService{
		approveFunc: func(_ context.Context, _ domain.Principal, _ uint) (domain.Inscription, error) {
			return domain.Inscription{}, service.ErrInscriptionNotFound
		},
	}
	router := newInscriptionRouter(svc, domain.Principal{MembreID: 1, Role: domain.RoleResponsable, TenantID: 3})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/inscriptions/999/valider", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetInscriptionsByMembre_OK(t *testing.T) {
	svc := &stubInscriptionService{
		getByMembreFunc: func(_ context.Context, _ domain.Principal, membreID uint) ([]domain.MembreInscription, error) {
			return []domain.MembreInscription{
				{
					Inscription:  domain.Inscription{ID: 1, TrancheID: 10, MembreID: membreID},
					ValeurCoches: 2,
					EvenementID:  5,
				},
			}, nil
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inscriptions/membre/7", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.MembreInscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ValeurCoches)
	assert.Equal(t, uint(5), got[0].EvenementID)
}

func TestHandleGetInscriptionsByTranche_OK(t *testing.T) {
	svc := &stubInscriptionService{
		getByTrancheFunc: func(_ context.Context, _ domain.Principal, trancheID uint) ([]domain.Inscription, error) {
			return []domain.Inscription{{ID: 1, TrancheID: trancheID, MembreID: 7}}, nil
		},
	}
	router := newInscriptionRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inscriptions/tranche/10", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Inscription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, uint(10), got[0].TrancheID)
}
