package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membora/membora-api/internal/domain"
	"github.com/membora/membora-api/internal/service"
)

type stubTrancheService struct {
	createFunc         func(ctx context.Context, principal domain.Principal, tranche domain.Tranche) (domain.Tranche, error)
	updateFunc         func(ctx context.Context, principal domain.Principal, id uint, update domain.TrancheUpdate) (domain.Tranche, error)
	deleteFunc         func(ctx context.Context, principal domain.Principal, id uint) error
	getByEvenementFunc func(ctx context.Context, principal domain.Principal, evenementID uint) ([]domain.Tranche, error)
}

func (s *stubTrancheService) CreateTranche(ctx context.Context, principal domain.Principal, tranche domain.Tranche) (domain.Tranche, error) {
	return s.createFunc(ctx, principal, tranche)
}

func (s *stubTrancheService) UpdateTranche(ctx context.Context, principal domain.Principal, id uint, update domain.TrancheUpdate) (domain.Tranche, error) {
	return s.updateFunc(ctx, principal, id, update)
}

func (s *stubTrancheService) DeleteTranche(ctx context.Context, principal domain.Principal, id uint) error {
	return s.deleteFunc(ctx, principal, id)
}

func (s *stubTrancheService) GetTranchesByEvenement(ctx context.Context, principal domain.Principal, evenementID uint) ([]domain.Tranche, error) {
	return s.getByEvenementFunc(ctx, principal, evenementID)
}

var organizerPrincipal = domain.Principal{MembreID: 1, Role: domain.RoleResponsable, TenantID: 3}

func newTrancheRouter(svc TrancheService, principal domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTrancheHandler(svc)

	router := gin.New()
	group := router.Group("", withPrincipal(principal))
	group.POST("/tranches", handler.HandleCreateTranche)
	group.PUT("/tranches/:id", handler.HandleUpdateTranche)
	group.DELETE("/tranches/:id", handler.HandleDeleteTranche)
	group.GET("/tranches/event/:eventID", handler.HandleGetTranchesByEvenement)

	return router
}

func TestHandleCreateTranche_Created(t *testing.T) {
	svc := &stubTrancheService{
		createFunc: func(_ context.Context, principal domain.Principal, tranche domain.Tranche) (domain.Tranche, error) {
			tranche.ID = 10
			tranche.TenantID = principal.TenantID
			if tranche.ValeurCoches == 0 {
				tranche.ValeurCoches = 1
			}

			return tranche, nil
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	body := `{
		"evenement_id": 5,
		"debut": "2026-06-13T09:00:00Z",
		"fin": "2026-06-13T11:00:00Z",
		"badge_categorie": "securite"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tranches", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Tranche
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(10), got.ID)
	assert.Equal(t, uint(5), got.EvenementID)
	assert.Equal(t, 1, got.ValeurCoches)
	assert.Equal(t, "securite", got.BadgeCategorie)
}

func TestHandleCreateTranche_InvalidWindow(t *testing.T) {
	svc := &stubTrancheService{
		createFunc: func(_ context.Context, _ domain.Principal, _ domain.Tranche) (domain.Tranche, error) {
			return domain.Tranche{}, service.ErrInvalidTimeWindow
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	body := `{
		"evenement_id": 5,
		"debut": "2026-06-13T11:00:00Z",
		"fin": "2026-06-13T09:00:00Z"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tranches", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateTranche_EvenementNotFound(t *testing.T) {
	svc := &stubTrancheService{
		createFunc: func(_ context.Context, _ domain.Principal, _ domain.Tranche) (domain.Tranche, error) {
			return domain.Tranche{}, service.ErrEvenementNotFound
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	body := `{
		"evenement_id": 999,
		"debut": "2026-06-13T09:00:00Z",
		"fin": "2026-06-13T11:00:00Z"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tranches", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdateTranche_PartialBody(t *testing.T) {
	svc := &stubTrancheService{
		updateFunc: func(_ context.Context, _ domain.Principal, id uint, update domain.TrancheUpdate) (domain.Tranche, error) {
			require.NotNil(t, update.ValeurCoches)
			assert.Nil(t, update.Debut)
			assert.Nil(t, update.Fin)
			assert.Nil(t, update.BadgeCategorie)

			return domain.Tranche{ID: id, ValeurCoches: *update.ValeurCoches}, nil
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tranches/10", strings.NewReader(`{"valeur_coches": 3}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Tranche
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.ValeurCoches)
}

func TestHandleUpdateTranche_EmptyBodyIsNoOp(t *testing.T) {
	svc := &stubTrancheService{
		updateFunc: func(_ context.Context, _ domain.Principal, id uint, update domain.TrancheUpdate) (domain.Tranche, error) {
			assert.True(t, update.IsEmpty())

			return domain.Tranche{ID: id, ValeurCoches: 2}, nil
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tranches/10", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleUpdateTranche_NotFound(t *testing.T) {
	svc := &stubTrancheService{
		updateFunc: func(_ context.Context, _ domain.Principal, _ uint, _ domain.TrancheUpdate) (domain.Tranche, error) {
			return domain.Tranche{}, service.ErrTrancheNotFound
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tranches/999", strings.NewReader(`{"valeur_coches": 3}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteTranche_NoContent(t *testing.T) {
	deleted := uint(0)
	svc := &stubTrancheService{
		deleteFunc: func(_ context.Context, _ domain.Principal, id uint) error {
			deleted = id

			return nil
		},
	}
	router := newTrancheRouter(svc, organizerPrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/tranches/10", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, uint(10), deleted)
}

func TestHandleGetTranchesByEvenement_OK(t *testing.T) {
	debut := time.Date(2026, 6, 13, 9, 0, 0, 0, time.UTC)
	svc := &stubTrancheService{
		getByEvenementFunc: func(_ context.Context, _ domain.Principal, evenementID uint) ([]domain.Tranche, error) {
			return []domain.Tranche{
				{ID: 10, EvenementID: evenementID, Debut: debut, Fin: debut.Add(2 * time.Hour), ValeurCoches: 1},
			}, nil
		},
	}
	router := newTrancheRouter(svc, membrePrincipal)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tranches/event/5", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Tranche
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, uint(5), got[0].EvenementID)
}
