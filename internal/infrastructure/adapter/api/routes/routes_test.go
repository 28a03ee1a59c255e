package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/deposit"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/family"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/registration"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/settlement"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	db     *database.TestDBManager
	router *gin.Engine
	admin  uint64
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	db := database.NewTestDBManager(t)
	authorizer := authz.NewAuthorizer(db.UoW)
	postings := ledger.NewLedger(db.UoW, db.Clock, db.Logger)

	userService := user.NewUserUseCase(db.UoW, db.Clock, db.Logger)
	ledgerService := ledger.NewService(db.UoW, postings, authorizer, db.Clock, db.Logger)
	depositService := deposit.NewService(db.UoW, postings, authorizer, 5000, db.Clock, db.Logger)
	registrationService := registration.NewService(db.UoW, authorizer, db.Clock, db.Logger)
	settlementService := settlement.NewService(db.UoW, postings, db.Clock, db.Logger)

	router := gin.New()
	routes.SetupMiddlewares(router, db.Logger, db.Clock, []string{"http://localhost:3000"})
	routes.SetupRoutes(router, routes.Handlers{
		Health:       handler.NewHealthHandler(db.Manager, db.Logger),
		User:         handler.NewUserHandler(userService, ledgerService, "EUR", db.Logger),
		Transaction:  handler.NewTransactionHandler(ledgerService, db.Logger),
		Event:        handler.NewEventHandler(event.NewService(db.UoW, db.Clock, db.Logger), registrationService, settlementService, db.Logger),
		Registration: handler.NewRegistrationHandler(registrationService, db.Logger),
		Deposit:      handler.NewDepositHandler(depositService, db.Logger),
		Family:       handler.NewFamilyHandler(family.NewService(db.UoW, db.Clock, db.Logger), db.Logger),
	})

	return &testServer{
		db:     db,
		router: router,
		admin:  db.CreateTestUser(t, "Admin", entity.RoleAdmin, 0, 0),
	}
}

func (s *testServer) do(t *testing.T, method, path string, actorID uint64, role entity.Role, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actorID != 0 {
		req.Header.Set(middleware.ActorIDHeader, strconv.FormatUint(actorID, 10))
		req.Header.Set(middleware.ActorRoleHeader, string(role))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", 0, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "pool")
}

func TestActorRequired(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		id   string
		role string
	}{
		{"missing headers", "", ""},
		{"non numeric id", "abc", "user"},
		{"zero id", "0", "user"},
		{"unknown role", "5", "owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil)
			if tt.id != "" {
				req.Header.Set(middleware.ActorIDHeader, tt.id)
			}
			if tt.role != "" {
				req.Header.Set(middleware.ActorRoleHeader, tt.role)
			}
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, domainerr.CodeUnauthorized, decode[dto.ErrorResponse](t, w).Code)
		})
	}
}

func TestRequestIDEcho(t *testing.T) {
	s := newTestServer(t)

	t.Run("valid id is reused", func(t *testing.T) {
		id := "6f1c1b9e-0c4e-4d0a-9b8e-3f2d7c5a1e42"
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, id)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("garbage id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, "not-a-uuid", got)
	})
}

func TestMalformedInput(t *testing.T) {
	s := newTestServer(t)
	member := s.db.CreateTestUser(t, "Ann", entity.RoleUser, 0, 0)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		code   int
	}{
		{"bad user id", http.MethodGet, "/api/v1/users/abc", nil, domainerr.CodeInvalidRequest},
		{"zero event id", http.MethodGet, "/api/v1/events/0", nil, domainerr.CodeInvalidRequest},
		{"bad top-up amount", http.MethodPost, fmt.Sprintf("/api/v1/users/%d/topup", member), map[string]string{"amount": "12.345"}, domainerr.CodeInvalidAmount},
		{"missing top-up amount", http.MethodPost, fmt.Sprintf("/api/v1/users/%d/topup", member), map[string]string{}, domainerr.CodeInvalidRequest},
		{"bad event price", http.MethodPost, "/api/v1/events", map[string]any{
			"title": "Friday", "startsAt": "2026-03-09T18:00:00Z", "maxPlayers": 4, "pricePerPerson": "ten",
		}, domainerr.CodeInvalidAmount},
		{"capacity without max players", http.MethodPut, "/api/v1/events/1/capacity", map[string]any{}, domainerr.CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, s.admin, entity.RoleAdmin, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, w).Code)
		})
	}
}

func TestDomainErrorStatus(t *testing.T) {
	s := newTestServer(t)
	member := s.db.CreateTestUser(t, "Ann", entity.RoleUser, 0, 0)
	other := s.db.CreateTestUser(t, "Bob", entity.RoleUser, 0, 0)

	t.Run("members cannot top up", func(t *testing.T) {
		w := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/topup", member), member, entity.RoleUser, map[string]string{"amount": "10"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, domainerr.CodeUnauthorized, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("members cannot read other profiles", func(t *testing.T) {
		w := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", other), member, entity.RoleUser, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown event", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/events/404", member, entity.RoleUser, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodeNotFound, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("balance floor", func(t *testing.T) {
		eventID := s.db.CreateTestEvent(t, "Friday", 4, 1000, database.TestEpoch.AddDate(0, 0, 7), s.admin)

		w := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/events/%d/registrations", eventID), member, entity.RoleUser, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, domainerr.CodeLimitExceeded, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("second deposit conflicts", func(t *testing.T) {
		s.db.CreateTestDeposit(t, other)

		w := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/deposits", other), s.admin, entity.RoleAdmin, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEventFlow(t *testing.T) {
	s := newTestServer(t)
	ann := s.db.CreateTestUser(t, "Ann", entity.RoleUser, 5000, 0)
	bob := s.db.CreateTestUser(t, "Bob", entity.RoleUser, 5000, 0)

	w := s.do(t, http.MethodPost, "/api/v1/events", s.admin, entity.RoleAdmin, map[string]any{
		"title":          "Friday",
		"startsAt":       database.TestEpoch.AddDate(0, 0, 7).Format("2006-01-02T15:04:05Z07:00"),
		"maxPlayers":     1,
		"pricePerPerson": "12.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.EventResponse](t, w)
	assert.Equal(t, "12.50", created.PricePerPerson)
	assert.Equal(t, string(entity.EventOpen), created.Status)

	base := fmt.Sprintf("/api/v1/events/%d", created.ID)

	w = s.do(t, http.MethodPost, base+"/registrations", ann, entity.RoleUser, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "registered", decode[map[string]any](t, w)["status"])

	w = s.do(t, http.MethodPost, base+"/registrations", bob, entity.RoleUser, map[string]any{"userId": bob})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "waitlist", decode[map[string]any](t, w)["status"])

	w = s.do(t, http.MethodPost, base+"/registrations", ann, entity.RoleUser, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domainerr.CodeAlreadyRegistered, decode[dto.ErrorResponse](t, w).Code)

	w = s.do(t, http.MethodGet, base+"/roster", ann, entity.RoleUser, nil)
	require.Equal(t, http.StatusOK, w.Code)
	roster := decode[map[string]any](t, w)
	assert.Len(t, roster["registered"], 1)
	assert.Len(t, roster["waitlist"], 1)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("%s/registrations/%d", base, ann), ann, entity.RoleUser, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, bob, decode[map[string]any](t, w)["promotedUserId"])

	w = s.do(t, http.MethodPost, base+"/finalize", s.admin, entity.RoleAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	settled := decode[dto.SettlementResponse](t, w)
	assert.Equal(t, 1, settled.ChargedCount)
	assert.Equal(t, "12.50", settled.TotalAmount)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/balance", bob), bob, entity.RoleUser, nil)
	require.Equal(t, http.StatusOK, w.Code)
	balance := decode[dto.BalanceResponse](t, w)
	assert.Equal(t, "37.50", balance.Balance)
	assert.Equal(t, "EUR", balance.Currency)

	w = s.do(t, http.MethodPost, base+"/finalize", s.admin, entity.RoleAdmin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, domainerr.CodeInvalidState, decode[dto.ErrorResponse](t, w).Code)
}

func TestWalletEndpoints(t *testing.T) {
	s := newTestServer(t)
	ann := s.db.CreateTestUser(t, "Ann", entity.RoleUser, 0, 0)
	walletPath := fmt.Sprintf("/api/v1/users/%d", ann)

	w := s.do(t, http.MethodPost, walletPath+"/topup", s.admin, entity.RoleAdmin, map[string]string{"amount": "100"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	topUp := decode[dto.TransactionResponse](t, w)
	assert.Equal(t, "100.00", topUp.Amount)

	w = s.do(t, http.MethodPost, walletPath+"/adjustments", s.admin, entity.RoleAdmin, map[string]string{
		"amount":      "-20.50",
		"description": "Broken racket",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/transactions/%d", topUp.ID), s.admin, entity.RoleAdmin, map[string]string{"amount": "80"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, walletPath+"/transactions?limit=1", ann, entity.RoleUser, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[[]dto.TransactionResponse](t, w)
	require.Len(t, history, 1)
	assert.Equal(t, "-20.50", history[0].Amount)

	w = s.do(t, http.MethodPost, walletPath+"/deposits", ann, entity.RoleUser, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, walletPath+"/balance", ann, entity.RoleUser, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "9.50", decode[dto.BalanceResponse](t, w).Balance)
	assert.Empty(t, s.db.LedgerDrift(t))
}

func TestFamilyEndpoints(t *testing.T) {
	s := newTestServer(t)
	parent := s.db.CreateTestUser(t, "Parent", entity.RoleUser, 0, 0)
	kid := s.db.CreateTestUser(t, "Kid", entity.RoleUser, 0, 0)

	w := s.do(t, http.MethodPost, "/api/v1/family/permissions", parent, entity.RoleUser, map[string]any{"targetId": kid, "canPay": true})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	perm := decode[dto.PermissionResponse](t, w)

	w = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/family/permissions/%d/respond", perm.ID), kid, entity.RoleUser, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/family/permissions/%d/respond", perm.ID), kid, entity.RoleUser, map[string]any{"accept": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, string(entity.PermissionAccepted), decode[dto.PermissionResponse](t, w).Status)

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d/family/pay", parent), parent, entity.RoleUser, map[string]any{"enabled": true})
	assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/family/permissions", kid), kid, entity.RoleUser, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.PermissionResponse](t, w), 1)
}
