package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DepositHandler handles priority deposit HTTP requests
type DepositHandler struct {
	depositUseCase usecase.DepositUseCase
	logger         coreport.Logger
}

// NewDepositHandler creates a new deposit handler instance
func NewDepositHandler(depositUseCase usecase.DepositUseCase, logger coreport.Logger) *DepositHandler {
	return &DepositHandler{
		depositUseCase: depositUseCase,
		logger:         logger,
	}
}

// Create handles POST /users/:userId/deposits. Admins go through the
// group-capped path; members pay from their own wallet.
func (h *DepositHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	create := h.depositUseCase.CreateDeposit
	if actor.IsAdmin() {
		create = h.depositUseCase.AdminCreateDeposit
	}

	deposit, err := create(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, h.logger, "Error creating deposit", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDepositResponse(deposit))
}

// Refund handles POST /deposits/:depositId/refund
func (h *DepositHandler) Refund(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	depositID, ok := parseID(c, "depositId")
	if !ok {
		return
	}

	deposit, err := h.depositUseCase.RefundDeposit(c.Request.Context(), actor, depositID)
	if err != nil {
		respondError(c, h.logger, "Error refunding deposit", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDepositResponse(deposit))
}

// History handles GET /users/:userId/deposits
func (h *DepositHandler) History(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	deposits, err := h.depositUseCase.History(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, h.logger, "Error listing deposits", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDepositList(deposits))
}
