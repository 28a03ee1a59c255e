package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles wallet HTTP requests
type TransactionHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	ledgerUseCase usecase.LedgerUseCase,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// TopUp handles POST /users/:userId/topup
func (h *TransactionHandler) TopUp(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil || amount == 0 {
		badRequest(c, domainerr.CodeInvalidAmount, "Amount must be a positive value with at most two decimals")
		return
	}

	tx, err := h.ledgerUseCase.TopUp(c.Request.Context(), actor, userID, amount)
	if err != nil {
		respondError(c, h.logger, "Error processing top-up", err)
		return
	}

	h.logger.Info("Top-up processed", map[string]any{
		"userId":  userID,
		"amount":  tx.FormattedAmount(),
		"actorId": actor.ID,
	})
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Adjust handles POST /users/:userId/adjustments
func (h *TransactionHandler) Adjust(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	delta, err := entity.ParseSignedAmount(req.Amount)
	if err != nil {
		badRequest(c, domainerr.CodeInvalidAmount, err.Error())
		return
	}

	tx, err := h.ledgerUseCase.AdminAdjust(c.Request.Context(), actor, userID, delta, req.Description)
	if err != nil {
		respondError(c, h.logger, "Error processing adjustment", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Correct handles PUT /transactions/:transactionId
func (h *TransactionHandler) Correct(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	txID, ok := parseID(c, "transactionId")
	if !ok {
		return
	}

	var req dto.CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParseSignedAmount(req.Amount)
	if err != nil {
		badRequest(c, domainerr.CodeInvalidAmount, err.Error())
		return
	}

	tx, err := h.ledgerUseCase.CorrectTransaction(c.Request.Context(), actor, txID, amount)
	if err != nil {
		respondError(c, h.logger, "Error correcting transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// History handles GET /users/:userId/transactions?limit=N
func (h *TransactionHandler) History(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	// Zero lets the use case apply its default page size
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(c, domainerr.CodeInvalidRequest, "Invalid limit")
			return
		}
		limit = n
	}

	txs, err := h.ledgerUseCase.History(c.Request.Context(), actor, userID, limit)
	if err != nil {
		respondError(c, h.logger, "Error listing transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}
