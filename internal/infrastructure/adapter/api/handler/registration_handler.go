package handler

import (
	"errors"
	"io"
	"net/http"

	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles sign-up and cancellation HTTP requests
type RegistrationHandler struct {
	registrationUseCase usecase.RegistrationUseCase
	logger              coreport.Logger
}

// NewRegistrationHandler creates a new registration handler instance
func NewRegistrationHandler(
	registrationUseCase usecase.RegistrationUseCase,
	logger coreport.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
	}
}

// Register handles POST /events/:eventId/registrations. The body may name
// another user; without one the actor registers themself.
func (h *RegistrationHandler) Register(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}
	if req.UserID == 0 {
		req.UserID = actor.ID
	}

	result, err := h.registrationUseCase.Register(c.Request.Context(), actor, eventID, req.UserID)
	if err != nil {
		respondError(c, h.logger, "Error registering for event", err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Cancel handles DELETE /events/:eventId/registrations/:userId
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	result, err := h.registrationUseCase.Cancel(c.Request.Context(), actor, eventID, userID)
	if err != nil {
		respondError(c, h.logger, "Error canceling registration", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
