package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event administration and roster HTTP requests
type EventHandler struct {
	eventUseCase        usecase.EventUseCase
	registrationUseCase usecase.RegistrationUseCase
	settlementUseCase   usecase.SettlementUseCase
	logger              coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(
	eventUseCase usecase.EventUseCase,
	registrationUseCase usecase.RegistrationUseCase,
	settlementUseCase usecase.SettlementUseCase,
	logger coreport.Logger,
) *EventHandler {
	return &EventHandler{
		eventUseCase:        eventUseCase,
		registrationUseCase: registrationUseCase,
		settlementUseCase:   settlementUseCase,
		logger:              logger,
	}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	price, ok := parseMoney(c, "pricePerPerson", req.PricePerPerson)
	if !ok {
		return
	}
	limit, ok := parseMoney(c, "negativeBalanceLimit", req.NegativeBalanceLimit)
	if !ok {
		return
	}

	event, err := h.eventUseCase.CreateEvent(c.Request.Context(), actor, usecase.CreateEventRequest{
		Title:                   req.Title,
		GroupID:                 req.GroupID,
		StartsAt:                req.StartsAt,
		MaxPlayers:              req.MaxPlayers,
		PricePerPerson:          price,
		RegistrationCutoffHours: req.RegistrationCutoffHours,
		NegativeBalanceLimit:    limit,
	})
	if err != nil {
		respondError(c, h.logger, "Error creating event", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewEventResponse(event))
}

// GetEvent handles GET /events/:eventId
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventUseCase.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, h.logger, "Error getting event", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// CancelEvent handles POST /events/:eventId/cancel
func (h *EventHandler) CancelEvent(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventUseCase.CancelEvent(c.Request.Context(), actor, eventID)
	if err != nil {
		respondError(c, h.logger, "Error canceling event", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEventResponse(event))
}

// UpdateCapacity handles PUT /events/:eventId/capacity
func (h *EventHandler) UpdateCapacity(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	var req dto.CapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.registrationUseCase.UpdateEventCapacity(c.Request.Context(), actor, eventID, *req.MaxPlayers)
	if err != nil {
		respondError(c, h.logger, "Error updating event capacity", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Finalize handles POST /events/:eventId/finalize
func (h *EventHandler) Finalize(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	result, err := h.settlementUseCase.FinalizeEvent(c.Request.Context(), actor, eventID)
	if err != nil {
		respondError(c, h.logger, "Error finalizing event", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettlementResponse(result))
}

// Roster handles GET /events/:eventId/roster
func (h *EventHandler) Roster(c *gin.Context) {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return
	}

	roster, err := h.registrationUseCase.Roster(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, h.logger, "Error getting roster", err)
		return
	}

	c.JSON(http.StatusOK, roster)
}
