package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles member, balance and group HTTP requests
type UserHandler struct {
	userUseCase   usecase.UserUseCase
	ledgerUseCase usecase.LedgerUseCase
	currency      string
	logger        coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	ledgerUseCase usecase.LedgerUseCase,
	currency string,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:   userUseCase,
		ledgerUseCase: ledgerUseCase,
		currency:      currency,
		logger:        logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	limit, ok := parseMoney(c, "negativeBalanceLimit", req.NegativeBalanceLimit)
	if !ok {
		return
	}

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RoleUser
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), actor, usecase.CreateUserRequest{
		Name:                 req.Name,
		Email:                req.Email,
		Role:                 role,
		NegativeBalanceLimit: limit,
	})
	if err != nil {
		respondError(c, h.logger, "Error creating user", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetUser handles GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	// Profiles are visible to their owner and to admins
	if !actor.IsSelf(userID) && !actor.IsAdmin() {
		respondError(c, h.logger, "Error getting user", domainerr.ErrUnauthorized)
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Error getting user", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetBalance handles GET /users/:userId/balance
func (h *UserHandler) GetBalance(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	view, err := h.ledgerUseCase.Balance(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, h.logger, "Error getting user balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(view, h.currency))
}

// CreateGroup handles POST /groups
func (h *UserHandler) CreateGroup(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	group, err := h.userUseCase.CreateGroup(c.Request.Context(), actor, req.Name, req.MaxDepositors)
	if err != nil {
		respondError(c, h.logger, "Error creating group", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewGroupResponse(group))
}

// AddGroupMember handles POST /groups/:groupId/members
func (h *UserHandler) AddGroupMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	groupID, ok := parseID(c, "groupId")
	if !ok {
		return
	}

	var req dto.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := h.userUseCase.AddGroupMember(c.Request.Context(), actor, groupID, req.UserID); err != nil {
		respondError(c, h.logger, "Error adding group member", err)
		return
	}

	c.Status(http.StatusNoContent)
}
