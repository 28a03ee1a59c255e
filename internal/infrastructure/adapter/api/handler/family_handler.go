package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// FamilyHandler handles family permission HTTP requests
type FamilyHandler struct {
	familyUseCase usecase.FamilyUseCase
	logger        coreport.Logger
}

// NewFamilyHandler creates a new family handler instance
func NewFamilyHandler(familyUseCase usecase.FamilyUseCase, logger coreport.Logger) *FamilyHandler {
	return &FamilyHandler{
		familyUseCase: familyUseCase,
		logger:        logger,
	}
}

// RequestPermission handles POST /family/permissions
func (h *FamilyHandler) RequestPermission(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	perm, err := h.familyUseCase.RequestPermission(c.Request.Context(), actor, req.TargetID, req.CanPay)
	if err != nil {
		respondError(c, h.logger, "Error requesting family permission", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPermissionResponse(perm))
}

// RespondPermission handles POST /family/permissions/:permissionId/respond
func (h *FamilyHandler) RespondPermission(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	permID, ok := parseID(c, "permissionId")
	if !ok {
		return
	}

	var req dto.RespondPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	perm, err := h.familyUseCase.RespondPermission(c.Request.Context(), actor, permID, *req.Accept)
	if err != nil {
		respondError(c, h.logger, "Error responding to family permission", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPermissionResponse(perm))
}

// CancelPermission handles DELETE /family/permissions/:permissionId
func (h *FamilyHandler) CancelPermission(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	permID, ok := parseID(c, "permissionId")
	if !ok {
		return
	}

	perm, err := h.familyUseCase.CancelPermission(c.Request.Context(), actor, permID)
	if err != nil {
		respondError(c, h.logger, "Error canceling family permission", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPermissionResponse(perm))
}

// ListPermissions handles GET /users/:userId/family/permissions
func (h *FamilyHandler) ListPermissions(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	perms, err := h.familyUseCase.ListPermissions(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, h.logger, "Error listing family permissions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPermissionList(perms))
}

// SetPayForFamily handles PUT /users/:userId/family/pay
func (h *FamilyHandler) SetPayForFamily(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req dto.PayForFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := h.familyUseCase.SetPayForFamily(c.Request.Context(), actor, userID, *req.Enabled); err != nil {
		respondError(c, h.logger, "Error updating pay-for-family", err)
		return
	}

	c.Status(http.StatusNoContent)
}
