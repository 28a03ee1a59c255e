package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status and logs it. Internal
// errors are reported with a generic message.
func respondError(c *gin.Context, logger coreport.Logger, msg string, err error) {
	status := domainerr.HTTPStatus(err)
	fields := domainerr.LogFields(err)
	fields["request_id"] = middleware.GetRequestID(c)
	fields["path"] = c.FullPath()

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields)
		message = "Internal server error"
	} else {
		logger.Warn(msg, fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// badRequest rejects malformed input before it reaches a use case
func badRequest(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, domainerr.CodeInvalidRequest, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// actorFrom returns the authenticated actor, answering 401 when absent
func actorFrom(c *gin.Context) (entity.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeUnauthorized,
			Message: "Missing actor",
		})
	}
	return actor, ok
}

// parseMoney parses an optional non-negative amount; empty means zero
func parseMoney(c *gin.Context, field, value string) (int64, bool) {
	if value == "" {
		return 0, true
	}
	cents, err := entity.ParseAmount(value)
	if err != nil {
		badRequest(c, domainerr.CodeInvalidAmount, "Invalid "+field+": "+err.Error())
		return 0, false
	}
	return cents, true
}
