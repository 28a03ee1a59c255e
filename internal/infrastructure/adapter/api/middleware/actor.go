package middleware

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Headers set by the authenticating gateway in front of the API
const (
	ActorIDHeader   = "X-Actor-ID"
	ActorRoleHeader = "X-Actor-Role"
)

const actorKey = "actor"

// Actor reads the authenticated caller from gateway headers. Requests
// without a valid actor are rejected with 401.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.GetHeader(ActorIDHeader), 10, 64)
		role := entity.Role(c.GetHeader(ActorRoleHeader))
		if role == "" {
			role = entity.RoleUser
		}

		if err != nil || id == 0 || !role.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Missing or invalid actor",
			})
			return
		}

		c.Set(actorKey, entity.Actor{ID: id, Role: role})
		c.Next()
	}
}

// GetActor returns the actor stored by Actor
func GetActor(c *gin.Context) (entity.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entity.Actor{}, false
	}
	actor, ok := v.(entity.Actor)
	return actor, ok
}
