package routes

import (
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Health       *handler.HealthHandler
	User         *handler.UserHandler
	Transaction  *handler.TransactionHandler
	Event        *handler.EventHandler
	Registration *handler.RegistrationHandler
	Deposit      *handler.DepositHandler
	Family       *handler.FamilyHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api/v1", middleware.Actor())

	// User routes
	users := api.Group("/users")
	{
		users.POST("", h.User.CreateUser)
		users.GET("/:userId", h.User.GetUser)
		users.GET("/:userId/balance", h.User.GetBalance)
		users.GET("/:userId/transactions", h.Transaction.History)
		users.POST("/:userId/topup", h.Transaction.TopUp)
		users.POST("/:userId/adjustments", h.Transaction.Adjust)
		users.GET("/:userId/deposits", h.Deposit.History)
		users.POST("/:userId/deposits", h.Deposit.Create)
		users.GET("/:userId/family/permissions", h.Family.ListPermissions)
		users.PUT("/:userId/family/pay", h.Family.SetPayForFamily)
	}

	api.PUT("/transactions/:transactionId", h.Transaction.Correct)
	api.POST("/deposits/:depositId/refund", h.Deposit.Refund)

	groups := api.Group("/groups")
	{
		groups.POST("", h.User.CreateGroup)
		groups.POST("/:groupId/members", h.User.AddGroupMember)
	}

	// Event routes
	events := api.Group("/events")
	{
		events.POST("", h.Event.CreateEvent)
		events.GET("/:eventId", h.Event.GetEvent)
		events.POST("/:eventId/cancel", h.Event.CancelEvent)
		events.PUT("/:eventId/capacity", h.Event.UpdateCapacity)
		events.POST("/:eventId/finalize", h.Event.Finalize)
		events.GET("/:eventId/roster", h.Event.Roster)
		events.POST("/:eventId/registrations", h.Registration.Register)
		events.DELETE("/:eventId/registrations/:userId", h.Registration.Cancel)
	}

	family := api.Group("/family/permissions")
	{
		family.POST("", h.Family.RequestPermission)
		family.POST("/:permissionId/respond", h.Family.RespondPermission)
		family.DELETE("/:permissionId", h.Family.CancelPermission)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
