package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/authz"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/deposit"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/family"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/registration"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/settlement"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// application holds everything a command needs after startup
type application struct {
	cfg          *config.Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	dbManager    *database.Manager
	handlers     routes.Handlers
}

// bootstrap loads configuration, connects and migrates the database, seeds the
// super admin and wires use cases into HTTP handlers
func bootstrap(ctx context.Context, v *viper.Viper) (*application, error) {
	// Load configuration
	cfg, err := config.LoadConfig(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	depositAmount, err := entity.ParseAmount(cfg.Ledger.DepositAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger.depositAmount: %w", err)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		return nil, err
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and run migrations
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		return nil, err
	}
	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		return nil, err
	}

	// Unit of work shared by all use cases
	uow := dbManager.CreateUnitOfWork()
	authorizer := authz.NewAuthorizer(uow)
	postings := ledger.NewLedger(uow, tp, appLogger)

	// Initialize use cases
	userService := user.NewUserUseCase(uow, tp, appLogger)
	ledgerService := ledger.NewService(uow, postings, authorizer, tp, appLogger)
	depositService := deposit.NewService(uow, postings, authorizer, depositAmount, tp, appLogger)
	registrationService := registration.NewService(uow, authorizer, tp, appLogger)
	settlementService := settlement.NewService(uow, postings, tp, appLogger)
	familyService := family.NewService(uow, tp, appLogger)
	eventService := event.NewService(uow, tp, appLogger)

	// Seed the bootstrap super admin
	if err := migration.CreateDefaultUsers(ctx, userService, migration.BootstrapAdmin{
		Name:  cfg.Bootstrap.AdminName,
		Email: cfg.Bootstrap.AdminEmail,
	}, appLogger); err != nil {
		appLogger.Error("Failed to create default users", map[string]any{"error": err.Error()})
	}

	return &application{
		cfg:          cfg,
		logger:       appLogger,
		timeProvider: tp,
		dbManager:    dbManager,
		handlers: routes.Handlers{
			Health:       handler.NewHealthHandler(dbManager, appLogger),
			User:         handler.NewUserHandler(userService, ledgerService, cfg.Ledger.Currency, appLogger),
			Transaction:  handler.NewTransactionHandler(ledgerService, appLogger),
			Event:        handler.NewEventHandler(eventService, registrationService, settlementService, appLogger),
			Registration: handler.NewRegistrationHandler(registrationService, appLogger),
			Deposit:      handler.NewDepositHandler(depositService, appLogger),
			Family:       handler.NewFamilyHandler(familyService, appLogger),
		},
	}, nil
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains it
func (a *application) serve(ctx context.Context) error {
	// Set Gin mode based on environment
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, a.logger, a.timeProvider, a.cfg.CORS.AllowedOrigins)
	routes.SetupRoutes(router, a.handlers)

	server := &http.Server{
		Addr:              net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  a.cfg.Environment,
		})
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := a.timeProvider.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}

	a.logger.Info("Server exited gracefully", nil)
	return nil
}

// close releases the database and flushes the logger
func (a *application) close() {
	if err := a.dbManager.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = a.logger.Flush()
}
