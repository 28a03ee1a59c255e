package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
)

// BootstrapAdmin identifies the super admin seeded on first start
type BootstrapAdmin struct {
	Name  string
	Email string
}

// CreateDefaultUsers seeds the bootstrap super admin when one is configured
func CreateDefaultUsers(ctx context.Context, userService usecase.UserUseCase, admin BootstrapAdmin, logger coreport.Logger) error {
	if admin.Email == "" {
		logger.Debug("No bootstrap super admin configured", nil)
		return nil
	}

	user, err := userService.EnsureSuperAdmin(ctx, admin.Name, admin.Email)
	if err != nil {
		return err
	}

	logger.Info("Bootstrap super admin ready", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}
