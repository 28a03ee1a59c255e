package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// FamilyPermissionRepository defines family permission data operations
type FamilyPermissionRepository interface {
	// FindByPair returns the row for requester -> target
	//
	// Possible errors:
	// - ErrPermissionNotFound: If no row exists for the ordered pair
	FindByPair(ctx context.Context, requesterID, targetID uint64) (*entity.FamilyPermission, error)

	// GetForUpdate retrieves a permission by ID and locks its row
	GetForUpdate(ctx context.Context, id uint64) (*entity.FamilyPermission, error)

	// IsAccepted reports whether an accepted requester -> target edge exists
	IsAccepted(ctx context.Context, requesterID, targetID uint64) (bool, error)

	// Create inserts a new permission and sets its ID
	Create(ctx context.Context, permission *entity.FamilyPermission) error

	// Update writes status and can_pay
	Update(ctx context.Context, permission *entity.FamilyPermission) error

	// ListByUser returns rows where the user is requester or target
	ListByUser(ctx context.Context, userID uint64) ([]*entity.FamilyPermission, error)
}
