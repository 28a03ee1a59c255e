package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// GroupRepository defines group and membership data operations
type GroupRepository interface {
	// Create inserts a new group and sets its ID
	Create(ctx context.Context, group *entity.Group) error

	// GetByID retrieves a group
	//
	// Possible errors:
	// - ErrGroupNotFound: If the group doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Group, error)

	// AddMember adds a user to a group; adding an existing member is a no-op
	AddMember(ctx context.Context, groupID, userID uint64) error

	// ListByMember returns every group the user belongs to
	ListByMember(ctx context.Context, userID uint64) ([]*entity.Group, error)

	// LockCappedByMember returns the capped groups the user belongs to, id
	// ascending, holding a row lock on each until the transaction ends
	LockCappedByMember(ctx context.Context, userID uint64) ([]*entity.Group, error)
}
