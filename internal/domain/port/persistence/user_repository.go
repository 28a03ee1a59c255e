package persistence

import (
	"context"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// UserRepository defines the user data operations the core needs
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetForUpdate retrieves a user and takes a row lock held until the
	// enclosing transaction ends. Balance reads that precede a write must use it.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrConflict: If the lock could not be acquired
	GetForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the email
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user and sets its ID
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance writes a new balance for a user locked by GetForUpdate
	UpdateBalance(ctx context.Context, user *entity.User) error

	// SetPayForFamily stores the pay_for_family_members preference
	SetPayForFamily(ctx context.Context, userID uint64, enabled bool) error
}
