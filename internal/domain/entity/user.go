package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/club-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
)

// User is a club member with a prepaid wallet
type User struct {
	ID                   uint64
	Name                 string
	Email                string
	Role                 Role
	balance              int64 // cents, may be negative
	NegativeBalanceLimit int64 // cents the balance may drop below zero
	PayForFamilyMembers  bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewUser creates a new user with a zero balance
func NewUser(name, email string, role Role, negativeLimit int64, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidRequest
	}
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() || negativeLimit < 0 {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		Name:                 name,
		Email:                strings.TrimSpace(email),
		Role:                 role,
		NegativeBalanceLimit: negativeLimit,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// Balance returns the current balance in cents
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// ApplyDelta moves the balance by delta cents and returns the new balance.
// The sign of the result is not checked; callers enforce floors beforehand.
func (u *User) ApplyDelta(delta int64, timeProvider coreport.TimeProvider) int64 {
	u.balance += delta
	u.UpdatedAt = timeProvider.Now()
	return u.balance
}

// Floor is the lowest balance the user's own limit allows
func (u *User) Floor() int64 {
	return -u.NegativeBalanceLimit
}

// CanCover reports whether the current balance is at least amount
func (u *User) CanCover(amount int64) bool {
	return u.balance >= amount
}
