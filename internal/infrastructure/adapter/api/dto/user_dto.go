package dto

import (
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/club-ledger/internal/domain/port/usecase"
)

// CreateUserRequest represents the API request for creating a member
type CreateUserRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"omitempty,email"`
	Role                 string `json:"role" binding:"omitempty,oneof=user admin super_admin"`
	NegativeBalanceLimit string `json:"negativeBalanceLimit"`
}

// UserResponse represents a member in API responses
type UserResponse struct {
	ID                   uint64    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email,omitempty"`
	Role                 string    `json:"role"`
	Balance              string    `json:"balance"`
	NegativeBalanceLimit string    `json:"negativeBalanceLimit"`
	PayForFamilyMembers  bool      `json:"payForFamilyMembers"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		Role:                 string(u.Role),
		Balance:              u.GetBalance(),
		NegativeBalanceLimit: entity.FormatCents(u.NegativeBalanceLimit),
		PayForFamilyMembers:  u.PayForFamilyMembers,
		CreatedAt:            u.CreatedAt,
	}
}

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID               uint64 `json:"userId"`
	Balance              string `json:"balance"`
	NegativeBalanceLimit string `json:"negativeBalanceLimit"`
	PayForFamilyMembers  bool   `json:"payForFamilyMembers"`
	Currency             string `json:"currency"`
}

// NewBalanceResponse maps a balance view
func NewBalanceResponse(v *usecase.BalanceView, currency string) BalanceResponse {
	return BalanceResponse{
		UserID:               v.UserID,
		Balance:              v.Balance,
		NegativeBalanceLimit: v.NegativeBalanceLimit,
		PayForFamilyMembers:  v.PayForFamilyMembers,
		Currency:             currency,
	}
}

// CreateGroupRequest represents the API request for creating a group
type CreateGroupRequest struct {
	Name          string `json:"name" binding:"required"`
	MaxDepositors *int   `json:"maxDepositors" binding:"omitempty,min=0"`
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	MaxDepositors *int   `json:"maxDepositors,omitempty"`
}

// NewGroupResponse maps a group entity
func NewGroupResponse(g *entity.Group) GroupResponse {
	return GroupResponse{ID: g.ID, Name: g.Name, MaxDepositors: g.MaxDepositors}
}

// AddGroupMemberRequest represents the API request for adding a member to a group
type AddGroupMemberRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
}
