package dto

import (
	"time"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
)

// PermissionRequest asks the target for permission to act for them
type PermissionRequest struct {
	TargetID uint64 `json:"targetId" binding:"required"`
	CanPay   bool   `json:"canPay"`
}

// RespondPermissionRequest carries the target's answer
type RespondPermissionRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// PayForFamilyRequest toggles the pay-for-family preference
type PayForFamilyRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PermissionResponse represents a family permission in API responses
type PermissionResponse struct {
	ID          uint64    `json:"id"`
	RequesterID uint64    `json:"requesterId"`
	TargetID    uint64    `json:"targetId"`
	Status      string    `json:"status"`
	CanPay      bool      `json:"canPay"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewPermissionResponse maps a family permission
func NewPermissionResponse(p *entity.FamilyPermission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID,
		RequesterID: p.RequesterID,
		TargetID:    p.TargetID,
		Status:      string(p.Status),
		CanPay:      p.CanPay,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewPermissionList maps family permissions
func NewPermissionList(ps []*entity.FamilyPermission) []PermissionResponse {
	out := make([]PermissionResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewPermissionResponse(p))
	}
	return out
}
