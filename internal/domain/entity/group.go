package entity

import "time"

// Group is a set of members sharing events and an optional depositor cap
type Group struct {
	ID            uint64
	Name          string
	MaxDepositors *int
	CreatedAt     time.Time
}

// DepositorCapReached reports whether activeDepositors already fills the cap
func (g *Group) DepositorCapReached(activeDepositors int64) bool {
	return g.MaxDepositors != nil && activeDepositors >= int64(*g.MaxDepositors)
}
