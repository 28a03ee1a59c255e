package registration

import (
	"testing"

	"github.com/amirhossein-jamali/club-ledger/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

// rows builds registrations for users 1..n, oldest first
func rows(n int) []*entity.Registration {
	out := make([]*entity.Registration, n)
	for i := range out {
		out[i] = &entity.Registration{ID: uint64(100 + i), UserID: uint64(i + 1)}
	}
	return out
}

func holders(userIDs ...uint64) map[uint64]bool {
	m := make(map[uint64]bool, len(userIDs))
	for _, id := range userIDs {
		m[id] = true
	}
	return m
}

func TestPickBumpTarget(t *testing.T) {
	t.Run("Newest non-depositor", func(t *testing.T) {
		got := pickBumpTarget(rows(4), holders(2, 4))
		assert.Equal(t, uint64(3), got.UserID)
	})

	t.Run("All depositors", func(t *testing.T) {
		assert.Nil(t, pickBumpTarget(rows(2), holders(1, 2)))
	})

	t.Run("Empty roster", func(t *testing.T) {
		assert.Nil(t, pickBumpTarget(nil, holders()))
	})
}

func TestPickPromotion(t *testing.T) {
	t.Run("Oldest depositor beats older non-depositor", func(t *testing.T) {
		got := pickPromotion(rows(4), holders(3, 4))
		assert.Equal(t, uint64(3), got.UserID)
	})

	t.Run("Oldest overall without depositors", func(t *testing.T) {
		got := pickPromotion(rows(3), holders())
		assert.Equal(t, uint64(1), got.UserID)
	})

	t.Run("Empty waitlist", func(t *testing.T) {
		assert.Nil(t, pickPromotion(nil, holders(1)))
	})
}

func TestPlanPromotions(t *testing.T) {
	tests := []struct {
		name       string
		waitlist   int
		slots      int
		depositors map[uint64]bool
		want       []uint64
	}{
		{"Depositors first then oldest", 5, 3, holders(4, 2), []uint64{2, 4, 1}},
		{"Slots exceed waitlist", 2, 5, holders(2), []uint64{2, 1}},
		{"No slots", 3, 0, holders(1), nil},
		{"Only non-depositors", 3, 2, holders(), []uint64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planPromotions(rows(tt.waitlist), tt.slots, tt.depositors)
			assert.Equal(t, tt.want, userIDs(got))
		})
	}
}

func TestPlanDemotions(t *testing.T) {
	tests := []struct {
		name       string
		registered int
		excess     int
		depositors map[uint64]bool
		want       []uint64
	}{
		{"Newest non-depositors first", 5, 2, holders(1, 4), []uint64{5, 3}},
		{"Falls back to newest depositors", 5, 2, holders(1, 2, 3, 4), []uint64{5, 4}},
		{"All depositors", 3, 1, holders(1, 2, 3), []uint64{3}},
		{"Excess covers everyone", 2, 4, holders(1), []uint64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planDemotions(rows(tt.registered), tt.excess, tt.depositors)
			assert.Equal(t, tt.want, userIDs(got))
		})
	}
}

func TestPlanDemotionsKeepsInputOrder(t *testing.T) {
	in := rows(3)
	planDemotions(in, 1, holders())
	assert.Equal(t, []uint64{1, 2, 3}, userIDs(in))
}

func TestCountDepositors(t *testing.T) {
	assert.Equal(t, 2, countDepositors(rows(4), holders(1, 3, 9)))
	assert.Equal(t, []uint64{100, 101}, ids(rows(2)))
}
