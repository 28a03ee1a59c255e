package registration

import "github.com/amirhossein-jamali/club-ledger/internal/domain/entity"

// The functions in this file decide placements in memory. Inputs are lists
// ordered oldest first (created_at, then id); outputs are applied by the
// caller as batch status updates inside the event's transaction.

// pickBumpTarget returns the most recently registered non-depositor, or nil
// when every registered user holds a deposit
func pickBumpTarget(registered []*entity.Registration, depositors map[uint64]bool) *entity.Registration {
	for i := len(registered) - 1; i >= 0; i-- {
		if !depositors[registered[i].UserID] {
			return registered[i]
		}
	}
	return nil
}

// pickPromotion returns the oldest waitlisted depositor, else the oldest waitlisted user
func pickPromotion(waitlist []*entity.Registration, depositors map[uint64]bool) *entity.Registration {
	for _, r := range waitlist {
		if depositors[r.UserID] {
			return r
		}
	}
	if len(waitlist) > 0 {
		return waitlist[0]
	}
	return nil
}

// planPromotions picks up to slots waitlisted rows: depositors oldest first,
// then non-depositors oldest first
func planPromotions(waitlist []*entity.Registration, slots int, depositors map[uint64]bool) []*entity.Registration {
	return twoPass(waitlist, slots, depositors, true, false)
}

// planDemotions picks excess registered rows: non-depositors newest first,
// then depositors newest first
func planDemotions(registered []*entity.Registration, excess int, depositors map[uint64]bool) []*entity.Registration {
	return twoPass(registered, excess, depositors, false, true)
}

// twoPass selects n rows, first from the class whose deposit flag equals
// firstClass, then from the other class, scanning oldest first or newest first
func twoPass(rows []*entity.Registration, n int, depositors map[uint64]bool, firstClass, newestFirst bool) []*entity.Registration {
	if n <= 0 || len(rows) == 0 {
		return nil
	}

	ordered := rows
	if newestFirst {
		ordered = make([]*entity.Registration, len(rows))
		for i, r := range rows {
			ordered[len(rows)-1-i] = r
		}
	}

	picked := make([]*entity.Registration, 0, min(n, len(rows)))
	for _, class := range []bool{firstClass, !firstClass} {
		for _, r := range ordered {
			if len(picked) == n {
				return picked
			}
			if depositors[r.UserID] == class {
				picked = append(picked, r)
			}
		}
	}
	return picked
}

// countDepositors counts rows whose user holds a deposit
func countDepositors(rows []*entity.Registration, depositors map[uint64]bool) int {
	n := 0
	for _, r := range rows {
		if depositors[r.UserID] {
			n++
		}
	}
	return n
}

func ids(rows []*entity.Registration) []uint64 {
	out := make([]uint64, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func userIDs(rows ...[]*entity.Registration) []uint64 {
	var out []uint64
	for _, list := range rows {
		for _, r := range list {
			out = append(out, r.UserID)
		}
	}
	return out
}
