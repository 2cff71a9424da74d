package booking

import "github.com/google/uuid"

// HasConflict decides whether a candidate interval may be inserted next
// to the existing reservations. It is a pure half-open overlap test:
// blocked-kind entries are skipped (admins may deliberately book over
// their own blocks) as is the reservation being edited.
//
// The availability grid uses this as an advisory pre-check; the commit
// path re-runs it against the latest reservation set inside the insert
// transaction, which is the only authoritative invocation.
func HasConflict(candidate TimeSlot, existing []*Reservation, excludeID uuid.UUID) bool {
	for _, r := range existing {
		if r == nil || !r.IsStructurallyValid() {
			continue
		}
		if r.IsBlocked() {
			continue
		}
		if excludeID != uuid.Nil && r.ID() == excludeID {
			continue
		}
		if candidate.Overlaps(r.TimeSlot()) {
			return true
		}
	}
	return false
}
