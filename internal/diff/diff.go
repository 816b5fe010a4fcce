// Package diff extracts the semantically meaningful changes from a
// before/after pair of ride documents. All functions are pure.
package diff

import (
	"github.com/mishwar/notifications/internal/model"
)

// Booking change classifications.
const (
	Booked   = "booked"
	Unbooked = "unbooked"
)

// BookingChange is a single seat flipping between booked and unbooked.
type BookingChange struct {
	SeatIndex int
	Status    string
	UserID    string
}

// ApprovalChange is a seat's approval moving out of pending.
type ApprovalChange struct {
	SeatIndex int
	NewStatus string
	BookedBy  string
}

// StatusTransition is a ride moving into a terminal or active status,
// together with the passengers to notify.
type StatusTransition struct {
	From            string
	To              string
	ApprovedUserIDs []string
}

func seatAt(seats []model.Seat, i int) model.Seat {
	if i < len(seats) {
		return seats[i]
	}
	return model.Seat{}
}

// FirstBookingChange aligns the two layouts by index and returns the first
// seat whose bookedBy flips between empty and non-empty, nil when none
// qualifies. A seat changing hands between two non-empty users is ignored;
// only the first qualifying seat per update is reported, matching the
// single-user-action assumption of the mobile clients.
func FirstBookingChange(before, after []model.Seat) *BookingChange {
	n := len(before)
	if len(after) > n {
		n = len(after)
	}
	for i := 0; i < n; i++ {
		prev := seatAt(before, i).BookedBy
		next := seatAt(after, i).BookedBy
		if prev == next {
			continue
		}
		prevEmpty := model.IsEmptyBooking(prev)
		nextEmpty := model.IsEmptyBooking(next)
		switch {
		case prevEmpty && !nextEmpty:
			return &BookingChange{SeatIndex: i, Status: Booked, UserID: next}
		case !prevEmpty && nextEmpty:
			return &BookingChange{SeatIndex: i, Status: Unbooked, UserID: prev}
		}
	}
	return nil
}

// FirstApprovalChange returns the first seat whose approvalStatus moved from
// exactly pending to approved or declined, nil when none did. The booking
// user is taken from the before side because a decline may clear bookedBy in
// the same write.
func FirstApprovalChange(before, after []model.Seat) *ApprovalChange {
	n := len(before)
	if len(after) > n {
		n = len(after)
	}
	for i := 0; i < n; i++ {
		prev := seatAt(before, i)
		next := seatAt(after, i)
		if prev.ApprovalStatus == next.ApprovalStatus {
			continue
		}
		if prev.ApprovalStatus != model.ApprovalPending {
			continue
		}
		if next.ApprovalStatus != model.ApprovalApproved && next.ApprovalStatus != model.ApprovalDeclined {
			continue
		}
		if model.IsEmptyBooking(prev.BookedBy) {
			continue
		}
		return &ApprovalChange{SeatIndex: i, NewStatus: next.ApprovalStatus, BookedBy: prev.BookedBy}
	}
	return nil
}

// RideStatusChange returns the status transition when the ride moved into
// cancelled, started or completed, nil otherwise. ApprovedUserIDs is the
// deduplicated set of passengers whose booking was approved, in seat order.
func RideStatusChange(before, after model.Ride) *StatusTransition {
	if before.Status == after.Status {
		return nil
	}
	switch after.Status {
	case model.StatusCancelled, model.StatusStarted, model.StatusCompleted:
	default:
		return nil
	}

	tr := &StatusTransition{From: before.Status, To: after.Status}
	seen := make(map[string]bool)
	for _, seat := range after.SeatLayout {
		if model.IsEmptyBooking(seat.BookedBy) || seat.ApprovalStatus != model.ApprovalApproved {
			continue
		}
		if seen[seat.BookedBy] {
			continue
		}
		seen[seat.BookedBy] = true
		tr.ApprovedUserIDs = append(tr.ApprovedUserIDs, seat.BookedBy)
	}
	return tr
}
