package notifications

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/mishwar/notifications/internal/compose"
	"github.com/mishwar/notifications/internal/diff"
	"github.com/mishwar/notifications/internal/fsevent"
	"github.com/mishwar/notifications/internal/model"
)

// SeatBookingChanged notifies the driver when a passenger books or unbooks
// a seat. Only the first changed seat per update is acted on; the mobile
// clients write one seat per user action.
func (a *App) SeatBookingChanged(ctx context.Context, e fsevent.Event) {
	if !e.OldValue.Exists() || !e.Value.Exists() {
		log.Info("missing before or after data")
		return
	}

	before := model.RideFrom(e.OldValue.Fields)
	after := model.RideFrom(e.Value.Fields)
	rideID := e.Value.ID()

	change := diff.FirstBookingChange(before.SeatLayout, after.SeatLayout)
	if change == nil {
		log.Debug("no booking change detected")
		return
	}
	if model.IsEmptyBooking(change.UserID) {
		log.Info("booking change carries no valid user id")
		return
	}

	if after.DriverID == "" {
		log.Infof("ride %s has no driver id", rideID)
		return
	}

	to, ok := a.resolver.Recipient(ctx, after.DriverID)
	if !ok {
		return
	}

	userName := a.resolver.DisplayName(ctx, change.UserID, compose.DefaultUserName)

	destination := after.EndLocationName
	if destination == "" {
		destination = compose.DefaultDestination
	}

	payload := compose.Booking(change.Status == diff.Booked, userName, destination,
		compose.RideDate(after.Date), rideID, change.UserID)

	rec := &model.NotificationRecord{
		Type:          compose.TypeRideBooking,
		RideID:        rideID,
		BookedBy:      change.UserID,
		BookedByName:  userName,
		BookingStatus: change.Status,
	}

	if err := a.dispatcher.Notify(ctx, to, payload, rec); err != nil {
		log.Errorf("sending booking notification to driver %s: %s", after.DriverID, err)
	}
}

// BookingApprovalChanged notifies the booking passenger when the driver
// approves or declines their seat.
func (a *App) BookingApprovalChanged(ctx context.Context, e fsevent.Event) {
	if !e.OldValue.Exists() || !e.Value.Exists() {
		log.Info("missing before or after data")
		return
	}

	before := model.RideFrom(e.OldValue.Fields)
	after := model.RideFrom(e.Value.Fields)
	rideID := e.Value.ID()

	change := diff.FirstApprovalChange(before.SeatLayout, after.SeatLayout)
	if change == nil {
		log.Debug("no approval change detected")
		return
	}

	to, ok := a.resolver.Recipient(ctx, change.BookedBy)
	if !ok {
		return
	}

	payload := compose.Approval(change.NewStatus == model.ApprovalApproved, rideID, change.BookedBy)

	rec := &model.NotificationRecord{
		Type:           compose.TypeApproval,
		RideID:         rideID,
		BookedBy:       change.BookedBy,
		ApprovalStatus: change.NewStatus,
	}

	if err := a.dispatcher.Notify(ctx, to, payload, rec); err != nil {
		log.Errorf("sending approval notification to %s: %s", change.BookedBy, err)
	}
}

// RideStatusChanged broadcasts a ride lifecycle transition to every
// passenger with an approved booking.
func (a *App) RideStatusChanged(ctx context.Context, e fsevent.Event) {
	if !e.OldValue.Exists() || !e.Value.Exists() {
		log.Info("missing before or after data")
		return
	}

	before := model.RideFrom(e.OldValue.Fields)
	after := model.RideFrom(e.Value.Fields)
	rideID := e.Value.ID()

	transition := diff.RideStatusChange(before, after)
	if transition == nil {
		log.Debugf("no relevant status transition, before: %s, after: %s", before.Status, after.Status)
		return
	}
	log.Infof("status transition detected: %s -> %s", transition.From, transition.To)

	if len(transition.ApprovedUserIDs) == 0 {
		log.Info("no approved booked users to notify")
		return
	}

	recipients := a.resolver.Recipients(ctx, transition.ApprovedUserIDs)
	if len(recipients) == 0 {
		log.Info("no tokens available for sending notifications")
		return
	}

	payload, ok := compose.RideStatus(transition.To, rideID)
	if !ok {
		log.Infof("unknown new status: %s", transition.To)
		return
	}

	rec := &model.NotificationRecord{
		Type:      compose.TypeRideStatus,
		RideID:    rideID,
		NewStatus: transition.To,
	}

	a.dispatcher.Broadcast(ctx, recipients, payload, rec)
}
