// Package notifications holds the Firestore-triggered Cloud Functions that
// push chat, call and ride events to the mobile app.
//
// Every entrypoint absorbs downstream failures: a handler that returned an
// error would be retried by the platform, and none of these notifications
// are worth a retrigger storm. Missing data is an info-level skip; external
// failures are logged with their cause.
package notifications

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/mishwar/notifications/internal/fsevent"
)

var (
	processApp *App
	initOnce   sync.Once
	initErr    error
)

func app(ctx context.Context) (*App, error) {
	initOnce.Do(func() {
		processApp, initErr = newProcessApp(ctx)
	})
	return processApp, initErr
}

func handle(ctx context.Context, e fsevent.Event, fn func(*App, context.Context, fsevent.Event)) error {
	a, err := app(ctx)
	if err != nil {
		log.Errorf("initialization failed: %s", err)
		return nil
	}
	fn(a, ctx, e)
	return nil
}

// SendChatNotification fires on document creation under
// chats/{chatId}/messages/{messageId}.
func SendChatNotification(ctx context.Context, e fsevent.Event) error {
	return handle(ctx, e, (*App).ChatMessageCreated)
}

// SendCallNotification fires on document creation under calls/{callId}.
func SendCallNotification(ctx context.Context, e fsevent.Event) error {
	return handle(ctx, e, (*App).CallCreated)
}

// SendRideBookingNotification fires on document updates under
// rides/{rideId} and reacts to seat booking and unbooking.
func SendRideBookingNotification(ctx context.Context, e fsevent.Event) error {
	return handle(ctx, e, (*App).SeatBookingChanged)
}

// SendApprovalNotification fires on document updates under rides/{rideId}
// and reacts to booking approvals and declines.
func SendApprovalNotification(ctx context.Context, e fsevent.Event) error {
	return handle(ctx, e, (*App).BookingApprovalChanged)
}

// SendRideStatusNotification fires on document updates under rides/{rideId}
// and reacts to lifecycle transitions.
func SendRideStatusNotification(ctx context.Context, e fsevent.Event) error {
	return handle(ctx, e, (*App).RideStatusChanged)
}
