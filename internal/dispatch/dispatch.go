// Package dispatch invokes the push gateway and persists audit records.
// Downstream failures never abort sibling work: per-token multicast failures
// are logged individually and record writes run join-all to completion.
package dispatch

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/mishwar/notifications/internal/gateway"
	"github.com/mishwar/notifications/internal/model"
	"github.com/mishwar/notifications/internal/resolve"
	"github.com/mishwar/notifications/internal/store"
)

type Dispatcher struct {
	gateway gateway.Gateway
	store   store.Store
}

func NewDispatcher(gw gateway.Gateway, st store.Store) *Dispatcher {
	return &Dispatcher{gateway: gw, store: st}
}

// Notify sends one payload to one recipient, then appends the audit record
// when one is given. A failed record write is logged but does not undo or
// fail the delivery.
func (d *Dispatcher) Notify(ctx context.Context, to resolve.Recipient, msg *gateway.Message, rec *model.NotificationRecord) error {
	if err := d.gateway.Send(ctx, to.Token, msg); err != nil {
		return err
	}
	log.Infof("sent %s notification to %s", msg.Data["notificationType"], to.UserID)

	if rec != nil {
		if err := d.store.AppendNotification(ctx, to.UserID, rec); err != nil {
			log.Errorf("recording notification for %s: %s", to.UserID, err)
		}
	}
	return nil
}

// RecordChatUnread bumps the recipient's unread counter for a chat. The
// write is merge-create and the increment atomic, so concurrent messages
// all land. Failures are absorbed here; an unread counter is never worth a
// retrigger.
func (d *Dispatcher) RecordChatUnread(ctx context.Context, recipientID, chatID, lastMessage string) {
	if err := d.store.BumpUnread(ctx, recipientID, chatID, lastMessage); err != nil {
		log.Errorf("updating unread count for %s in chat %s: %s", recipientID, chatID, err)
		return
	}
	log.Infof("updated unread count for %s in chat %s", recipientID, chatID)
}

// Broadcast multicasts one payload to many recipients and appends one audit
// record per recipient. Per-token send failures are enumerated in the logs;
// record writes run concurrently and continue past individual failures.
// Records are written for every recipient that was addressed, matching the
// at-least-once posture of the triggers.
func (d *Dispatcher) Broadcast(ctx context.Context, to []resolve.Recipient, msg *gateway.Message, rec *model.NotificationRecord) (successCount, failureCount int) {
	tokens := make([]string, len(to))
	for i, r := range to {
		tokens[i] = r.Token
	}

	result, err := d.gateway.SendMulticast(ctx, tokens, msg)
	if err != nil {
		log.Errorf("multicast send failed: %s", err)
		return 0, len(to)
	}
	for _, f := range result.Failures {
		log.Errorf("failed to send to token at index %d: %s", f.Index, f.Err)
	}
	log.Infof("sent %s notifications, success: %d, failure: %d",
		msg.Data["notificationType"], result.SuccessCount, result.FailureCount)

	var wg sync.WaitGroup
	wg.Add(len(to))
	for _, r := range to {
		go func(userID string) {
			defer wg.Done()
			if err := d.store.AppendNotification(ctx, userID, rec); err != nil {
				log.Errorf("recording notification for %s: %s", userID, err)
			}
		}(r.UserID)
	}
	wg.Wait()

	return result.SuccessCount, result.FailureCount
}
