// Package resolve maps logical actors (driver, chat counterpart, booked
// passenger) to delivery tokens and display names. Absent documents or
// tokens degrade to a logged skip, never an error.
package resolve

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/mishwar/notifications/internal/store"
)

// Recipient is a user that can actually be reached.
type Recipient struct {
	UserID string
	Token  string
}

type Resolver struct {
	store store.Store
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{store: s}
}

// Recipient resolves a single user's delivery token. ok is false when the
// user document or its token is missing.
func (r *Resolver) Recipient(ctx context.Context, userID string) (Recipient, bool) {
	user, err := r.store.User(ctx, userID)
	if err != nil {
		log.Infof("skipping notification, user %s not readable: %s", userID, err)
		return Recipient{}, false
	}
	if user.FCMToken == "" {
		log.Infof("skipping notification, user %s has no token", userID)
		return Recipient{}, false
	}
	return Recipient{UserID: userID, Token: user.FCMToken}, true
}

// Recipients resolves many users concurrently. Users without a readable
// document or token are dropped; every lookup runs to completion regardless
// of the others. Order follows the input ids.
func (r *Resolver) Recipients(ctx context.Context, userIDs []string) []Recipient {
	results := make([]*Recipient, len(userIDs))

	var wg sync.WaitGroup
	wg.Add(len(userIDs))
	for i, id := range userIDs {
		go func(i int, id string) {
			defer wg.Done()
			if rec, ok := r.Recipient(ctx, id); ok {
				results[i] = &rec
			}
		}(i, id)
	}
	wg.Wait()

	recipients := make([]Recipient, 0, len(userIDs))
	for _, rec := range results {
		if rec != nil {
			recipients = append(recipients, *rec)
		}
	}
	return recipients
}

// DisplayName looks up a human-readable name for message copy, falling
// through displayName, then name, then the given localized default.
func (r *Resolver) DisplayName(ctx context.Context, userID, fallback string) string {
	user, err := r.store.User(ctx, userID)
	if err != nil {
		log.Infof("falling back to default name for %s: %s", userID, err)
		return fallback
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	if user.Name != "" {
		return user.Name
	}
	return fallback
}
