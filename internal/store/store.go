// Package store is the document-store surface of the pipeline: typed reads
// of the collections the functions consume and the append-only writes they
// produce.
package store

import (
	"context"

	"github.com/mishwar/notifications/internal/model"
)

// Store is the document-store access the notification pipeline needs.
// Implementations must treat reads as point-in-time snapshots; callers
// degrade any error to a logged skip.
type Store interface {
	// User reads users/{id}.
	User(ctx context.Context, id string) (*model.User, error)
	// Chat reads chats/{id}.
	Chat(ctx context.Context, id string) (*model.Chat, error)
	// AppendNotification creates a new document in
	// users/{userID}/notifications.
	AppendNotification(ctx context.Context, userID string, rec *model.NotificationRecord) error
	// BumpUnread atomically increments the unread counter on
	// userChats/{recipientID}_{chatID}, creating the document when absent.
	BumpUnread(ctx context.Context, recipientID, chatID, lastMessage string) error
}
