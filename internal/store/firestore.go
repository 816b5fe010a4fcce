package store

import (
	"context"
	"crypto/rand"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/mishwar/notifications/internal/model"
)

const (
	usersCollection         = "users"
	chatsCollection         = "chats"
	userChatsCollection     = "userChats"
	notificationsCollection = "notifications"

	alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Firestore implements Store on a Cloud Firestore client.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// docID generates a 20-character Firestore-style random document id.
func docID() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating doc id: %w", err)
	}
	for i, byt := range b {
		b[i] = alphanum[int(byt)%len(alphanum)]
	}
	return string(b), nil
}

func (s *Firestore) User(ctx context.Context, id string) (*model.User, error) {
	snap, err := s.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", id, err)
	}
	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", id, err)
	}
	return &user, nil
}

func (s *Firestore) Chat(ctx context.Context, id string) (*model.Chat, error) {
	snap, err := s.client.Collection(chatsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching chat %s: %w", id, err)
	}
	var chat model.Chat
	if err := snap.DataTo(&chat); err != nil {
		return nil, fmt.Errorf("decoding chat %s: %w", id, err)
	}
	return &chat, nil
}

func (s *Firestore) AppendNotification(ctx context.Context, userID string, rec *model.NotificationRecord) error {
	id, err := docID()
	if err != nil {
		return err
	}
	_, err = s.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsCollection).Doc(id).Create(ctx, rec)
	if err != nil {
		return fmt.Errorf("appending notification for %s: %w", userID, err)
	}
	return nil
}

func (s *Firestore) BumpUnread(ctx context.Context, recipientID, chatID, lastMessage string) error {
	doc := s.client.Collection(userChatsCollection).Doc(recipientID + "_" + chatID)
	_, err := doc.Set(ctx, map[string]interface{}{
		"unreadCount":     firestore.Increment(1),
		"lastMessage":     lastMessage,
		"lastMessageTime": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("bumping unread count for %s in chat %s: %w", recipientID, chatID, err)
	}
	return nil
}
