package notifications

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/mishwar/notifications/internal/compose"
	"github.com/mishwar/notifications/internal/fsevent"
	"github.com/mishwar/notifications/internal/model"
)

// ChatMessageCreated notifies the other chat participant about a new
// message and bumps their unread counter.
func (a *App) ChatMessageCreated(ctx context.Context, e fsevent.Event) {
	if !e.Value.Exists() {
		log.Info("no data associated with the event")
		return
	}

	msg := model.ChatMessageFrom(e.Value.Fields)
	chatID := e.Value.Param("chats")
	messageID := e.Value.ID()

	if msg.SenderID == "" {
		log.Info("no sender id in message data")
		return
	}

	text := msg.Text
	if text == "" {
		text = compose.DefaultMessageBody
	}

	chat, err := a.store.Chat(ctx, chatID)
	if err != nil {
		log.Infof("chat %s not readable: %s", chatID, err)
		return
	}

	recipientID := chat.OtherParticipant(msg.SenderID)
	if recipientID == "" {
		log.Infof("recipient not found for chat %s", chatID)
		return
	}

	to, ok := a.resolver.Recipient(ctx, recipientID)
	if !ok {
		return
	}

	senderName := msg.SenderName
	if senderName == "" {
		senderName = a.resolver.DisplayName(ctx, msg.SenderID, compose.DefaultUserName)
	}

	payload := compose.Chat(compose.ChatParams{
		SenderName: senderName,
		Text:       text,
		ImageURL:   msg.ImageURL,
		ChatID:     chatID,
		SenderID:   msg.SenderID,
		MessageID:  messageID,
		Type:       msg.Type,
	})

	if err := a.dispatcher.Notify(ctx, to, payload, nil); err != nil {
		log.Errorf("sending chat notification to %s: %s", recipientID, err)
		return
	}

	a.dispatcher.RecordChatUnread(ctx, recipientID, chatID, text)
}
