package gateway

import (
	"context"

	"firebase.google.com/go/messaging"
)

// FCM sends through Firebase Cloud Messaging.
type FCM struct {
	client *messaging.Client
}

func NewFCM(client *messaging.Client) *FCM {
	return &FCM{client: client}
}

func (f *FCM) android(msg *Message) *messaging.AndroidConfig {
	return &messaging.AndroidConfig{
		Priority: msg.Priority,
		Notification: &messaging.AndroidNotification{
			ChannelID:   msg.Channel,
			Sound:       msg.Sound,
			ClickAction: msg.ClickAction,
		},
	}
}

func (f *FCM) apns(msg *Message) *messaging.APNSConfig {
	badge := msg.Badge
	return &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				ContentAvailable: msg.ContentAvailable,
				Sound:            msg.Sound,
				Badge:            &badge,
				Category:         msg.Category,
			},
		},
	}
}

func (f *FCM) notification(msg *Message) *messaging.Notification {
	return &messaging.Notification{
		Title:    msg.Title,
		Body:     msg.Body,
		ImageURL: msg.ImageURL,
	}
}

func (f *FCM) Send(ctx context.Context, token string, msg *Message) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: f.notification(msg),
		Data:         msg.Data,
		Android:      f.android(msg),
		APNS:         f.apns(msg),
	})
	return err
}

func (f *FCM) SendMulticast(ctx context.Context, tokens []string, msg *Message) (*BatchResult, error) {
	resp, err := f.client.SendMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: f.notification(msg),
		Data:         msg.Data,
		Android:      f.android(msg),
		APNS:         f.apns(msg),
	})
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
	}
	for i, r := range resp.Responses {
		if r.Success {
			continue
		}
		result.Failures = append(result.Failures, SendFailure{Index: i, Token: tokens[i], Err: r.Error})
	}
	return result, nil
}
