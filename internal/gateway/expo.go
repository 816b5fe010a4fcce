package gateway

import (
	"context"
	"fmt"

	expo "github.com/oliveroneill/exponent-server-sdk-golang/sdk"
)

// Expo sends through the Expo push service, used by app builds that ship
// with the Expo-managed runtime instead of bare FCM.
type Expo struct {
	client *expo.PushClient
}

func NewExpo(client *expo.PushClient) *Expo {
	if client == nil {
		client = expo.NewPushClient(nil)
	}
	return &Expo{client: client}
}

func (e *Expo) message(token expo.ExponentPushToken, msg *Message) *expo.PushMessage {
	priority := expo.DefaultPriority
	if msg.Priority == "high" {
		priority = expo.HighPriority
	}
	return &expo.PushMessage{
		To:        []expo.ExponentPushToken{token},
		Title:     msg.Title,
		Body:      msg.Body,
		Data:      msg.Data,
		Sound:     msg.Sound,
		Priority:  priority,
		Badge:     msg.Badge,
		ChannelID: msg.Channel,
	}
}

func (e *Expo) publish(token string, msg *Message) error {
	pushToken, err := expo.NewExponentPushToken(token)
	if err != nil {
		return fmt.Errorf("invalid expo token: %w", err)
	}
	resp, err := e.client.Publish(e.message(pushToken, msg))
	if err != nil {
		return err
	}
	if err := resp.ValidateResponse(); err != nil {
		return err
	}
	return nil
}

func (e *Expo) Send(_ context.Context, token string, msg *Message) error {
	return e.publish(token, msg)
}

// SendMulticast publishes one message per token. The Expo SDK's batched
// publish only surfaces the first receipt, so per-token sends keep the
// failure accounting exact.
func (e *Expo) SendMulticast(_ context.Context, tokens []string, msg *Message) (*BatchResult, error) {
	result := &BatchResult{}
	for i, token := range tokens {
		if err := e.publish(token, msg); err != nil {
			result.FailureCount++
			result.Failures = append(result.Failures, SendFailure{Index: i, Token: token, Err: err})
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}
