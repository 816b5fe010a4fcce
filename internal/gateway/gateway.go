// Package gateway abstracts the push-messaging provider behind a small
// send/send-multicast interface. The FCM implementation is the production
// path; the Expo implementation serves Expo-managed app builds.
package gateway

import "context"

// Message is a provider-neutral notification payload. Data values must all
// be strings because the transports reject heterogeneous maps.
type Message struct {
	Title    string
	Body     string
	ImageURL string
	Data     map[string]string

	// Android delivery hints.
	Channel     string
	Priority    string
	Sound       string
	ClickAction string

	// iOS delivery hints.
	Badge            int
	Category         string
	ContentAvailable bool
}

// SendFailure records one failed recipient of a multicast send.
type SendFailure struct {
	Index int
	Token string
	Err   error
}

// BatchResult summarizes a multicast send.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Failures     []SendFailure
}

// Gateway delivers composed messages to device tokens.
type Gateway interface {
	// Send delivers to a single token.
	Send(ctx context.Context, token string, msg *Message) error
	// SendMulticast delivers to many tokens, reporting per-token failures
	// without aborting the batch.
	SendMulticast(ctx context.Context, tokens []string, msg *Message) (*BatchResult, error)
}
