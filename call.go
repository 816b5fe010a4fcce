package notifications

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/mishwar/notifications/internal/compose"
	"github.com/mishwar/notifications/internal/fsevent"
	"github.com/mishwar/notifications/internal/model"
)

// CallCreated notifies the callee about an incoming voice or video call.
func (a *App) CallCreated(ctx context.Context, e fsevent.Event) {
	if !e.Value.Exists() {
		log.Info("no call data")
		return
	}

	call := model.CallFrom(e.Value.Fields)
	callID := e.Value.ID()

	if call.CallerID == "" || call.CalleeID == "" {
		log.Info("caller or callee id missing")
		return
	}

	to, ok := a.resolver.Recipient(ctx, call.CalleeID)
	if !ok {
		return
	}

	callerName := a.resolver.DisplayName(ctx, call.CallerID, compose.DefaultCallerName)

	payload := compose.Call(callerName, call.CallerID, callID, call.IsVideoCall)
	if err := a.dispatcher.Notify(ctx, to, payload, nil); err != nil {
		log.Errorf("sending call notification to %s: %s", call.CalleeID, err)
	}
}
