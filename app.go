package notifications

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/mishwar/notifications/internal/config"
	"github.com/mishwar/notifications/internal/dispatch"
	"github.com/mishwar/notifications/internal/gateway"
	"github.com/mishwar/notifications/internal/resolve"
	"github.com/mishwar/notifications/internal/store"
)

// App is the dependency context shared by all handlers, constructed once
// per process.
type App struct {
	cfg        config.Config
	store      store.Store
	gateway    gateway.Gateway
	resolver   *resolve.Resolver
	dispatcher *dispatch.Dispatcher
}

// NewApp wires the pipeline around the given collaborators. Tests inject
// fakes here; production wiring comes from newProcessApp.
func NewApp(cfg config.Config, st store.Store, gw gateway.Gateway) *App {
	return &App{
		cfg:        cfg,
		store:      st,
		gateway:    gw,
		resolver:   resolve.NewResolver(st),
		dispatcher: dispatch.NewDispatcher(gw, st),
	}
}

// newProcessApp builds the production App: config from the environment,
// Firestore for documents, FCM or Expo for push depending on configuration.
func newProcessApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{log.FieldKeyMsg: "message"},
	})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firestore client: %w", err)
	}

	var gw gateway.Gateway
	switch cfg.PushProvider {
	case config.ProviderExpo:
		gw = gateway.NewExpo(nil)
	default:
		messagingClient, err := firebaseApp.Messaging(ctx)
		if err != nil {
			return nil, fmt.Errorf("initializing messaging client: %w", err)
		}
		gw = gateway.NewFCM(messagingClient)
	}

	return NewApp(cfg, store.NewFirestore(firestoreClient), gw), nil
}
