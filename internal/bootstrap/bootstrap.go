package bootstrap

import (
	"context"
	"fmt"

	"ivr-server/internal/config"
	"ivr-server/internal/observability"
	"ivr-server/internal/store"
	"ivr-server/internal/store/boltstore"
	"ivr-server/internal/twiliosig"

	callFlowHandler "ivr-server/internal/callflow/handler"
	"ivr-server/internal/callflow/markup"
	callFlowProcessor "ivr-server/internal/callflow/processor"
	"ivr-server/internal/callflow/replay"
	redisClient "ivr-server/internal/clients/redis"
	"ivr-server/internal/clients/voiceit"
	dispatchHandler "ivr-server/internal/dispatch/handler"
	dispatchProcessor "ivr-server/internal/dispatch/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Storer
	Logger *observability.Logger

	// Handlers
	CallFlowHandler callFlowHandler.Handler
	DispatchHandler dispatchHandler.Handler

	// Middleware
	SignatureValidator *twiliosig.Validator

	// Clients (for cleanup)
	RedisClient *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = OpenSessionStore(cfg.Session, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	voiceItClient := voiceit.NewClient(cfg.VoiceIt.APIKey, cfg.VoiceIt.APIToken, cfg.VoiceIt.BaseURL, logger)

	// Initialize call flow processor and handler
	callFlowProc := callFlowProcessor.New(deps.Store, voiceItClient, callFlowProcessor.Config{
		AppName:             cfg.App.Name,
		Phrase:              cfg.CallFlow.Phrase,
		ContentLanguage:     cfg.CallFlow.ContentLanguage,
		CallbackPhoneNumber: cfg.App.CallbackPhoneNumber,
		RecordMaxLength:     cfg.CallFlow.RecordMaxLength,
	}, logger)
	replayCache := replay.New(deps.RedisClient, cfg.CallFlow.ReplayTTL, logger)
	deps.CallFlowHandler = callFlowHandler.New(
		callFlowProc,
		markup.NewRenderer(cfg.CallFlow.SayVoice),
		replayCache,
		cfg.App.CallbackPhoneNumber,
		logger,
	)

	// Initialize dispatch processor and handler
	dispatchProc := dispatchProcessor.New(deps.Store, voiceItClient, cfg.CallFlow.VerifiedFreshness, logger)
	deps.DispatchHandler = dispatchHandler.New(dispatchProc, logger)

	deps.SignatureValidator = twiliosig.New(cfg.Twilio.AuthToken, cfg.Twilio.PublicBaseURL, logger)
	if !deps.SignatureValidator.IsEnabled() {
		logger.Warn(ctx, "TWILIO_AUTH_TOKEN not set, webhook signatures are not validated")
	}

	return deps, nil
}

// OpenSessionStore opens the configured session backend
func OpenSessionStore(sessionCfg config.SessionConfig, dbCfg config.DatabaseConfig, logger *observability.Logger) (store.Storer, error) {
	switch sessionCfg.Backend {
	case config.SessionBackendBBolt:
		s, err := boltstore.Open(sessionCfg.BBoltPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open bbolt session store: %w", err)
		}
		return s, nil
	default:
		s, err := store.New(dbCfg.ConnectionString(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &s, nil
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close session store", err)
		}
	}
}
