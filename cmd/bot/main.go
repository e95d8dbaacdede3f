package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/advice"
	"github.com/xaenox/nyaymitra-bot/internal/bot"
	"github.com/xaenox/nyaymitra-bot/internal/capability"
	"github.com/xaenox/nyaymitra-bot/internal/classifier"
	"github.com/xaenox/nyaymitra-bot/internal/intake"
	"github.com/xaenox/nyaymitra-bot/internal/language"
	"github.com/xaenox/nyaymitra-bot/internal/pipeline"
	"github.com/xaenox/nyaymitra-bot/internal/referral"
	"github.com/xaenox/nyaymitra-bot/internal/reply"
	"github.com/xaenox/nyaymitra-bot/internal/rights"
	"github.com/xaenox/nyaymitra-bot/internal/server"
	"github.com/xaenox/nyaymitra-bot/internal/storage"
	"github.com/xaenox/nyaymitra-bot/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		zap.NewExample().Fatal("Failed to load config", zap.Error(err), zap.String("path", *configPath))
	}

	// Initialize logger
	logger := newLogger(cfg)
	defer logger.Sync()

	logger.Info("NyayMitra starting",
		zap.String("env", cfg.App.Env),
		zap.String("model", cfg.OpenAI.Model),
		zap.Bool("openai_configured", cfg.OpenAIConfigured()),
		zap.Bool("twilio_configured", cfg.TwilioConfigured()),
		zap.String("directory_source", cfg.Directory.Source))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the referral directory once; it is read-only afterwards
	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		logger.Warn("Referral storage unavailable, continuing with an empty directory", zap.Error(err))
		store = storage.NewMemoryStorage()
	}
	directory := referral.LoadDirectory(ctx, store, logger)
	store.Close()

	// Initialize capabilities, mocked when OpenAI is not configured
	speech, ocr, translator, client := newCapabilities(cfg, logger)

	in := intake.New(speech, ocr, language.NewNormalizer(translator, logger), logger)
	composer := reply.NewComposer(
		classifier.NewKeywordClassifier(),
		directory,
		advice.NewGPTGenerator(client, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature, logger),
		cfg.Referrals.Limit,
		logger,
	)
	p := pipeline.New(in, composer, cfg.HTTP.RequestTimeout, logger)

	var wg sync.WaitGroup

	if cfg.Telegram.Enabled {
		b, err := bot.New(cfg.Telegram.Token, p, logger)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := b.Start(ctx); err != nil {
				logger.Error("Bot error", zap.Error(err))
			}
		}()
	}

	cards := rights.NewGenerator(client, cfg.OpenAI.Model, logger)

	srv := server.New(cfg.HTTP.Addr, cfg.CORSOriginList(), p, cards, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Error("HTTP server error", zap.Error(err))
		stop()
	}

	wg.Wait()
	logger.Info("NyayMitra stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.App.LogLevel); err == nil {
		zcfg.Level = level
	}

	logger, err := zcfg.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func newStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	switch cfg.Directory.Source {
	case config.DirectorySourcePostgres:
		logger.Info("Using PostgreSQL referral directory")
		return storage.NewPostgresStorage(ctx, storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
	case config.DirectorySourceMemory:
		logger.Info("Using empty in-memory referral directory, referrals disabled")
		return storage.NewMemoryStorage(), nil
	default:
		logger.Info("Using file referral directory", zap.String("path", cfg.Directory.Path))
		return storage.NewFileStorage(cfg.Directory.Path), nil
	}
}

func newCapabilities(cfg *config.Config, logger *zap.Logger) (capability.SpeechToText, capability.OCR, capability.Translator, *openai.Client) {
	if !cfg.OpenAIConfigured() {
		logger.Warn("OpenAI API key not set, AI capabilities run in mock mode")
		return capability.NewMockSpeechToText(logger),
			capability.NewMockOCR(logger),
			capability.NewMockTranslator(logger),
			nil
	}

	client := capability.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	fetcher := capability.NewMediaFetcher(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)

	return capability.NewWhisperSpeechToText(client, fetcher, cfg.OpenAI.TranscriptionModel, logger),
		capability.NewVisionOCR(client, fetcher, cfg.OpenAI.VisionModel, logger),
		capability.NewOpenAITranslator(client, cfg.OpenAI.Model, logger),
		client
}
