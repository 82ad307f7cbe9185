// @title           AgriMind Farm Assistant API
// @version         1.0
// @description     Kisan 카드 인증 후 이용하는 농업 도우미 API (작물 조언, 날씨, AI 채팅, 음성, 토양/대여 기록)
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "AgriMind_FarmAssistant/docs"
	"AgriMind_FarmAssistant/internal/advice"
	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/config"
	"AgriMind_FarmAssistant/internal/crop"
	"AgriMind_FarmAssistant/internal/handler"
	"AgriMind_FarmAssistant/internal/kisan"
	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/session"
	"AgriMind_FarmAssistant/internal/storage"
	"AgriMind_FarmAssistant/internal/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDeps(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("main(): failed to initialize dependencies", zap.Error(err))
	}
	defer cleanup()

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handler.New(deps).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("main(): server listening", zap.String("addr", srv.Addr), zap.Bool("voice", cfg.VoiceEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main(): server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("main(): shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main(): forced shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = lvl
	return zapConfig.Build()
}

// buildDeps 는 핸들러가 쓰는 저장소/외부 클라이언트를 만든다. 음성 기능은 자격 증명이 있을 때만 켠다.
func buildDeps(ctx context.Context, cfg *config.Config, logger *zap.Logger) (handler.Deps, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("main(): close failed", zap.Error(err))
			}
		}
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return handler.Deps{}, cleanup, err
	}

	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		return handler.Deps{}, cleanup, err
	}
	closers = append(closers, db.Close)

	samples := crop.DefaultDataset()
	if cfg.CropDatasetPath != "" {
		if samples, err = crop.LoadDataset(cfg.CropDatasetPath); err != nil {
			cleanup()
			return handler.Deps{}, func() {}, err
		}
	}
	model, err := crop.Train(samples)
	if err != nil {
		cleanup()
		return handler.Deps{}, func() {}, err
	}

	weatherClient := weather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout, logger)
	chatClient := llm.NewChatClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout, logger)
	if cfg.LLM.APIKey == "" {
		logger.Warn("main(): OPENROUTER_API_KEY is empty, AI answers will fail")
	}

	deps := handler.Deps{
		Kisan:              kisan.NewVerifier(cfg.KisanCardNumber),
		Tokens:             tokens,
		Sessions:           session.NewStore(cfg.SessionTTL),
		Accounts:           storage.NewCredentialStore(cfg.UsersFile, auth.NewPasswordHasher(cfg.PasswordHasher), logger),
		Weather:            weatherClient,
		Composer:           advice.NewComposer(weatherClient, chatClient, logger),
		History:            db,
		Crops:              model,
		Logger:             logger,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}

	if !cfg.VoiceEnabled() {
		logger.Info("main(): GOOGLE_APPLICATION_CREDENTIALS not set, voice bot disabled")
		return deps, cleanup, nil
	}

	// 인터페이스 필드에 nil 포인터를 넣지 않도록 성공한 경우에만 할당
	recognizer, err := llm.NewRecognizer(ctx, cfg.Voice.CredentialsFile, cfg.Voice.LanguageCode, logger)
	if err != nil {
		logger.Warn("main(): speech-to-text unavailable", zap.Error(err))
	} else {
		deps.Transcriber = recognizer
		closers = append(closers, recognizer.Close)
	}
	synthesizer, err := llm.NewSynthesizer(ctx, cfg.Voice.CredentialsFile, cfg.Voice.LanguageCode, logger)
	if err != nil {
		logger.Warn("main(): text-to-speech unavailable", zap.Error(err))
	} else {
		deps.Speaker = synthesizer
		closers = append(closers, synthesizer.Close)
	}
	return deps, cleanup, nil
}
