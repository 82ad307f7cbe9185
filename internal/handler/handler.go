/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 의존성과 라우트 등록
* Workflow: 		Kisan 카드 -> 로그인/회원가입 -> /api 메뉴
 */
package handler

import (
	"context"
	"errors"
	"net/http"

	"AgriMind_FarmAssistant/internal/advice"
	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/crop"
	"AgriMind_FarmAssistant/internal/kisan"
	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/middleware"
	"AgriMind_FarmAssistant/internal/models"
	"AgriMind_FarmAssistant/internal/session"
	"AgriMind_FarmAssistant/internal/storage"
	"AgriMind_FarmAssistant/internal/weather"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type Speaker interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type HistoryStore interface {
	CreateRecord(ctx context.Context, r models.Record) (int64, error)
	GetRecordsByUsername(ctx context.Context, username string, limit int) ([]models.Record, error)
}

// Deps are the collaborators a Handler needs. Transcriber, Speaker and History may be nil.
type Deps struct {
	Kisan       *kisan.Verifier
	Tokens      *auth.TokenManager
	Sessions    *session.Store
	Accounts    *storage.CredentialStore
	Weather     advice.WeatherFetcher
	Composer    *advice.Composer
	Transcriber Transcriber
	Speaker     Speaker
	History     HistoryStore
	Crops       *crop.Model
	Logger      *zap.Logger

	RateLimitPerMinute int
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.RateLimitPerMinute <= 0 {
		d.RateLimitPerMinute = 30
	}
	return &Handler{Deps: d}
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
	Kind  string `json:"kind,omitempty" example:"invalid_credentials"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"Saved."`
}

// RegisterRoutes wires every menu route onto r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	limited := middleware.RateLimit(h.RateLimitPerMinute)
	withSession := middleware.SessionMiddleware(h.Tokens, h.Sessions)

	r.POST("/kisan/verify", limited, h.VerifyKisan)

	gate := r.Group("/", withSession, middleware.RequireVerified())
	{
		gate.POST("/signup", h.Signup)
		gate.POST("/login", limited, h.Login)
	}

	api := r.Group("/api", withSession, middleware.RequireVerified(), middleware.RequireLogin())
	{
		api.GET("/menu", h.Menu)
		api.GET("/home", h.Home)
		api.POST("/advice", h.CropAdvice)
		api.GET("/weather", h.CurrentWeather)
		api.GET("/history", h.AdviceHistory)
		api.POST("/chat", h.Chat)
		api.GET("/chat", h.ChatLog)
		api.POST("/voice", h.Voice)
		api.POST("/disease", h.DiseaseCheck)
		api.POST("/soil", h.AddSoil)
		api.GET("/soil", h.SoilLog)
		api.POST("/rentals", h.AddRental)
		api.GET("/rentals", h.RentalLog)
		api.POST("/crop/recommend", h.RecommendCrop)
		api.POST("/logout", h.Logout)
	}

	r.GET("/ws/chat", withSession, middleware.RequireVerified(), middleware.RequireLogin(), h.HandleChatConnection)
}

// 에러 종류별 상태 코드와 kind 문자열
func errorStatus(err error) (int, string) {
	var providerErr *weather.ProviderError
	var transportErr *weather.TransportError
	var serviceErr *llm.ServiceError
	switch {
	case errors.Is(err, kisan.ErrInvalidCard):
		return http.StatusForbidden, "invalid_card"
	case errors.Is(err, storage.ErrUsernameExists):
		return http.StatusConflict, "duplicate_username"
	case errors.Is(err, storage.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, storage.ErrCorruptStore):
		return http.StatusInternalServerError, "corrupt_store"
	case errors.As(err, &providerErr):
		return http.StatusBadGateway, "weather_provider"
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, "weather_transport"
	case errors.As(err, &serviceErr):
		return http.StatusBadGateway, "advice_service"
	case errors.Is(err, advice.ErrMissingInput), errors.Is(err, advice.ErrUnknownSoil),
		errors.Is(err, models.ErrPHOutOfRange), errors.Is(err, models.ErrMoistureOutOfRange),
		errors.Is(err, models.ErrRentalIncomplete):
		return http.StatusBadRequest, "invalid_input"
	}
	return http.StatusInternalServerError, "internal"
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status, kind := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Kind: kind})
}
