package handler

import (
	"errors"
	"net/http"
	"strings"

	"AgriMind_FarmAssistant/internal/advice"
	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/middleware"
	"AgriMind_FarmAssistant/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CropAdviceResponse struct {
	advice.CropAdvice
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

type HistoryResponse struct {
	History []models.Record `json:"history"`
}

// CropAdvice godoc
// @Summary      작물 재배 조언
// @Description  도시의 현재 날씨를 조회하고, 작물/토양 정보와 함께 AI에게 오늘 심어도 되는지 묻습니다.
// @Description  AI 호출이 실패하면 날씨는 그대로 돌려주고 kind=advice_service 로 표시합니다.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body advice.CropRequest true "city, crop, soil (Sandy|Loamy|Clay|Silty|Peaty|Chalky)"
// @Success      200 {object} handler.CropAdviceResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      502 {object} handler.CropAdviceResponse "날씨 또는 AI 서비스 오류"
// @Router       /api/advice [post]
func (h *Handler) CropAdvice(c *gin.Context) {
	var req advice.CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}

	result, err := h.Composer.CropAdvice(c.Request.Context(), req)
	var serviceErr *llm.ServiceError
	if errors.As(err, &serviceErr) && result != nil {
		c.JSON(http.StatusBadGateway, CropAdviceResponse{CropAdvice: *result, Error: err.Error(), Kind: "advice_service"})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	if h.History != nil {
		s := middleware.CurrentSession(c).Snapshot()
		soil, _ := advice.NormalizeSoil(req.Soil)
		if _, err := h.History.CreateRecord(c.Request.Context(), models.Record{
			Username: s.Username,
			City:     strings.TrimSpace(req.City),
			Crop:     strings.TrimSpace(req.Crop),
			Soil:     soil,
			Advice:   result.Advice,
		}); err != nil {
			h.Logger.Warn("CropAdvice(): failed to save advice record", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, CropAdviceResponse{CropAdvice: *result})
}

// CurrentWeather godoc
// @Summary      현재 날씨 조회
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Param        city query string true "도시명"
// @Success      200 {object} models.WeatherSnapshot
// @Failure      502 {object} handler.ErrorResponse
// @Router       /api/weather [get]
func (h *Handler) CurrentWeather(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "city is required", Kind: "invalid_input"})
		return
	}
	snap, err := h.Weather.Fetch(c.Request.Context(), city)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AdviceHistory godoc
// @Summary      작물 조언 기록 조회
// @Description  저장된 작물 조언 결과를 최신순으로 반환합니다.
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.HistoryResponse
// @Failure      503 {object} handler.ErrorResponse "기록 저장소 비활성화"
// @Router       /api/history [get]
func (h *Handler) AdviceHistory(c *gin.Context) {
	if h.History == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "History is disabled", Kind: "unavailable"})
		return
	}
	username := middleware.CurrentSession(c).Snapshot().Username
	records, err := h.History.GetRecordsByUsername(c.Request.Context(), username, 50)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: records})
}
