package handler

import (
	"net/http"

	"AgriMind_FarmAssistant/internal/crop"
	"AgriMind_FarmAssistant/internal/disease"
	"AgriMind_FarmAssistant/internal/middleware"
	"AgriMind_FarmAssistant/internal/models"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 10 << 20

type SoilLogResponse struct {
	Soil []models.SoilReading `json:"soil"`
}

type RentalLogResponse struct {
	Rentals []models.RentalListing `json:"rentals"`
}

// AddSoil godoc
// @Summary      토양 측정값 저장
// @Description  세션 토양 기록에 추가합니다. 같은 값을 여러 번 보내면 중복으로 쌓입니다.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.SoilReading true "pH(0-14), moisture(0-100), N, P, K"
// @Success      200 {object} handler.SoilLogResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/soil [post]
func (h *Handler) AddSoil(c *gin.Context) {
	var reading models.SoilReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}
	s := middleware.CurrentSession(c)
	if err := s.AppendSoil(reading); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SoilLogResponse{Soil: s.SoilLog()})
}

// SoilLog godoc
// @Summary      토양 기록 조회
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SoilLogResponse
// @Router       /api/soil [get]
func (h *Handler) SoilLog(c *gin.Context) {
	c.JSON(http.StatusOK, SoilLogResponse{Soil: middleware.CurrentSession(c).SoilLog()})
}

// AddRental godoc
// @Summary      장비 대여 등록
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.RentalListing true "equipment, mobile 필수"
// @Success      200 {object} handler.RentalLogResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/rentals [post]
func (h *Handler) AddRental(c *gin.Context) {
	var listing models.RentalListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}
	s := middleware.CurrentSession(c)
	if err := s.AppendRental(listing); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RentalLogResponse{Rentals: s.RentalLog()})
}

// RentalLog godoc
// @Summary      장비 대여 목록
// @Tags         Menu
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.RentalLogResponse
// @Router       /api/rentals [get]
func (h *Handler) RentalLog(c *gin.Context) {
	c.JSON(http.StatusOK, RentalLogResponse{Rentals: middleware.CurrentSession(c).RentalLog()})
}

// DiseaseCheck godoc
// @Summary      잎 병해 진단 (Mock)
// @Description  jpg/png 잎 사진을 받아 고정된 진단 문구를 반환합니다. 실제 모델은 없습니다.
// @Tags         Menu
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "잎 사진 (jpg, png)"
// @Success      200 {object} disease.Diagnosis
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/disease [post]
func (h *Handler) DiseaseCheck(c *gin.Context) {
	image, err := readUpload(c, "image", maxImageBytes)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_input"})
		return
	}
	diagnosis, err := disease.Detect(image)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_input"})
		return
	}
	c.JSON(http.StatusOK, diagnosis)
}

// RecommendCrop godoc
// @Summary      작물 추천
// @Description  N, P, K, 기온, 습도, pH, 강수량으로 학습된 간단한 모델이 작물을 추천합니다.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body crop.Features true "토양/기상 값"
// @Success      200 {object} crop.Prediction
// @Router       /api/crop/recommend [post]
func (h *Handler) RecommendCrop(c *gin.Context) {
	if h.Crops == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Crop model is not loaded", Kind: "unavailable"})
		return
	}
	var f crop.Features
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Kind: "invalid_input"})
		return
	}
	c.JSON(http.StatusOK, h.Crops.Predict(f))
}
