// Package advice turns weather and field inputs into a prompt for the chat model.
package advice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"AgriMind_FarmAssistant/internal/llm"
	"AgriMind_FarmAssistant/internal/models"

	"go.uber.org/zap"
)

var SoilTypes = []string{"Sandy", "Loamy", "Clay", "Silty", "Peaty", "Chalky"}

var (
	ErrMissingInput = errors.New("city and crop are required")
	ErrUnknownSoil  = errors.New("unknown soil type")
)

type WeatherFetcher interface {
	Fetch(ctx context.Context, city string) (models.WeatherSnapshot, error)
}

type Completer interface {
	Complete(ctx context.Context, systemMessage, prompt string) (string, error)
}

type CropRequest struct {
	City string `json:"city"`
	Crop string `json:"crop"`
	Soil string `json:"soil"`
}

type CropAdvice struct {
	Weather models.WeatherSnapshot `json:"weather"`
	Prompt  string                 `json:"prompt"`
	Advice  string                 `json:"advice"`
}

type Composer struct {
	weather WeatherFetcher
	chat    Completer
	logger  *zap.Logger
}

func NewComposer(weather WeatherFetcher, chat Completer, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{weather: weather, chat: chat, logger: logger}
}

// Compose forwards prompt to the chat model. An empty systemMessage uses the default.
// Failures come back as *llm.ServiceError.
func (c *Composer) Compose(ctx context.Context, prompt, systemMessage string) (string, error) {
	if systemMessage == "" {
		systemMessage = llm.DefaultSystemMessage
	}
	return c.chat.Complete(ctx, systemMessage, prompt)
}

// CropAdvice fetches weather, then asks the model. Weather is filled in
// on the returned value even when the completion fails.
func (c *Composer) CropAdvice(ctx context.Context, req CropRequest) (*CropAdvice, error) {
	req.City = strings.TrimSpace(req.City)
	req.Crop = strings.TrimSpace(req.Crop)
	if req.City == "" || req.Crop == "" {
		return nil, ErrMissingInput
	}
	soil, ok := NormalizeSoil(req.Soil)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSoil, req.Soil)
	}
	req.Soil = soil

	snap, err := c.weather.Fetch(ctx, req.City)
	if err != nil {
		return nil, err
	}

	out := &CropAdvice{Weather: snap, Prompt: BuildCropPrompt(req, snap)}
	reply, err := c.Compose(ctx, out.Prompt, "")
	if err != nil {
		c.logger.Warn("Composer.CropAdvice(): completion failed", zap.String("city", req.City), zap.String("crop", req.Crop), zap.Error(err))
		return out, err
	}
	out.Advice = reply
	return out, nil
}

// BuildCropPrompt includes every weather field alongside city, crop and soil.
func BuildCropPrompt(req CropRequest, w models.WeatherSnapshot) string {
	return fmt.Sprintf(
		"I am in %s. I want to plant %s in %s soil. Temp: %s C. Humidity: %d%%. Wind: %.1f km/h. Sky: %s. Rain: %smm. Is it a good day to plant?",
		req.City, req.Crop, req.Soil,
		formatFloat(w.Temperature), w.Humidity, w.WindSpeed, w.Sky, formatFloat(w.Rainfall),
	)
}

func NormalizeSoil(s string) (string, bool) {
	for _, t := range SoilTypes {
		if strings.EqualFold(strings.TrimSpace(s), t) {
			return t, true
		}
	}
	return "", false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
