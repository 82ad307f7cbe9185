/**
* Name: 			client.go
* Description: 		OpenWeatherMap 현재 날씨 조회
* Workflow: 		도시명으로 GET 1회 -> 응답을 WeatherSnapshot 으로 변환
 */

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"AgriMind_FarmAssistant/internal/models"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// m/s -> km/h
const msToKmh = 3.6

// ProviderError: provider answered but cod != 200 (unknown city, bad key...).
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// TransportError: request failed or the body could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type currentResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Rain *struct {
		OneHour *float64 `json:"1h"`
	} `json:"rain"`
}

// Fetch makes exactly one request, no retries.
func (c *Client) Fetch(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherSnapshot{}, &TransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("weather.Fetch(): request failed", zap.String("city", city), zap.Error(err))
		return models.WeatherSnapshot{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("weather.Fetch(): malformed response", zap.String("city", city), zap.Int("status", resp.StatusCode), zap.Error(err))
		return models.WeatherSnapshot{}, &TransportError{Err: fmt.Errorf("decode weather response: %w", err)}
	}

	code, err := parseCod(body.Cod)
	if err != nil {
		code = resp.StatusCode
	}
	if code != http.StatusOK {
		msg := body.Message
		if msg == "" {
			msg = http.StatusText(code)
		}
		c.logger.Info("weather.Fetch(): provider error", zap.String("city", city), zap.Int("cod", code), zap.String("message", msg))
		return models.WeatherSnapshot{}, &ProviderError{Code: code, Message: msg}
	}
	if len(body.Weather) == 0 {
		return models.WeatherSnapshot{}, &TransportError{Err: fmt.Errorf("weather response has no conditions")}
	}

	snap := models.WeatherSnapshot{
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed * msToKmh,
		Sky:         body.Weather[0].Main,
	}
	// rain.1h 가 없으면 0.0 (건조와 누락을 구분하지 않음)
	if body.Rain != nil && body.Rain.OneHour != nil {
		snap.Rainfall = *body.Rain.OneHour
	}
	return snap, nil
}

// cod 는 성공 시 숫자 200, 실패 시 문자열 "404" 로 내려온다.
func parseCod(raw json.RawMessage) (int, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" {
		return 0, fmt.Errorf("missing cod")
	}
	return strconv.Atoi(s)
}
