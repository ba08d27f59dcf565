// internal/services/weather_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wooshcafe/woosh-backend/internal/config"
)

// WeatherReading is what the daily panel renders. Fallback is set when the
// lookup failed and a fixed default reading was substituted; weather must
// never block the rest of the dashboard.
type WeatherReading struct {
	Temperature float64 `json:"temperature"`
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Fallback    bool    `json:"fallback,omitempty"`
}

type WeatherService struct {
	client  *http.Client
	baseURL string
	config  *config.Config
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func NewWeatherService(cfg *config.Config) *WeatherService {
	return &WeatherService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.Weather.BaseURL,
		config:  cfg,
	}
}

// CurrentWeather fetches the reading for the configured coordinates. It never
// returns an error: any failure logs and falls back to the default reading.
func (s *WeatherService) CurrentWeather(ctx context.Context) WeatherReading {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true&timezone=auto",
		s.baseURL, s.config.Weather.Latitude, s.config.Weather.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return s.fallbackReading(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return s.fallbackReading(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.fallbackReading(fmt.Errorf("weather lookup returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.fallbackReading(err)
	}

	var parsed openMeteoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return s.fallbackReading(err)
	}

	return WeatherReading{
		Temperature: parsed.CurrentWeather.Temperature,
		Code:        parsed.CurrentWeather.WeatherCode,
		Description: describeWeatherCode(parsed.CurrentWeather.WeatherCode),
	}
}

func (s *WeatherService) fallbackReading(cause error) WeatherReading {
	logrus.WithError(cause).Warn("Weather lookup failed, using default reading")
	return WeatherReading{
		Temperature: 24,
		Code:        0,
		Description: "晴朗 (預設)",
		Fallback:    true,
	}
}

// describeWeatherCode maps WMO weather codes to the descriptions the
// dashboard shows.
func describeWeatherCode(code int) string {
	switch {
	case code >= 95:
		return "雷雨"
	case code >= 80 && code <= 82:
		return "陣雨"
	case code >= 71 && code <= 77:
		return "有雪"
	case code >= 51 && code <= 67:
		return "有雨"
	case code == 45 || code == 48:
		return "有霧"
	case code >= 1 && code <= 3:
		return "多雲時晴"
	default:
		return "晴朗"
	}
}
