package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Client fetches current weather from the OpenWeather API. Every downstream
// failure is collapsed into domain.ErrWeatherUnavailable; the real cause is
// only logged.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// openWeatherResponse mirrors the fields we consume from the upstream body.
type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (c *Client) Fetch(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrWeatherUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("city", city).Msg("weather request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("city", city).Msg("weather upstream returned non-200")
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrWeatherUnavailable, resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn().Err(err).Str("city", city).Msg("weather response malformed")
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrWeatherUnavailable, err)
	}
	if len(body.Weather) == 0 {
		return nil, fmt.Errorf("%w: empty weather block", domain.ErrWeatherUnavailable)
	}

	return &domain.WeatherSnapshot{
		City:        body.Name,
		Temperature: body.Main.Temp,
		Description: body.Weather[0].Description,
		Icon:        body.Weather[0].Icon,
	}, nil
}
