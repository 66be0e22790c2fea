package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// FPLClient resolves player photo codes from the official bootstrap-static
// endpoint. It is an enrichment source: callers must treat every failure as
// "no codes available" and fall back to generated avatars.
type FPLClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	logger      *logrus.Logger
}

func NewFPLClient(baseURL string, timeout time.Duration, requestsPerMinute int, logger *logrus.Logger) *FPLClient {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	settings := gobreaker.Settings{
		Name:    "fpl-bootstrap",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"service":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &FPLClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		breaker:     gobreaker.NewCircuitBreaker(settings),
		logger:      logger,
	}
}

type bootstrapResponse struct {
	Elements []bootstrapElement `json:"elements"`
}

type bootstrapElement struct {
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Code       int    `json:"code"`
}

// PhotoCodes returns a full-name to photo-code map for every known player.
func (c *FPLClient) PhotoCodes(ctx context.Context) (map[string]int, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchBootstrap(ctx)
	})
	if err != nil {
		return nil, err
	}

	data := result.(*bootstrapResponse)
	codes := make(map[string]int, len(data.Elements))
	for _, el := range data.Elements {
		codes[el.FirstName+" "+el.SecondName] = el.Code
	}
	c.logger.WithField("players", len(codes)).Debug("Fetched FPL photo codes")
	return codes, nil
}

func (c *FPLClient) fetchBootstrap(ctx context.Context) (*bootstrapResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bootstrap data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bootstrap request returned status %d", resp.StatusCode)
	}

	var data bootstrapResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode bootstrap response: %w", err)
	}
	return &data, nil
}
