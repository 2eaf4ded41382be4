// Package classify talks to the external mood classifier service.
package classify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single prediction call.
const DefaultTimeout = 8 * time.Second

// ErrMalformed is returned when the service answers with an unexpected payload.
var ErrMalformed = errors.New("classify: malformed response")

// Prediction is one ranked genre returned by the classifier.
type Prediction struct {
	Genre string
	Score float64
}

// Config configures a Client. Zero values pick defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// MinInterval spaces out requests; zero disables rate limiting.
	MinInterval time.Duration

	// FailureThreshold consecutive failures open the breaker for Cooldown.
	FailureThreshold uint32
	Cooldown         time.Duration

	Logger *log.Logger
}

// Client calls POST {base}/predict.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]Prediction]
	logger  *log.Logger
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Genres []json.RawMessage `json:"genres"`
}

// New creates a Client.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  cfg.Logger,
	}

	threshold := cfg.FailureThreshold
	c.breaker = gobreaker.NewCircuitBreaker[[]Prediction](gobreaker.Settings{
		Name:        "mood-classifier",
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller giving up is not a service failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return c
}

// Predict returns the classifier's ranked genres for text.
func (c *Client) Predict(ctx context.Context, text string) ([]Prediction, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("classify: rate limiter: %w", err)
	}

	preds, err := c.breaker.Execute(func() ([]Prediction, error) {
		return c.predict(ctx, text)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("classify: service unavailable: %w", err)
	}
	return preds, err
}

// Genres returns the predicted genre names, most confident first.
func (c *Client) Genres(ctx context.Context, text string) ([]string, error) {
	preds, err := c.Predict(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(preds))
	for i, p := range preds {
		out[i] = p.Genre
	}
	return out, nil
}

func (c *Client) predict(ctx context.Context, text string) ([]Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	jsonBody, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("classify: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("classify: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("classify: request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("classify: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("classify: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("classify: service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parsePredictions(body)
}

// parsePredictions accepts only {"genres": [[name, score], ...]}.
func parsePredictions(body []byte) ([]Prediction, error) {
	var pr predictResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if pr.Genres == nil {
		return nil, fmt.Errorf("%w: missing genres", ErrMalformed)
	}

	preds := make([]Prediction, 0, len(pr.Genres))
	for i, raw := range pr.Genres {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d is not a [genre, score] pair", ErrMalformed, i)
		}
		var p Prediction
		if err := json.Unmarshal(pair[0], &p.Genre); err != nil {
			return nil, fmt.Errorf("%w: entry %d genre is not a string", ErrMalformed, i)
		}
		if err := json.Unmarshal(pair[1], &p.Score); err != nil {
			return nil, fmt.Errorf("%w: entry %d score is not a number", ErrMalformed, i)
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// Available reports whether the classifier host answers at all.
// Uses a 3-second timeout for the check.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode < http.StatusInternalServerError
}
