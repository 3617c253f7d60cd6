package codeforces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds connection settings for the public API.
type Config struct {
	BaseURL string

	// RequestDelay is the minimum spacing between requests. The API bans
	// clients that exceed roughly one call per two seconds.
	RequestDelay time.Duration

	// PageSize bounds how many submissions one user.status call returns.
	PageSize int
}

// Client fetches user histories and the contest directory.
type Client interface {
	UserStatus(ctx context.Context, handle string, from, count int) ([]SubmissionDTO, error)
	UserRating(ctx context.Context, handle string) ([]RatingChangeDTO, error)
	ContestList(ctx context.Context) ([]ContestDTO, error)
}

type client struct {
	cfg        Config
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

const defaultBaseURL = "https://codeforces.com/api"

// NewClient creates a throttled API client.
func NewClient(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = 2 * time.Second
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 1000
	}
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *client) throttle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < c.cfg.RequestDelay {
		wait := c.cfg.RequestDelay - elapsed
		log.Debug().Dur("wait", wait).Msg("Throttling API request")
		time.Sleep(wait)
	}
	c.lastRequest = time.Now()
}

// call performs one API method call and unmarshals the envelope result into out.
func (c *client) call(ctx context.Context, method string, params url.Values, out any) error {
	c.throttle()

	reqURL := fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, method, params.Encode())
	log.Debug().Str("method", method).Str("url", reqURL).Msg("API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// The API also reports failures inside a 200 envelope.
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return fmt.Errorf("%s: API rate limit exceeded (%d), increase the request delay", method, resp.StatusCode)
	default:
		return fmt.Errorf("%s: API returned status %d", method, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", method, err)
	}
	if env.Status != "OK" {
		return fmt.Errorf("%s: API error: %s", method, env.Comment)
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%s: failed to decode result: %w", method, err)
	}
	return nil
}

// UserStatus returns submissions for a handle starting at the 1-based index
// from, paging until count submissions were fetched or the history ends.
func (c *client) UserStatus(ctx context.Context, handle string, from, count int) ([]SubmissionDTO, error) {
	if from < 1 {
		from = 1
	}

	var all []SubmissionDTO
	for count <= 0 || len(all) < count {
		batch := c.cfg.PageSize
		if count > 0 && count-len(all) < batch {
			batch = count - len(all)
		}

		params := url.Values{}
		params.Set("handle", handle)
		params.Set("from", fmt.Sprintf("%d", from+len(all)))
		params.Set("count", fmt.Sprintf("%d", batch))

		var page []SubmissionDTO
		if err := c.call(ctx, "user.status", params, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)

		if len(page) < batch {
			break // end of history
		}
	}

	log.Info().Str("handle", handle).Int("count", len(all)).Msg("Fetched submissions")
	return all, nil
}

// UserRating returns the full rating-change history for a handle.
func (c *client) UserRating(ctx context.Context, handle string) ([]RatingChangeDTO, error) {
	params := url.Values{}
	params.Set("handle", handle)

	var changes []RatingChangeDTO
	if err := c.call(ctx, "user.rating", params, &changes); err != nil {
		return nil, err
	}

	log.Info().Str("handle", handle).Int("count", len(changes)).Msg("Fetched rating changes")
	return changes, nil
}

// ContestList returns the full contest directory.
func (c *client) ContestList(ctx context.Context) ([]ContestDTO, error) {
	var contests []ContestDTO
	if err := c.call(ctx, "contest.list", url.Values{}, &contests); err != nil {
		return nil, err
	}

	log.Info().Int("count", len(contests)).Msg("Fetched contest directory")
	return contests, nil
}
