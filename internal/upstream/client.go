// Package upstream talks to the remote users API that owns users, game
// libraries and per-game achievement progress.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/osse101/UserAchievements_Go/internal/domain"
	"github.com/osse101/UserAchievements_Go/internal/logger"
	"github.com/osse101/UserAchievements_Go/internal/metrics"
)

// Client is the read-only view of the upstream users API.
//
// Lookups are fail-soft: any transport or protocol failure is logged and turned
// into an empty or zero value, so one broken lookup never aborts an aggregate
// computation. Ping is the only method that reports errors.
type Client interface {
	ListUsers(ctx context.Context) []domain.User
	GetUser(ctx context.Context, id int) domain.User
	GetLibrary(ctx context.Context, userID int) domain.OwnedGamesLibrary
	GetCompletion(ctx context.Context, userID, gameID int) domain.GameCompletionRecord
	Ping(ctx context.Context) error
}

// StatusError is returned internally when the upstream answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", domain.ErrMsgUpstreamStatus, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrUpstreamStatus
}

// APIClient handles communication with the upstream users API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	Retry   RetryOptions
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string, timeout time.Duration, retry RetryOptions) *APIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
		Retry: retry,
	}
}

// ListUsers fetches every user. Failures yield an empty slice.
func (c *APIClient) ListUsers(ctx context.Context) []domain.User {
	var users []domain.User
	if err := c.getJSON(ctx, OpListUsers, PathUsers, &users); err != nil {
		logger.FromContext(ctx).Error(LogMsgListUsersFailed, logger.AttrKeyOperation, OpListUsers, logger.AttrKeyError, err)
		return []domain.User{}
	}
	if users == nil {
		return []domain.User{}
	}
	return users
}

// GetUser fetches a single user. Failures yield the zero User, whose ID is not valid.
func (c *APIClient) GetUser(ctx context.Context, id int) domain.User {
	var user domain.User
	if err := c.getJSON(ctx, OpGetUser, fmt.Sprintf(PathUserFormat, id), &user); err != nil {
		logger.FromContext(ctx).Error(LogMsgGetUserFailed, logger.AttrKeyOperation, OpGetUser, logger.AttrKeyUserID, id, logger.AttrKeyError, err)
		return domain.User{}
	}
	return user
}

// GetLibrary fetches the games a user owns. Failures yield a library with no games.
func (c *APIClient) GetLibrary(ctx context.Context, userID int) domain.OwnedGamesLibrary {
	var library domain.OwnedGamesLibrary
	if err := c.getJSON(ctx, OpGetLibrary, fmt.Sprintf(PathLibraryFormat, userID), &library); err != nil {
		logger.FromContext(ctx).Error(LogMsgLibraryFailed, logger.AttrKeyOperation, OpGetLibrary, logger.AttrKeyUserID, userID, logger.AttrKeyError, err)
		return domain.OwnedGamesLibrary{OwnedGames: []domain.Game{}}
	}
	if library.OwnedGames == nil {
		library.OwnedGames = []domain.Game{}
	}
	return library
}

// GetCompletion fetches one user's progress on one game. Failures yield the zero record.
func (c *APIClient) GetCompletion(ctx context.Context, userID, gameID int) domain.GameCompletionRecord {
	var record domain.GameCompletionRecord
	path := fmt.Sprintf(PathCompletionFmt, userID, gameID)
	if err := c.getJSON(ctx, OpGetCompletion, path, &record); err != nil {
		logger.FromContext(ctx).Error(LogMsgCompletionFail,
			logger.AttrKeyOperation, OpGetCompletion, logger.AttrKeyUserID, userID, logger.AttrKeyGameID, gameID, logger.AttrKeyError, err)
		return domain.GameCompletionRecord{}
	}
	return record
}

// Ping checks that the upstream answers the users collection with a 2xx status.
// It makes a single attempt.
func (c *APIClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, OpPing, PathUsers)
	return err
}

// getJSON fetches path with retries and decodes the body into out.
// An empty body leaves out untouched and is not an error.
func (c *APIClient) getJSON(ctx context.Context, op, path string, out interface{}) error {
	log := logger.FromContext(ctx)

	var body []byte
	onRetry := func(retry int, delay time.Duration, err error) {
		log.Info(LogMsgRetrying, logger.AttrKeyOperation, op, "path", path, "attempt", retry, "delay", delay, logger.AttrKeyError, err)
	}
	err := withRetry(ctx, c.Retry, onRetry, func() error {
		var err error
		body, err = c.do(ctx, op, path)
		return err
	})
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		log.Debug(LogMsgEmptyBody, logger.AttrKeyOperation, op, "path", path)
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstreamDecode, op, err)
	}
	return nil
}

// do performs a single GET attempt and returns the body of a 2xx response
func (c *APIClient) do(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(HeaderAccept, ContentTypeJSON)

	start := time.Now()
	resp, err := c.Client.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, metrics.UpstreamOutcome(0)).Inc()
		logger.FromContext(ctx).Warn(LogMsgRequestFailed, logger.AttrKeyOperation, op, "path", path, logger.AttrKeyError, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestsTotal.WithLabelValues(op, metrics.UpstreamOutcome(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrUpstreamUnavailable, err)
	}
	return body, nil
}
