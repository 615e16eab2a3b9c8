package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"squidbot/bot/common"
	"squidbot/metrics"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RateLimiter manages API call rate limiting
type RateLimiter struct {
	mutex       sync.Mutex
	lastCall    time.Time
	minInterval time.Duration
}

// Wait waits if necessary to respect rate limits
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	elapsed := time.Since(rl.lastCall)
	if elapsed < rl.minInterval {
		waitTime := rl.minInterval - elapsed
		log.Debugf("Rate limiting: waiting %v before next API call", waitTime)

		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	rl.lastCall = time.Now()
	return nil
}

// userFetcher is the part of *discordgo.Session the resolver needs
type userFetcher interface {
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
}

// UserResolver looks up display names for leaderboard entries
type UserResolver struct {
	fetcher     userFetcher
	rateLimiter *RateLimiter
	maxRetries  int
	baseBackoff time.Duration
}

// NewUserResolver creates a resolver backed by the Discord API
func NewUserResolver(session *discordgo.Session) *UserResolver {
	return newUserResolver(session, 250*time.Millisecond, time.Second)
}

func newUserResolver(fetcher userFetcher, minInterval, baseBackoff time.Duration) *UserResolver {
	return &UserResolver{
		fetcher: fetcher,
		rateLimiter: &RateLimiter{
			minInterval: minInterval,
		},
		maxRetries:  3,
		baseBackoff: baseBackoff,
	}
}

// ResolveName returns the user's display name, or a placeholder if the
// lookup fails
func (r *UserResolver) ResolveName(ctx context.Context, userID int64) string {
	user, err := r.fetchUserWithRetry(ctx, common.FormatUserID(userID))
	if err != nil {
		log.WithFields(log.Fields{
			"user_id": userID,
			"error":   err,
		}).Warn("Failed to resolve user name")
		metrics.NameLookupErrors.Inc()
		return common.UnknownUserName(userID)
	}

	name := common.UserDisplayName(user)
	if name == "" {
		return common.UnknownUserName(userID)
	}
	return name
}

// fetchUserWithRetry fetches a user with exponential backoff on rate limits
func (r *UserResolver) fetchUserWithRetry(ctx context.Context, userID string) (*discordgo.User, error) {
	for attempt := 0; ; attempt++ {
		if err := r.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		user, err := r.fetcher.User(userID, discordgo.WithContext(ctx))
		if err == nil {
			return user, nil
		}

		if !isRateLimitError(err) {
			return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
		}

		if attempt >= r.maxRetries {
			return nil, fmt.Errorf("exceeded max retries for rate limit: %w", err)
		}

		waitTime := r.baseBackoff * time.Duration(1<<uint(attempt))
		log.Warnf("Hit rate limit, waiting %v before retry %d/%d", waitTime, attempt+1, r.maxRetries)

		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// isRateLimitError checks if an error is a rate limit error
func isRateLimitError(err error) bool {
	var rateLimitErr *discordgo.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return true
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusTooManyRequests
	}

	return false
}
