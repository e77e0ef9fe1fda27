package discovery

import (
	"context"
	"strings"

	"github.com/reddit-data-collector/internal/config"
	"github.com/reddit-data-collector/internal/reddit"
	"github.com/rs/zerolog"
)

// blockedKeywords are substrings that disqualify a subreddit name from
// dynamic discovery (adult content, spam, low-effort communities).
var blockedKeywords = []string{
	"nsfw", "porn", "sex", "xxx", "adult", "onlyfans", "gone", "wild",
	"circlejerk", "jerk", "shitpost", "copypasta",
}

const (
	// Subscriber floors below which a discovered subreddit is treated
	// as spam or inactive. A reported count of zero means unknown and
	// is not rejected.
	minPopularSubscribers  = 10000
	minTrendingSubscribers = 50000

	// Over-fetch multipliers: the filter discards candidates, so the
	// initial listing requests more than the target count.
	popularOverFetch  = 2
	trendingOverFetch = 3
)

// Selector decides which subreddits a collection run targets
type Selector struct {
	client reddit.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// NewSelector creates a new Selector
func NewSelector(client reddit.Client, cfg *config.Config, log zerolog.Logger) *Selector {
	return &Selector{
		client: client,
		cfg:    cfg,
		log:    log.With().Str("component", "discovery").Logger(),
	}
}

// Targets returns the subreddits to collect from. Discovery errors never
// propagate: the selector falls back to the static list.
func (s *Selector) Targets(ctx context.Context) []string {
	if s.cfg.Fetch.UseDevelopmentList {
		s.log.Info().Msg("Using development subreddit list (static)")
		return s.cfg.StaticList()
	}

	if s.cfg.Fetch.UseDynamicDiscovery {
		s.log.Info().Msg("Using dynamic subreddit discovery")
		discovered, err := s.Popular(ctx, s.cfg.Fetch.DynamicSubredditCount)
		if err != nil {
			s.log.Error().Err(err).Msg("Dynamic subreddit discovery failed")
			s.log.Info().Msg("Falling back to static subreddit list")
			return s.cfg.StaticList()
		}
		s.log.Info().Int("count", len(discovered)).Msg("Discovered popular subreddits")
		return discovered
	}

	s.log.Info().Msg("Using static production subreddit list")
	return s.cfg.StaticList()
}

// Popular returns up to limit popular subreddits that pass the safety
// filter, in the platform's popularity order
func (s *Selector) Popular(ctx context.Context, limit int) ([]string, error) {
	candidates, err := s.client.PopularSubreddits(ctx, limit*popularOverFetch)
	if err != nil {
		return nil, err
	}
	return filterSubreddits(candidates, limit, minPopularSubscribers), nil
}

// Trending is the stricter discovery variant: a larger over-fetch and a
// higher subscriber floor
func (s *Selector) Trending(ctx context.Context, limit int) ([]string, error) {
	candidates, err := s.client.PopularSubreddits(ctx, limit*trendingOverFetch)
	if err != nil {
		return nil, err
	}
	return filterSubreddits(candidates, limit, minTrendingSubscribers), nil
}

// filterSubreddits applies the safety filter to each candidate in order,
// stopping once limit survivors have been accepted. It is a pure function
// of the candidate metadata.
func filterSubreddits(candidates []reddit.SubredditMeta, limit, minSubscribers int) []string {
	accepted := make([]string, 0, limit)
	for _, sub := range candidates {
		if len(accepted) >= limit {
			break
		}
		if !acceptSubreddit(sub, minSubscribers) {
			continue
		}
		accepted = append(accepted, sub.Name)
	}
	return accepted
}

// acceptSubreddit reports whether a single candidate passes the safety
// filter, checking flags in order with short-circuiting
func acceptSubreddit(sub reddit.SubredditMeta, minSubscribers int) bool {
	if sub.Over18 {
		return false
	}

	name := strings.ToLower(sub.Name)
	for _, keyword := range blockedKeywords {
		if strings.Contains(name, keyword) {
			return false
		}
	}

	// Zero subscribers means the count is unknown, not empty
	if sub.Subscribers > 0 && sub.Subscribers < minSubscribers {
		return false
	}

	return true
}
