package fetcher

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/reddit-data-collector/internal/config"
	"github.com/reddit-data-collector/internal/models"
	"github.com/reddit-data-collector/internal/reddit"
	"github.com/rs/zerolog"
)

// Fetcher orchestrates the sequential collection of posts and comments
// from a list of target subreddits
type Fetcher struct {
	client reddit.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// New creates a new Fetcher
func New(client reddit.Client, cfg *config.Config, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		cfg:    cfg,
		log:    log.With().Str("component", "fetcher").Logger(),
	}
}

// CollectAll fetches data from every target subreddit in order. A failed
// subreddit is recorded in the summary and never aborts the run; the
// returned result always carries complete summary accounting.
func (f *Fetcher) CollectAll(ctx context.Context, targets []string) *models.CollectionResult {
	start := time.Now()
	f.log.Info().Int("subreddits", len(targets)).Msg("Starting data collection")

	subredditList := make([]string, len(targets))
	copy(subredditList, targets)

	result := &models.CollectionResult{
		Metadata: models.Metadata{
			RunID:           uuid.New().String(),
			FetchTimestamp:  start,
			TotalSubreddits: len(targets),
			Config:          f.settingsSnapshot(),
			SubredditList:   subredditList,
		},
		Subreddits: make(map[string]*models.SubredditData),
		Summary: models.Summary{
			Errors: []models.CollectionError{},
		},
	}

	for i, name := range targets {
		f.log.Info().
			Int("index", i+1).
			Int("total", len(targets)).
			Str("subreddit", name).
			Msg("Fetching subreddit")

		data, err := f.fetchSubreddit(ctx, name)
		if err != nil {
			f.log.Error().Err(err).Str("subreddit", name).Msg("Failed to fetch subreddit")
			result.Summary.FailedSubreddits++
			result.Summary.Errors = append(result.Summary.Errors, models.CollectionError{
				Subreddit: name,
				Error:     err.Error(),
			})
		} else {
			comments := 0
			for _, post := range data.Posts {
				comments += len(post.Comments)
			}

			result.Subreddits[name] = data
			result.Summary.SuccessfulSubreddits++
			result.Summary.TotalPosts += len(data.Posts)
			result.Summary.TotalComments += comments

			f.log.Info().
				Str("subreddit", name).
				Int("posts", len(data.Posts)).
				Int("comments", comments).
				Msg("Completed subreddit")
		}

		// Fixed pacing delay between subreddits, skipped after the last
		if i < len(targets)-1 {
			if !sleepContext(ctx, f.cfg.Fetch.RequestDelay) {
				f.log.Warn().Msg("Collection interrupted during pacing delay")
				break
			}
		}
	}

	end := time.Now()
	result.Metadata.FetchDurationSeconds = end.Sub(start).Seconds()
	result.Metadata.FetchCompletedAt = end

	f.log.Info().
		Float64("duration_seconds", result.Metadata.FetchDurationSeconds).
		Int("successful", result.Summary.SuccessfulSubreddits).
		Int("failed", result.Summary.FailedSubreddits).
		Int("total_posts", result.Summary.TotalPosts).
		Int("total_comments", result.Summary.TotalComments).
		Msg("Data collection completed")

	for _, e := range result.Summary.Errors {
		f.log.Warn().Str("subreddit", e.Subreddit).Str("error", e.Error).Msg("Subreddit failed")
	}

	return result
}

// fetchSubreddit collects one subreddit's snapshot. Metadata and comment
// failures degrade the snapshot; a failed post listing aborts it.
func (f *Fetcher) fetchSubreddit(ctx context.Context, name string) (*models.SubredditData, error) {
	data := &models.SubredditData{
		Name:           name,
		FetchTimestamp: time.Now(),
		Info:           map[string]interface{}{},
		Posts:          []models.Post{},
	}

	// Subreddit info is best effort; a failure leaves info empty
	info, err := f.client.SubredditInfo(ctx, name)
	if err != nil {
		f.log.Warn().Err(err).Str("subreddit", name).Msg("Could not fetch subreddit info")
	} else {
		data.Info = info
	}

	// A failed hot listing aborts this subreddit
	posts, err := f.client.HotPosts(ctx, name, f.cfg.Fetch.PostsPerSubreddit)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		record := extractPost(post)

		// Comment failures are scoped to the one post
		comments, err := f.client.TopComments(ctx, post.ID, f.cfg.Fetch.CommentsPerPost)
		if err != nil {
			f.log.Warn().Err(err).Str("post_id", post.ID).Msg("Could not fetch comments for post")
		} else {
			for _, comment := range comments {
				record.Comments = append(record.Comments, extractComment(comment))
			}
		}

		data.Posts = append(data.Posts, record)
	}

	return data, nil
}

// settingsSnapshot freezes the active configuration into the metadata shape
func (f *Fetcher) settingsSnapshot() models.FetchSettings {
	return models.FetchSettings{
		PostsPerSubreddit:     f.cfg.Fetch.PostsPerSubreddit,
		CommentsPerPost:       f.cfg.Fetch.CommentsPerPost,
		UseDevelopmentList:    f.cfg.Fetch.UseDevelopmentList,
		UseDynamicDiscovery:   f.cfg.Fetch.UseDynamicDiscovery,
		DynamicSubredditCount: f.cfg.Fetch.DynamicSubredditCount,
		RequestDelaySeconds:   f.cfg.Fetch.RequestDelay.Seconds(),
		MaxRetries:            f.cfg.Fetch.MaxRetries,
		RequestTimeoutSeconds: f.cfg.Reddit.RequestTimeout.Seconds(),
	}
}

// sleepContext pauses for d and reports false if ctx ended first
func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
