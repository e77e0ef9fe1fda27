package models

import (
	"time"
)

// DeletedAuthor is the sentinel recorded when a post or comment author
// has been deleted or suspended.
const DeletedAuthor = "[deleted]"

// Post represents a collected Reddit post with its top comments
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Score       int       `json:"score"`
	UpvoteRatio float64   `json:"upvote_ratio"`
	NumComments int       `json:"num_comments"`
	CreatedUTC  float64   `json:"created_utc"`
	URL         string    `json:"url"`
	Permalink   string    `json:"permalink"`
	Selftext    string    `json:"selftext"`
	IsSelf      bool      `json:"is_self"`
	Domain      string    `json:"domain"`
	Subreddit   string    `json:"subreddit"`
	Gilded      int       `json:"gilded"`
	Stickied    bool      `json:"stickied"`
	Over18      bool      `json:"over_18"`
	Spoiler     bool      `json:"spoiler"`
	Locked      bool      `json:"locked"`
	Comments    []Comment `json:"comments"`
}

// Comment represents a collected Reddit comment
type Comment struct {
	ID          string  `json:"id"`
	Author      string  `json:"author"`
	Body        string  `json:"body"`
	Score       int     `json:"score"`
	CreatedUTC  float64 `json:"created_utc"`
	Gilded      int     `json:"gilded"`
	IsSubmitter bool    `json:"is_submitter"`
	Stickied    bool    `json:"stickied"`
	Permalink   string  `json:"permalink"`
	ParentID    string  `json:"parent_id"`
	Depth       int     `json:"depth"`
}

// SubredditData is the snapshot collected for one subreddit
type SubredditData struct {
	Name           string                 `json:"name"`
	FetchTimestamp time.Time              `json:"fetch_timestamp"`
	Info           map[string]interface{} `json:"info"`
	Posts          []Post                 `json:"posts"`
}

// FetchSettings is the configuration snapshot embedded in result metadata
type FetchSettings struct {
	PostsPerSubreddit     int     `json:"posts_per_subreddit"`
	CommentsPerPost       int     `json:"comments_per_post"`
	UseDevelopmentList    bool    `json:"use_development_list"`
	UseDynamicDiscovery   bool    `json:"use_dynamic_discovery"`
	DynamicSubredditCount int     `json:"dynamic_subreddit_count"`
	RequestDelaySeconds   float64 `json:"request_delay"`
	MaxRetries            int     `json:"max_retries"`
	RequestTimeoutSeconds float64 `json:"request_timeout"`
}

// Metadata describes a collection run
type Metadata struct {
	RunID                string        `json:"run_id"`
	FetchTimestamp       time.Time     `json:"fetch_timestamp"`
	TotalSubreddits      int           `json:"total_subreddits"`
	Config               FetchSettings `json:"config"`
	SubredditList        []string      `json:"subreddit_list"`
	FetchDurationSeconds float64       `json:"fetch_duration_seconds"`
	FetchCompletedAt     time.Time     `json:"fetch_completed_at"`
}

// CollectionError records a subreddit whose fetch failed
type CollectionError struct {
	Subreddit string `json:"subreddit"`
	Error     string `json:"error"`
}

// Summary aggregates run-level statistics
type Summary struct {
	SuccessfulSubreddits int               `json:"successful_subreddits"`
	FailedSubreddits     int               `json:"failed_subreddits"`
	TotalPosts           int               `json:"total_posts"`
	TotalComments        int               `json:"total_comments"`
	Errors               []CollectionError `json:"errors"`
}

// CollectionResult is the full output artifact of one collection run.
// Subreddits holds only successful snapshots; failures appear solely in
// Summary.Errors.
type CollectionResult struct {
	Metadata   Metadata                  `json:"metadata"`
	Subreddits map[string]*SubredditData `json:"subreddits"`
	Summary    Summary                   `json:"summary"`
}
