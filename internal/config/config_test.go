package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "id")
	t.Setenv("REDDIT_CLIENT_SECRET", "secret")
	t.Setenv("REDDIT_USER_AGENT", "agent/1.0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Fetch.PostsPerSubreddit != 25 {
		t.Errorf("Expected default 25 posts per subreddit, got %d", cfg.Fetch.PostsPerSubreddit)
	}
	if cfg.Fetch.CommentsPerPost != 50 {
		t.Errorf("Expected default 50 comments per post, got %d", cfg.Fetch.CommentsPerPost)
	}
	if cfg.Fetch.RequestDelay != time.Second {
		t.Errorf("Expected default 1s request delay, got %s", cfg.Fetch.RequestDelay)
	}
	if cfg.Fetch.DynamicSubredditCount != 50 {
		t.Errorf("Expected default dynamic count 50, got %d", cfg.Fetch.DynamicSubredditCount)
	}
	if !cfg.Fetch.UseDevelopmentList {
		t.Error("Expected development list by default")
	}
	if cfg.Reddit.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default 30s request timeout, got %s", cfg.Reddit.RequestTimeout)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config with credentials set, got %v", err)
	}
}

func TestValidateRequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing client id", cfg: Config{Reddit: RedditConfig{ClientSecret: "s", UserAgent: "u"}}},
		{name: "missing client secret", cfg: Config{Reddit: RedditConfig{ClientID: "i", UserAgent: "u"}}},
		{name: "missing user agent", cfg: Config{Reddit: RedditConfig{ClientID: "i", ClientSecret: "s"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestStaticListSelection(t *testing.T) {
	cfg := &Config{}

	cfg.Fetch.UseDevelopmentList = true
	if got := cfg.StaticList(); len(got) != len(DefaultSubreddits) {
		t.Errorf("Expected development list of %d, got %d", len(DefaultSubreddits), len(got))
	}

	cfg.Fetch.UseDevelopmentList = false
	if got := cfg.StaticList(); len(got) != len(FullSubredditList) {
		t.Errorf("Expected full list of %d, got %d", len(FullSubredditList), len(got))
	}
}

func TestStaticListReturnsCopy(t *testing.T) {
	cfg := &Config{}
	cfg.Fetch.UseDevelopmentList = true

	list := cfg.StaticList()
	list[0] = "mutated"

	if DefaultSubreddits[0] == "mutated" {
		t.Error("StaticList must return a copy, not the shared slice")
	}
}
