package discovery

import (
	"context"
	"fmt"
	"testing"

	"github.com/reddit-data-collector/internal/config"
	"github.com/reddit-data-collector/internal/mocks"
	"github.com/reddit-data-collector/internal/reddit"
	"github.com/rs/zerolog"
)

func testConfig() *config.Config {
	return &config.Config{
		Fetch: config.FetchConfig{
			PostsPerSubreddit:     25,
			CommentsPerPost:       50,
			UseDevelopmentList:    false,
			UseDynamicDiscovery:   true,
			DynamicSubredditCount: 50,
		},
	}
}

func TestAcceptSubreddit(t *testing.T) {
	tests := []struct {
		name           string
		sub            reddit.SubredditMeta
		minSubscribers int
		want           bool
	}{
		{
			name:           "clean subreddit accepted",
			sub:            reddit.SubredditMeta{Name: "technology", Subscribers: 500000},
			minSubscribers: minPopularSubscribers,
			want:           true,
		},
		{
			name:           "over18 rejected",
			sub:            reddit.SubredditMeta{Name: "technology", Over18: true, Subscribers: 500000},
			minSubscribers: minPopularSubscribers,
			want:           false,
		},
		{
			name:           "blocked keyword rejected",
			sub:            reddit.SubredditMeta{Name: "TechCircleJerk", Subscribers: 500000},
			minSubscribers: minPopularSubscribers,
			want:           false,
		},
		{
			name:           "blocked keyword as substring rejected",
			sub:            reddit.SubredditMeta{Name: "gonewildaudio", Subscribers: 500000},
			minSubscribers: minPopularSubscribers,
			want:           false,
		},
		{
			name:           "below subscriber floor rejected",
			sub:            reddit.SubredditMeta{Name: "tinycommunity", Subscribers: 9999},
			minSubscribers: minPopularSubscribers,
			want:           false,
		},
		{
			name:           "exactly at subscriber floor accepted",
			sub:            reddit.SubredditMeta{Name: "borderline", Subscribers: 10000},
			minSubscribers: minPopularSubscribers,
			want:           true,
		},
		{
			name:           "unknown subscriber count accepted",
			sub:            reddit.SubredditMeta{Name: "mysterysub", Subscribers: 0},
			minSubscribers: minPopularSubscribers,
			want:           true,
		},
		{
			name:           "trending floor is stricter",
			sub:            reddit.SubredditMeta{Name: "midsize", Subscribers: 30000},
			minSubscribers: minTrendingSubscribers,
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := acceptSubreddit(tt.sub, tt.minSubscribers); got != tt.want {
				t.Errorf("acceptSubreddit(%q) = %v, want %v", tt.sub.Name, got, tt.want)
			}
		})
	}
}

func TestFilterSubredditsPreservesOrderAndLimit(t *testing.T) {
	candidates := []reddit.SubredditMeta{
		{Name: "first", Subscribers: 100000},
		{Name: "nsfw_stuff", Subscribers: 100000}, // blocked keyword
		{Name: "second", Subscribers: 100000},
		{Name: "third", Over18: true}, // flagged
		{Name: "fourth", Subscribers: 100000},
		{Name: "fifth", Subscribers: 100000},
	}

	got := filterSubreddits(candidates, 3, minPopularSubscribers)
	want := []string{"first", "second", "fourth"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d survivors, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilterSubredditsCounts(t *testing.T) {
	// 100 candidates: 12 flagged over18, 30 below the floor, rest clean
	var candidates []reddit.SubredditMeta
	for i := 0; i < 100; i++ {
		sub := reddit.SubredditMeta{Name: fmt.Sprintf("community%03d", i), Subscribers: 100000}
		if i < 12 {
			sub.Over18 = true
		} else if i < 42 {
			sub.Subscribers = 5000
		}
		candidates = append(candidates, sub)
	}

	got := filterSubreddits(candidates, 50, minPopularSubscribers)
	if len(got) != 50 {
		t.Errorf("Expected 50 survivors from 58 eligible, got %d", len(got))
	}

	got = filterSubreddits(candidates, 100, minPopularSubscribers)
	if len(got) != 58 {
		t.Errorf("Expected all 58 eligible candidates, got %d", len(got))
	}
}

func TestTargetsStaticDevelopmentList(t *testing.T) {
	cfg := testConfig()
	cfg.Fetch.UseDevelopmentList = true

	client := mocks.NewMockRedditClient()
	selector := NewSelector(client, cfg, zerolog.Nop())

	targets := selector.Targets(context.Background())
	if len(targets) != len(config.DefaultSubreddits) {
		t.Fatalf("Expected %d targets, got %d", len(config.DefaultSubreddits), len(targets))
	}
	for i, name := range config.DefaultSubreddits {
		if targets[i] != name {
			t.Errorf("Position %d: expected %q, got %q", i, name, targets[i])
		}
	}
	if client.PopularCalls != 0 {
		t.Errorf("Static selection should not call the client, got %d calls", client.PopularCalls)
	}
}

func TestTargetsDynamicDiscovery(t *testing.T) {
	cfg := testConfig()
	cfg.Fetch.DynamicSubredditCount = 2

	client := mocks.NewMockRedditClient()
	client.Popular = []reddit.SubredditMeta{
		{Name: "golang", Subscribers: 200000},
		{Name: "porn_sub", Subscribers: 200000},
		{Name: "rust", Subscribers: 200000},
		{Name: "python", Subscribers: 200000},
	}

	selector := NewSelector(client, cfg, zerolog.Nop())
	targets := selector.Targets(context.Background())

	want := []string{"golang", "rust"}
	if len(targets) != len(want) {
		t.Fatalf("Expected %v, got %v", want, targets)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], targets[i])
		}
	}

	// Discovery over-fetches 2x the requested count
	if len(client.PopularLimits) != 1 || client.PopularLimits[0] != 4 {
		t.Errorf("Expected a single listing request of 4 candidates, got %v", client.PopularLimits)
	}
}

func TestTargetsDiscoveryFallsBackOnError(t *testing.T) {
	cfg := testConfig()

	client := mocks.NewMockRedditClient()
	client.PopularErr = fmt.Errorf("rate limited")

	selector := NewSelector(client, cfg, zerolog.Nop())
	targets := selector.Targets(context.Background())

	if len(targets) != len(config.FullSubredditList) {
		t.Fatalf("Expected fallback to static list of %d, got %d", len(config.FullSubredditList), len(targets))
	}
}

func TestTargetsStaticProductionList(t *testing.T) {
	cfg := testConfig()
	cfg.Fetch.UseDynamicDiscovery = false

	client := mocks.NewMockRedditClient()
	selector := NewSelector(client, cfg, zerolog.Nop())

	targets := selector.Targets(context.Background())
	if len(targets) != len(config.FullSubredditList) {
		t.Fatalf("Expected static production list of %d, got %d", len(config.FullSubredditList), len(targets))
	}
	if client.PopularCalls != 0 {
		t.Errorf("Static selection should not call the client, got %d calls", client.PopularCalls)
	}
}

func TestTrendingUsesStricterVariant(t *testing.T) {
	cfg := testConfig()

	client := mocks.NewMockRedditClient()
	client.Popular = []reddit.SubredditMeta{
		{Name: "big", Subscribers: 80000},
		{Name: "midsize", Subscribers: 30000}, // below trending floor
		{Name: "huge", Subscribers: 900000},
	}

	selector := NewSelector(client, cfg, zerolog.Nop())
	got, err := selector.Trending(context.Background(), 10)
	if err != nil {
		t.Fatalf("Trending failed: %v", err)
	}

	want := []string{"big", "huge"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	// Trending over-fetches 3x
	if len(client.PopularLimits) != 1 || client.PopularLimits[0] != 30 {
		t.Errorf("Expected a single listing request of 30 candidates, got %v", client.PopularLimits)
	}
}
