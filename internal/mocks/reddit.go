package mocks

import (
	"context"

	"github.com/reddit-data-collector/internal/reddit"
)

// MockRedditClient is a mock implementation of reddit.Client
type MockRedditClient struct {
	Posts    map[string][]reddit.Post    // keyed by subreddit
	Comments map[string][]reddit.Comment // keyed by post ID
	Infos    map[string]map[string]interface{}
	Popular  []reddit.SubredditMeta

	HotPostsErr    map[string]error // keyed by subreddit
	CommentsErr    map[string]error // keyed by post ID
	InfoErr        map[string]error // keyed by subreddit
	PopularErr     error
	PopularFunc    func(ctx context.Context, limit int) ([]reddit.SubredditMeta, error)
	HotPostsCalls  int
	CommentsCalls  int
	InfoCalls      int
	PopularCalls   int
	PopularLimits  []int
	HotPostsLimits []int
}

func NewMockRedditClient() *MockRedditClient {
	return &MockRedditClient{
		Posts:       make(map[string][]reddit.Post),
		Comments:    make(map[string][]reddit.Comment),
		Infos:       make(map[string]map[string]interface{}),
		HotPostsErr: make(map[string]error),
		CommentsErr: make(map[string]error),
		InfoErr:     make(map[string]error),
	}
}

func (m *MockRedditClient) HotPosts(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error) {
	m.HotPostsCalls++
	m.HotPostsLimits = append(m.HotPostsLimits, limit)
	if err := m.HotPostsErr[subreddit]; err != nil {
		return nil, err
	}
	posts := m.Posts[subreddit]
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (m *MockRedditClient) TopComments(ctx context.Context, postID string, limit int) ([]reddit.Comment, error) {
	m.CommentsCalls++
	if err := m.CommentsErr[postID]; err != nil {
		return nil, err
	}
	comments := m.Comments[postID]
	if len(comments) > limit {
		comments = comments[:limit]
	}
	return comments, nil
}

func (m *MockRedditClient) SubredditInfo(ctx context.Context, subreddit string) (map[string]interface{}, error) {
	m.InfoCalls++
	if err := m.InfoErr[subreddit]; err != nil {
		return nil, err
	}
	if info, ok := m.Infos[subreddit]; ok {
		return info, nil
	}
	return map[string]interface{}{"name": subreddit}, nil
}

func (m *MockRedditClient) PopularSubreddits(ctx context.Context, limit int) ([]reddit.SubredditMeta, error) {
	m.PopularCalls++
	m.PopularLimits = append(m.PopularLimits, limit)
	if m.PopularFunc != nil {
		return m.PopularFunc(ctx, limit)
	}
	if m.PopularErr != nil {
		return nil, m.PopularErr
	}
	subs := m.Popular
	if len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}
