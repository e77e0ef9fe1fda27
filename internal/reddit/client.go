package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token"
	defaultAPIURL   = "https://oauth.reddit.com"

	// Largest page size the listing endpoints accept; larger limits
	// are satisfied by following the "after" cursor.
	maxPageSize = 100
)

// Client is the Reddit API capability set consumed by the collector
type Client interface {
	// HotPosts returns up to limit posts from the subreddit's hot listing
	HotPosts(ctx context.Context, subreddit string, limit int) ([]Post, error)

	// TopComments returns up to limit comments from the post's comment
	// forest, flattened breadth-first with "load more" stubs excluded
	TopComments(ctx context.Context, postID string, limit int) ([]Comment, error)

	// SubredditInfo returns basic metadata about a subreddit
	SubredditInfo(ctx context.Context, subreddit string) (map[string]interface{}, error)

	// PopularSubreddits returns up to limit subreddits in popularity order
	PopularSubreddits(ctx context.Context, limit int) ([]SubredditMeta, error)
}

// HTTPClient is a Reddit API client using application-only OAuth2
type HTTPClient struct {
	clientID     string
	clientSecret string
	userAgent    string
	tokenURL     string
	apiURL       string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewHTTPClient creates a new Reddit API client
func NewHTTPClient(clientID, clientSecret, userAgent string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		tokenURL:     defaultTokenURL,
		apiURL:       defaultAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// token returns a valid bearer token, fetching a new one when the cached
// token is missing or within a minute of expiring
func (c *HTTPClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access_token")
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// get performs an authenticated GET and decodes the JSON response into v
func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, v interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("raw_json", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// getListing follows the after cursor until limit children are collected
// or the listing is exhausted
func (c *HTTPClient) getListing(ctx context.Context, path string, limit int) ([]thing, error) {
	var children []thing
	after := ""

	for len(children) < limit {
		page := limit - len(children)
		if page > maxPageSize {
			page = maxPageSize
		}

		query := url.Values{"limit": {strconv.Itoa(page)}}
		if after != "" {
			query.Set("after", after)
		}

		var lst listing
		if err := c.get(ctx, path, query, &lst); err != nil {
			return nil, err
		}
		if len(lst.Data.Children) == 0 {
			break
		}

		children = append(children, lst.Data.Children...)
		after = lst.Data.After
		if after == "" {
			break
		}
	}

	if len(children) > limit {
		children = children[:limit]
	}
	return children, nil
}

// HotPosts returns up to limit posts from the subreddit's hot listing
func (c *HTTPClient) HotPosts(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	children, err := c.getListing(ctx, "/r/"+subreddit+"/hot", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch hot posts for r/%s: %w", subreddit, err)
	}

	posts := make([]Post, 0, len(children))
	for _, ch := range children {
		if ch.Kind != "t3" {
			continue
		}
		var p Post
		if err := json.Unmarshal(ch.Data, &p); err != nil {
			return nil, fmt.Errorf("decode post in r/%s: %w", subreddit, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// TopComments returns up to limit comments from the post's comment forest,
// flattened breadth-first: top-level comments first, then their replies in
// queue order. "more" placeholder nodes are excluded.
func (c *HTTPClient) TopComments(ctx context.Context, postID string, limit int) ([]Comment, error) {
	if limit < 0 {
		limit = 0
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}

	// The comments endpoint returns a two-element array: the post
	// listing followed by the comment listing.
	var payload []listing
	if err := c.get(ctx, "/comments/"+postID, query, &payload); err != nil {
		return nil, fmt.Errorf("fetch comments for post %s: %w", postID, err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("fetch comments for post %s: unexpected payload shape", postID)
	}

	comments, err := flattenComments(payload[1].Data.Children, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for post %s: %w", postID, err)
	}
	return comments, nil
}

// flattenComments walks the comment forest breadth-first up to limit nodes
func flattenComments(children []thing, limit int) ([]Comment, error) {
	queue, err := decodeComments(children)
	if err != nil {
		return nil, err
	}

	out := make([]Comment, 0, limit)
	for len(queue) > 0 && len(out) < limit {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)

		replies, err := decodeReplies(cur.Replies)
		if err != nil {
			return nil, err
		}
		queue = append(queue, replies...)
	}
	return out, nil
}

// decodeComments unwraps t1 things into comments, dropping "more" stubs
func decodeComments(children []thing) ([]Comment, error) {
	var out []Comment
	for _, ch := range children {
		if ch.Kind != "t1" {
			continue
		}
		var cm Comment
		if err := json.Unmarshal(ch.Data, &cm); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		out = append(out, cm)
	}
	return out, nil
}

// decodeReplies parses a comment's raw replies field, which is either a
// listing object or an empty string
func decodeReplies(raw json.RawMessage) ([]Comment, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == `""` || trimmed == "null" {
		return nil, nil
	}

	var lst listing
	if err := json.Unmarshal(raw, &lst); err != nil {
		return nil, fmt.Errorf("decode replies: %w", err)
	}
	return decodeComments(lst.Data.Children)
}

// SubredditInfo returns basic metadata about a subreddit
func (c *HTTPClient) SubredditInfo(ctx context.Context, subreddit string) (map[string]interface{}, error) {
	var th thing
	if err := c.get(ctx, "/r/"+subreddit+"/about", nil, &th); err != nil {
		return nil, fmt.Errorf("fetch subreddit info for r/%s: %w", subreddit, err)
	}

	var about subredditAbout
	if err := json.Unmarshal(th.Data, &about); err != nil {
		return nil, fmt.Errorf("decode subreddit info for r/%s: %w", subreddit, err)
	}

	return map[string]interface{}{
		"name":               about.DisplayName,
		"title":              about.Title,
		"description":        about.Description,
		"subscribers":        about.Subscribers,
		"created_utc":        about.CreatedUTC,
		"public_description": about.PublicDescription,
		"over18":             about.Over18,
	}, nil
}

// PopularSubreddits returns up to limit subreddits in popularity order
func (c *HTTPClient) PopularSubreddits(ctx context.Context, limit int) ([]SubredditMeta, error) {
	children, err := c.getListing(ctx, "/subreddits/popular", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch popular subreddits: %w", err)
	}

	subs := make([]SubredditMeta, 0, len(children))
	for _, ch := range children {
		if ch.Kind != "t5" {
			continue
		}
		var meta SubredditMeta
		if err := json.Unmarshal(ch.Data, &meta); err != nil {
			return nil, fmt.Errorf("decode subreddit: %w", err)
		}
		subs = append(subs, meta)
	}
	return subs, nil
}
