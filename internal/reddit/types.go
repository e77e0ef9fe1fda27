package reddit

import "encoding/json"

// Post is a post as returned by a subreddit listing
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"` // relative, e.g. /r/golang/comments/...
	Selftext    string  `json:"selftext"`
	IsSelf      bool    `json:"is_self"`
	Domain      string  `json:"domain"`
	Subreddit   string  `json:"subreddit"`
	Gilded      int     `json:"gilded"`
	Stickied    bool    `json:"stickied"`
	Over18      bool    `json:"over_18"`
	Spoiler     bool    `json:"spoiler"`
	Locked      bool    `json:"locked"`
}

// Comment is a single comment node from a post's comment tree.
// Replies holds the raw reply listing; the API sends an empty string
// instead of an object when a comment has no replies.
type Comment struct {
	ID          string          `json:"id"`
	Author      string          `json:"author"`
	Body        string          `json:"body"`
	Score       int             `json:"score"`
	CreatedUTC  float64         `json:"created_utc"`
	Gilded      int             `json:"gilded"`
	IsSubmitter bool            `json:"is_submitter"`
	Stickied    bool            `json:"stickied"`
	Permalink   string          `json:"permalink"` // relative
	ParentID    string          `json:"parent_id"`
	Depth       int             `json:"depth"`
	Replies     json.RawMessage `json:"replies,omitempty"`
}

// SubredditMeta is the subset of subreddit metadata used by discovery
type SubredditMeta struct {
	Name        string `json:"display_name"`
	Over18      bool   `json:"over18"`
	Subscribers int    `json:"subscribers"`
}

// subredditAbout is the /r/{name}/about payload
type subredditAbout struct {
	DisplayName       string  `json:"display_name"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Subscribers       int     `json:"subscribers"`
	CreatedUTC        float64 `json:"created_utc"`
	PublicDescription string  `json:"public_description"`
	Over18            bool    `json:"over18"`
}

// thing is the kind-tagged envelope Reddit wraps every object in
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// listing is a paginated sequence of things
type listing struct {
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

// tokenResponse is the OAuth2 token endpoint payload
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
