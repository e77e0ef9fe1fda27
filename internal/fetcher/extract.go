package fetcher

import (
	"github.com/reddit-data-collector/internal/models"
	"github.com/reddit-data-collector/internal/reddit"
)

// redditBaseURL prefixes relative permalinks in extracted records
const redditBaseURL = "https://reddit.com"

// extractPost maps a raw post handle to the frozen record shape. It is a
// pure function: the same handle always yields the same record.
func extractPost(p reddit.Post) models.Post {
	return models.Post{
		ID:          p.ID,
		Title:       p.Title,
		Author:      authorOrDeleted(p.Author),
		Score:       p.Score,
		UpvoteRatio: p.UpvoteRatio,
		NumComments: p.NumComments,
		CreatedUTC:  p.CreatedUTC,
		URL:         p.URL,
		Permalink:   redditBaseURL + p.Permalink,
		Selftext:    p.Selftext,
		IsSelf:      p.IsSelf,
		Domain:      p.Domain,
		Subreddit:   p.Subreddit,
		Gilded:      p.Gilded,
		Stickied:    p.Stickied,
		Over18:      p.Over18,
		Spoiler:     p.Spoiler,
		Locked:      p.Locked,
		Comments:    []models.Comment{},
	}
}

// extractComment maps a raw comment handle to the frozen record shape
func extractComment(c reddit.Comment) models.Comment {
	return models.Comment{
		ID:          c.ID,
		Author:      authorOrDeleted(c.Author),
		Body:        c.Body,
		Score:       c.Score,
		CreatedUTC:  c.CreatedUTC,
		Gilded:      c.Gilded,
		IsSubmitter: c.IsSubmitter,
		Stickied:    c.Stickied,
		Permalink:   redditBaseURL + c.Permalink,
		ParentID:    c.ParentID,
		Depth:       c.Depth,
	}
}

// authorOrDeleted maps an absent author to the "[deleted]" sentinel,
// never to an empty string
func authorOrDeleted(author string) string {
	if author == "" {
		return models.DeletedAuthor
	}
	return author
}
