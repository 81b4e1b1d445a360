package post

import "encoding/json"

// CreatePostRequest is the body the bot sends to /botposts and
// /pendingbotposts. Unset optional fields pass through as null.
type CreatePostRequest struct {
	Content         string          `json:"content"`
	PostType        string          `json:"post_type"`
	MediaURL        []string        `json:"media_url"`
	TwitterUniqueID string          `json:"twitter_unique_id"`
	TwitterUsername *string         `json:"twitter_username"`
	Source          string          `json:"source"`
	Location        *string         `json:"location"`
	LinkPreview     json.RawMessage `json:"link_preview"`
}

type acceptRequest struct {
	TwitterUniqueID string `json:"twitter_unique_id"`
}
