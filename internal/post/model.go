package post

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Post is a row in the live posts table.
type Post struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          string         `gorm:"column:user_id" json:"user_id"`
	Content         string         `json:"content"`
	PostType        string         `gorm:"column:post_type" json:"post_type"`
	MediaURL        pq.StringArray `gorm:"column:media_url;type:text[]" json:"media_url"`
	TwitterUniqueID string         `gorm:"column:twitter_unique_id" json:"twitter_unique_id"`
	TwitterUsername *string        `gorm:"column:twitter_username" json:"twitter_username"`
	Source          string         `json:"source"`
	Location        *string        `json:"location"`
	LinkPreview     datatypes.JSON `gorm:"column:link_preview;type:jsonb" json:"link_preview"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (Post) TableName() string { return "posts" }

// PendingPost is a row in the approval-queue table. Shape matches Post plus
// the review status.
type PendingPost struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          string         `gorm:"column:user_id" json:"user_id"`
	Content         string         `json:"content"`
	PostType        string         `gorm:"column:post_type" json:"post_type"`
	MediaURL        pq.StringArray `gorm:"column:media_url;type:text[]" json:"media_url"`
	TwitterUniqueID string         `gorm:"column:twitter_unique_id" json:"twitter_unique_id"`
	TwitterUsername *string        `gorm:"column:twitter_username" json:"twitter_username"`
	Source          string         `json:"source"`
	Location        *string        `json:"location"`
	LinkPreview     datatypes.JSON `gorm:"column:link_preview;type:jsonb" json:"link_preview"`
	Status          string         `gorm:"default:pending" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (PendingPost) TableName() string { return "twitter_posts" }

// ToPost copies the substantive fields verbatim for the approval transfer.
func (p PendingPost) ToPost() Post {
	return Post{
		UserID:          p.UserID,
		Content:         p.Content,
		PostType:        p.PostType,
		MediaURL:        p.MediaURL,
		TwitterUniqueID: p.TwitterUniqueID,
		TwitterUsername: p.TwitterUsername,
		Source:          p.Source,
		Location:        p.Location,
		LinkPreview:     p.LinkPreview,
	}
}

// UserMapping resolves a twitter username to a platform user id. Read-only
// from this service's perspective.
type UserMapping struct {
	Username string `gorm:"primaryKey;column:username"`
	UserID   string `gorm:"column:user_id"`
}

func (UserMapping) TableName() string { return "twitter_id_map" }
