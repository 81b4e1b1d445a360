package post

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertPost(ctx context.Context, p *Post) error
	InsertPending(ctx context.Context, p *PendingPost) error
	// LookupUserID returns gorm.ErrRecordNotFound when the username is not
	// mapped.
	LookupUserID(ctx context.Context, username string) (string, error)
	// AcceptTransfer marks the pending row accepted and copies it into the
	// live table in one transaction. Returns gorm.ErrRecordNotFound when no
	// pending row matches.
	AcceptTransfer(ctx context.Context, twitterUniqueID string) (*Post, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InsertPost(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) InsertPending(ctx context.Context, p *PendingPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) LookupUserID(ctx context.Context, username string) (string, error) {
	var m UserMapping
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if err != nil {
		return "", err
	}
	return m.UserID, nil
}

func (r *repository) AcceptTransfer(ctx context.Context, twitterUniqueID string) (*Post, error) {
	var out Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pending PendingPost
		if err := tx.Where("twitter_unique_id = ?", twitterUniqueID).First(&pending).Error; err != nil {
			return err
		}
		if err := tx.Model(&PendingPost{}).
			Where("twitter_unique_id = ?", twitterUniqueID).
			Update("status", "accepted").Error; err != nil {
			return err
		}
		out = pending.ToPost()
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
