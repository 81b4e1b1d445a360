package upload

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// PresignTTL is how long an issued upload URL stays valid.
const PresignTTL = 5 * time.Minute

// Presigner is the slice of the object store the issuer needs.
type Presigner interface {
	PresignPut(ctx context.Context, key string, ttl time.Duration, contentType string) (*url.URL, error)
	PublicURL(key string) string
}

// Target is an issued upload destination.
type Target struct {
	UploadURL string
	PublicURL string
	Key       string
}

type Service struct {
	store Presigner
	now   func() time.Time
}

func NewService(store Presigner) *Service {
	return &Service{store: store, now: time.Now}
}

// PostUploadURL issues a presigned PUT for post media. The key embeds an
// epoch-millisecond timestamp, so every request gets a fresh object.
func (s *Service) PostUploadURL(ctx context.Context, userID, fileType, fileName, contentType string) (*Target, error) {
	key := PostObjectKey(userID, fileType, fileName, s.now())
	return s.presign(ctx, key, contentType)
}

// AvatarUploadURL issues a presigned PUT for a user avatar. The key is fixed
// per user and extension, so a new upload overwrites the previous avatar.
func (s *Service) AvatarUploadURL(ctx context.Context, userID, fileName, contentType string) (*Target, error) {
	key := AvatarObjectKey(userID, fileName)
	return s.presign(ctx, key, contentType)
}

func (s *Service) presign(ctx context.Context, key, contentType string) (*Target, error) {
	signed, err := s.store.PresignPut(ctx, key, PresignTTL, contentType)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}
	return &Target{
		UploadURL: signed.String(),
		PublicURL: s.store.PublicURL(key),
		Key:       key,
	}, nil
}

// PostObjectKey derives the storage key for post media:
// {post-images|post-videos}/{userID}/{epoch_millis}.{ext}.
func PostObjectKey(userID, fileType, fileName string, at time.Time) string {
	folder := "post-videos"
	if fileType == "image" {
		folder = "post-images"
	}
	return fmt.Sprintf("%s/%s/%d.%s", folder, userID, at.UnixMilli(), fileExt(fileName))
}

// AvatarObjectKey derives the fixed avatar key: avatars/{userID}/avatar.{ext}.
func AvatarObjectKey(userID, fileName string) string {
	return fmt.Sprintf("avatars/%s/avatar.%s", userID, fileExt(fileName))
}

// fileExt is the segment after the last dot, or the whole name when there is
// none.
func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
