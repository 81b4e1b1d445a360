package post

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bot-gateway/internal/media"
	"bot-gateway/internal/shared/httpx"
)

// Credentials supplies the cached bot identity for direct posts.
type Credentials interface {
	UserID(ctx context.Context) (string, error)
}

// Cleaner undoes media uploads when a post fails to persist.
type Cleaner interface {
	DeleteAll(ctx context.Context, mediaURLs []string) media.Result
}

// Publisher announces post lifecycle events. May be nil-backed (see
// NewService); publishing is best-effort and never fails a request.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type Service interface {
	CreateDirect(ctx context.Context, req *CreatePostRequest) (*Post, error)
	CreatePending(ctx context.Context, req *CreatePostRequest) (*PendingPost, error)
	Accept(ctx context.Context, twitterUniqueID string) (*Post, error)
}

type service struct {
	repo          Repository
	creds         Credentials
	cleaner       Cleaner
	events        Publisher
	defaultUserID string
}

// NewService wires post ingestion. events may be nil when no broker is
// configured.
func NewService(repo Repository, creds Credentials, cleaner Cleaner, events Publisher, defaultUserID string) Service {
	return &service{
		repo:          repo,
		creds:         creds,
		cleaner:       cleaner,
		events:        events,
		defaultUserID: defaultUserID,
	}
}

// CreateDirect inserts an imported post into the live table under the cached
// bot identity. Any failure past validation compensates by deleting the
// request's uploaded media.
func (s *service) CreateDirect(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	userID, err := s.creds.UserID(ctx)
	if err != nil {
		s.compensate(ctx, req)
		return nil, err
	}

	p := buildPost(req, userID)
	if err := s.repo.InsertPost(ctx, p); err != nil {
		s.compensate(ctx, req)
		return nil, err
	}

	log.Printf("post created for tweet %s", p.TwitterUniqueID)
	s.announce(ctx, "post.created", p.TwitterUniqueID, p.UserID, p.TableName())
	return p, nil
}

// CreatePending inserts an imported post into the approval queue. The owning
// user comes from the username mapping, falling back to the default bot
// identity when the username is absent, unmapped, or the lookup fails.
func (s *service) CreatePending(ctx context.Context, req *CreatePostRequest) (*PendingPost, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	userID := s.resolveUserID(ctx, req.TwitterUsername)

	p := buildPending(req, userID)
	if err := s.repo.InsertPending(ctx, p); err != nil {
		s.compensate(ctx, req)
		return nil, err
	}

	log.Printf("pending post created for tweet %s (user %s)", p.TwitterUniqueID, userID)
	s.announce(ctx, "post.pending", p.TwitterUniqueID, p.UserID, p.TableName())
	return p, nil
}

// Accept moves a pending post into the live table.
func (s *service) Accept(ctx context.Context, twitterUniqueID string) (*Post, error) {
	if twitterUniqueID == "" {
		return nil, httpx.Validation("twitter_unique_id is required")
	}

	p, err := s.repo.AcceptTransfer(ctx, twitterUniqueID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httpx.NotFound("twitter post not found")
	}
	if err != nil {
		return nil, err
	}

	log.Printf("post %s accepted and published", twitterUniqueID)
	s.announce(ctx, "post.accepted", p.TwitterUniqueID, p.UserID, p.TableName())
	return p, nil
}

func (s *service) resolveUserID(ctx context.Context, username *string) string {
	if username == nil || *username == "" {
		return s.defaultUserID
	}
	mapped, err := s.repo.LookupUserID(ctx, *username)
	switch {
	case err == nil:
		return mapped
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("username %s not mapped, using default user id", *username)
	default:
		// Lookup failures are swallowed; the default identity keeps the
		// import flowing.
		log.Printf("username lookup failed for %s: %v, using default user id", *username, err)
	}
	return s.defaultUserID
}

func (s *service) compensate(ctx context.Context, req *CreatePostRequest) {
	if len(req.MediaURL) == 0 {
		return
	}
	log.Printf("post insert failed, cleaning up %d media files", len(req.MediaURL))
	res := s.cleaner.DeleteAll(ctx, req.MediaURL)
	if !res.AllDeleted() {
		log.Printf("cleanup incomplete: %d deleted, %d skipped, %d failed",
			len(res.Deleted), len(res.Skipped), len(res.Failed))
	}
}

type event struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	TwitterUniqueID string    `json:"twitter_unique_id"`
	UserID          string    `json:"user_id"`
	Table           string    `json:"table"`
	At              time.Time `json:"at"`
}

func (s *service) announce(ctx context.Context, typ, twitterUniqueID, userID, table string) {
	if s.events == nil {
		return
	}
	b, err := json.Marshal(event{
		ID:              uuid.NewString(),
		Type:            typ,
		TwitterUniqueID: twitterUniqueID,
		UserID:          userID,
		Table:           table,
		At:              time.Now().UTC(),
	})
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, twitterUniqueID, b); err != nil {
		log.Printf("event publish failed for %s: %v", twitterUniqueID, err)
	}
}

func validateCreate(req *CreatePostRequest) error {
	if req == nil {
		return httpx.Validation("no data provided")
	}
	if req.Content == "" {
		return httpx.Validation("content is required")
	}
	if req.TwitterUniqueID == "" {
		return httpx.Validation("twitter_unique_id is required")
	}
	return nil
}

func buildPost(req *CreatePostRequest, userID string) *Post {
	return &Post{
		UserID:          userID,
		Content:         req.Content,
		PostType:        defaulted(req.PostType, "text"),
		MediaURL:        req.MediaURL,
		TwitterUniqueID: req.TwitterUniqueID,
		TwitterUsername: req.TwitterUsername,
		Source:          defaulted(req.Source, "twitter"),
		Location:        req.Location,
		LinkPreview:     []byte(req.LinkPreview),
	}
}

func buildPending(req *CreatePostRequest, userID string) *PendingPost {
	return &PendingPost{
		UserID:          userID,
		Content:         req.Content,
		PostType:        defaulted(req.PostType, "text"),
		MediaURL:        req.MediaURL,
		TwitterUniqueID: req.TwitterUniqueID,
		TwitterUsername: req.TwitterUsername,
		Source:          defaulted(req.Source, "twitter"),
		Location:        req.Location,
		LinkPreview:     []byte(req.LinkPreview),
	}
}

func defaulted(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
