package post

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bot-gateway/internal/media"
	"bot-gateway/internal/shared/httpx"
)

type fakeRepo struct {
	posts     []*Post
	pendings  []*PendingPost
	insertErr error

	mapping   map[string]string
	lookupErr error

	acceptCalls []string
	acceptPost  *Post
}

func (f *fakeRepo) InsertPost(ctx context.Context, p *Post) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakeRepo) InsertPending(ctx context.Context, p *PendingPost) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.pendings = append(f.pendings, p)
	return nil
}

func (f *fakeRepo) LookupUserID(ctx context.Context, username string) (string, error) {
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	if uid, ok := f.mapping[username]; ok {
		return uid, nil
	}
	return "", gorm.ErrRecordNotFound
}

func (f *fakeRepo) AcceptTransfer(ctx context.Context, twitterUniqueID string) (*Post, error) {
	f.acceptCalls = append(f.acceptCalls, twitterUniqueID)
	if f.acceptPost == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.acceptPost, nil
}

type fakeCleaner struct {
	calls [][]string
}

func (f *fakeCleaner) DeleteAll(ctx context.Context, mediaURLs []string) media.Result {
	f.calls = append(f.calls, mediaURLs)
	return media.Result{Deleted: mediaURLs}
}

type fakeCreds struct {
	uid string
	err error
}

func (f *fakeCreds) UserID(ctx context.Context) (string, error) { return f.uid, f.err }

const defaultUserID = "bdb9c10d-1127-476e-8b71-18acecc74824"

func newTestService(repo *fakeRepo, creds *fakeCreds, cleaner *fakeCleaner) Service {
	return NewService(repo, creds, cleaner, nil, defaultUserID)
}

func TestCreateDirectValidation(t *testing.T) {
	cases := []struct {
		name string
		req  *CreatePostRequest
	}{
		{"nil body", nil},
		{"missing content", &CreatePostRequest{TwitterUniqueID: "t1"}},
		{"missing twitter_unique_id", &CreatePostRequest{Content: "hello"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			cleaner := &fakeCleaner{}
			svc := newTestService(repo, &fakeCreds{uid: "bot-1"}, cleaner)

			_, err := svc.CreateDirect(context.Background(), tc.req)
			require.Error(t, err)
			require.Equal(t, http.StatusBadRequest, httpx.StatusOf(err))
			require.Empty(t, repo.posts, "validation must short-circuit before insert")
			require.Empty(t, cleaner.calls, "validation must not trigger cleanup")
		})
	}
}

func TestCreateDirectUsesBotIdentity(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeCreds{uid: "bot-1"}, &fakeCleaner{})

	p, err := svc.CreateDirect(context.Background(), &CreatePostRequest{
		Content:         "hello",
		TwitterUniqueID: "t1",
	})
	require.NoError(t, err)
	require.Equal(t, "bot-1", p.UserID)
	require.Equal(t, "text", p.PostType)
	require.Equal(t, "twitter", p.Source)
	require.Nil(t, p.MediaURL)
	require.Len(t, repo.posts, 1)
}

func TestCreateDirectInsertFailureCleansUpMedia(t *testing.T) {
	urls := []string{
		"https://b.s3.amazonaws.com/post-images/u/1.jpg",
		"https://b.s3.amazonaws.com/post-images/u/2.jpg",
	}
	repo := &fakeRepo{insertErr: errors.New("duplicate key")}
	cleaner := &fakeCleaner{}
	svc := newTestService(repo, &fakeCreds{uid: "bot-1"}, cleaner)

	_, err := svc.CreateDirect(context.Background(), &CreatePostRequest{
		Content:         "hello",
		TwitterUniqueID: "t1",
		MediaURL:        urls,
	})
	require.Error(t, err)
	require.Equal(t, http.StatusInternalServerError, httpx.StatusOf(err))
	require.Len(t, cleaner.calls, 1)
	require.Equal(t, urls, cleaner.calls[0], "cleanup must receive exactly the request's media list")
}

func TestCreateDirectIdentityFailureCleansUp(t *testing.T) {
	cleaner := &fakeCleaner{}
	svc := newTestService(&fakeRepo{}, &fakeCreds{err: errors.New("bot login failed")}, cleaner)

	_, err := svc.CreateDirect(context.Background(), &CreatePostRequest{
		Content:         "hello",
		TwitterUniqueID: "t1",
		MediaURL:        []string{"https://b.s3.amazonaws.com/a.jpg"},
	})
	require.Error(t, err)
	require.Len(t, cleaner.calls, 1)
}

func TestCreateDirectNoCleanupWithoutMedia(t *testing.T) {
	cleaner := &fakeCleaner{}
	svc := newTestService(&fakeRepo{insertErr: errors.New("boom")}, &fakeCreds{uid: "bot-1"}, cleaner)

	_, err := svc.CreateDirect(context.Background(), &CreatePostRequest{
		Content:         "hello",
		TwitterUniqueID: "t1",
	})
	require.Error(t, err)
	require.Empty(t, cleaner.calls)
}

func TestCreatePendingMappedUsername(t *testing.T) {
	repo := &fakeRepo{mapping: map[string]string{"alice": "u-9"}}
	svc := newTestService(repo, &fakeCreds{}, &fakeCleaner{})

	alice := "alice"
	p, err := svc.CreatePending(context.Background(), &CreatePostRequest{
		Content:         "hi",
		TwitterUniqueID: "t2",
		TwitterUsername: &alice,
	})
	require.NoError(t, err)
	require.Equal(t, "u-9", p.UserID)
}

func TestCreatePendingUnmappedUsesDefault(t *testing.T) {
	repo := &fakeRepo{mapping: map[string]string{}}
	svc := newTestService(repo, &fakeCreds{}, &fakeCleaner{})

	unmapped := "unmapped_user"
	p, err := svc.CreatePending(context.Background(), &CreatePostRequest{
		Content:         "hi",
		TwitterUniqueID: "t2",
		TwitterUsername: &unmapped,
	})
	require.NoError(t, err)
	require.Equal(t, defaultUserID, p.UserID)
	require.Len(t, repo.pendings, 1)
}

func TestCreatePendingLookupErrorSwallowed(t *testing.T) {
	repo := &fakeRepo{lookupErr: errors.New("connection refused")}
	svc := newTestService(repo, &fakeCreds{}, &fakeCleaner{})

	name := "alice"
	p, err := svc.CreatePending(context.Background(), &CreatePostRequest{
		Content:         "hi",
		TwitterUniqueID: "t2",
		TwitterUsername: &name,
	})
	require.NoError(t, err, "lookup failures fall back to the default identity")
	require.Equal(t, defaultUserID, p.UserID)
}

func TestCreatePendingNoUsernameUsesDefault(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeCreds{}, &fakeCleaner{})

	p, err := svc.CreatePending(context.Background(), &CreatePostRequest{
		Content:         "hi",
		TwitterUniqueID: "t2",
	})
	require.NoError(t, err)
	require.Equal(t, defaultUserID, p.UserID)
}

func TestAcceptUnknownPostNotFound(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeCreds{}, &fakeCleaner{})

	_, err := svc.Accept(context.Background(), "never-seen")
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, httpx.StatusOf(err))
	require.Equal(t, []string{"never-seen"}, repo.acceptCalls)
}

func TestAcceptMissingIDValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeCreds{}, &fakeCleaner{})

	_, err := svc.Accept(context.Background(), "")
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, httpx.StatusOf(err))
}

func TestAcceptReturnsTransferredPost(t *testing.T) {
	repo := &fakeRepo{acceptPost: &Post{TwitterUniqueID: "t3", UserID: "u-1", Content: "moved"}}
	svc := newTestService(repo, &fakeCreds{}, &fakeCleaner{})

	p, err := svc.Accept(context.Background(), "t3")
	require.NoError(t, err)
	require.Equal(t, "moved", p.Content)
}
