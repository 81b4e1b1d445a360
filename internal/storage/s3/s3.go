package s3

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the base under which objects are publicly reachable,
	// e.g. "https://my-bucket.s3.amazonaws.com".
	PublicURL string
}

type Storage struct {
	cfg    Config
	client *minio.Client
}

func New(cfg Config) (*Storage, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	cl, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &Storage{cfg: cfg, client: cl}, nil
}

func (s *Storage) Bucket() string { return s.cfg.Bucket }

func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// PresignPut signs a single PUT of the given content type to key. The
// Content-Type header is signed into the URL, so the upload must carry
// exactly that type.
func (s *Storage) PresignPut(ctx context.Context, key string, ttl time.Duration, contentType string) (*url.URL, error) {
	hdr := make(http.Header)
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	return s.client.PresignHeader(ctx, http.MethodPut, s.cfg.Bucket, key, ttl, url.Values{}, hdr)
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL builds the object's public URL without contacting the store.
func (s *Storage) PublicURL(key string) string {
	return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
}

// KeyFromURL recovers the storage key from a public object URL. The scheme is
// ignored so both http and https forms of the public base match. Returns
// false when the URL does not belong to this bucket.
func (s *Storage) KeyFromURL(rawURL string) (string, bool) {
	marker := strings.TrimPrefix(strings.TrimPrefix(s.cfg.PublicURL, "https://"), "http://")
	marker = strings.TrimSuffix(marker, "/") + "/"
	if _, key, ok := strings.Cut(rawURL, marker); ok && key != "" {
		return key, true
	}
	return "", false
}
