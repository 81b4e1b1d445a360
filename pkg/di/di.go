package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"bot-gateway/configs"
	"bot-gateway/internal/auth"
	"bot-gateway/internal/events"
	"bot-gateway/internal/media"
	"bot-gateway/internal/post"
	"bot-gateway/internal/ratelimit"
	"bot-gateway/internal/storage/s3"
	"bot-gateway/internal/upload"
	"bot-gateway/pkg/db"
)

type Container struct {
	DB         *gorm.DB
	Store      *s3.Storage
	AuthClient *auth.Client
	Creds      *auth.Manager
	Cleaner    *media.Cleaner
	Uploads    *upload.Service
	Posts      post.Service
	Events     *events.Publisher
	Limiter    *ratelimit.Limiter
}

func BuildContainer(cfg *configs.Config) (*Container, error) {
	conn, err := db.New(cfg)
	if err != nil {
		return nil, err
	}

	store, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		return nil, err
	}

	authClient := auth.NewClient(cfg.AuthURL, cfg.ServiceKey)
	creds := auth.NewManager(authClient, cfg.BotEmail, cfg.BotPassword)
	cleaner := media.NewCleaner(store)
	uploads := upload.NewService(store)

	c := &Container{
		DB:         conn,
		Store:      store,
		AuthClient: authClient,
		Creds:      creds,
		Cleaner:    cleaner,
		Uploads:    uploads,
	}

	var pub post.Publisher
	if cfg.KafkaBroker != "" {
		c.Events = events.NewPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		pub = c.Events
	}

	if cfg.RedisAddr != "" {
		c.Limiter = ratelimit.New(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	repo := post.NewRepository(conn)
	c.Posts = post.NewService(repo, creds, cleaner, pub, cfg.DefaultBotUserID)

	return c, nil
}
