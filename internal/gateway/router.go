package gateway

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"bot-gateway/configs"
	"bot-gateway/internal/media"
	"bot-gateway/internal/post"
	"bot-gateway/internal/shared/httpx"
	"bot-gateway/internal/upload"
	"bot-gateway/internal/user"
	"bot-gateway/pkg/di"
)

const (
	botRateLimit  = 60
	botRateWindow = time.Minute
)

// InitRoutes assembles the route table. The bot write routes are rate limited
// when redis is configured; admin routes pass through the JWT guard, which is
// open until ADMIN_JWT_SECRET is set.
func InitRoutes(cfg *configs.Config, c *di.Container) http.Handler {
	uploads := upload.NewHandler(c.Uploads)
	posts := post.NewHandler(c.Posts)
	cleanup := media.NewHandler(c.Cleaner)
	users := user.NewHandler(c.AuthClient)

	trace := func(name string, h http.HandlerFunc) http.Handler {
		return otelhttp.NewHandler(h, name)
	}
	limited := func(h http.Handler) http.Handler {
		if c.Limiter == nil {
			return h
		}
		return c.Limiter.LimitHTTP(botRateLimit, botRateWindow, h)
	}
	admin := func(h http.Handler) http.Handler {
		return httpx.AuthMiddleware(cfg.AdminJWTSecret, h)
	}

	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteSuccess(w, nil, "Server is running", http.StatusOK)
	})

	mux.Handle("POST /api/get-upload-url", trace("upload.post_url", uploads.PostURL))
	mux.Handle("POST /api/get-avatar-upload-url", trace("upload.avatar_url", uploads.AvatarURL))

	mux.Handle("POST /botposts", limited(trace("post.create", posts.CreateDirect)))
	mux.Handle("POST /pendingbotposts", limited(trace("post.create_pending", posts.CreatePending)))

	mux.Handle("POST /delete-media", trace("media.delete", cleanup.Delete))

	mux.Handle("POST /api/delete-user", admin(trace("user.delete", users.Delete)))
	mux.Handle("POST /admin/accept-twitter-post", admin(trace("post.accept", posts.Accept)))

	corsmw := cors.New(cors.Options{
		AllowedOrigins:       cfg.AllowedOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusOK,
	})
	return corsmw.Handler(mux)
}
