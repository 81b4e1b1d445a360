package configs

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	AppPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	AuthURL          string
	ServiceKey       string
	BotEmail         string
	BotPassword      string
	DefaultBotUserID string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	S3Bucket    string
	S3PublicURL string

	AllowedOrigins []string

	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string

	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppPort: getEnv("APP_PORT", ":8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "postgres"),

		AuthURL:          getEnv("AUTH_URL", ""),
		ServiceKey:       getEnv("SERVICE_KEY", ""),
		BotEmail:         getEnv("BOT_EMAIL", ""),
		BotPassword:      getEnv("BOT_PASSWORD", ""),
		DefaultBotUserID: getEnv("DEFAULT_BOT_USER_ID", ""),

		S3Endpoint:  getEnv("S3_ENDPOINT", "s3.amazonaws.com"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3UseSSL:    getEnv("S3_USE_SSL", "true") == "true",
		S3Bucket:    getEnv("S3_BUCKET", "media"),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		RedisAddr:   getEnv("REDIS_ADDR", ""),
		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "bot-posts"),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:8081,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.S3PublicURL == "" {
		cfg.S3PublicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.S3Bucket)
	}

	if cfg.AuthURL == "" {
		return nil, fmt.Errorf("AUTH_URL is required")
	}
	if cfg.BotEmail == "" || cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_EMAIL and BOT_PASSWORD are required")
	}

	return cfg, nil
}

// DSN builds the Postgres connection string for the managed database.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
