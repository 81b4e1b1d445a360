// Seeds the gateway with fake bot traffic for local testing.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

type botPost struct {
	Content         string   `json:"content"`
	PostType        string   `json:"post_type"`
	MediaURL        []string `json:"media_url,omitempty"`
	TwitterUniqueID string   `json:"twitter_unique_id"`
	TwitterUsername string   `json:"twitter_username"`
	Source          string   `json:"source"`
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	baseURL := envOr("BASE_URL", "http://localhost:8080")
	count, _ := strconv.Atoi(envOr("SEED_COUNT", "10"))

	for i := 0; i < count; i++ {
		p := botPost{
			Content:         gofakeit.Sentence(12),
			PostType:        "text",
			TwitterUniqueID: fmt.Sprintf("seed-%d-%d", time.Now().UnixMilli(), i),
			TwitterUsername: gofakeit.Username(),
			Source:          "twitter",
		}

		path := "/pendingbotposts"
		if i%2 == 0 {
			path = "/botposts"
		}
		postJSON(baseURL+path, p)
	}

	// Exercise the upload-URL issuer as well.
	postJSON(baseURL+"/api/get-upload-url", map[string]string{
		"user_id":      gofakeit.UUID(),
		"file_type":    "image",
		"file_name":    gofakeit.Word() + ".jpg",
		"content_type": "image/jpeg",
	})
}

func postJSON(url string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		log.Printf("POST %s failed: %v", url, err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	log.Printf("POST %s -> %d %s", url, resp.StatusCode, bytes.TrimSpace(body))
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
