package post

import (
	"encoding/json"
	"log"
	"net/http"

	"bot-gateway/internal/shared/httpx"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateDirect handles POST /botposts.
func (h *Handler) CreateDirect(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreate(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	p, err := h.service.CreateDirect(r.Context(), req)
	if err != nil {
		log.Printf("error creating post: %v", err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, []*Post{p}, "Post created successfully", http.StatusCreated)
}

// CreatePending handles POST /pendingbotposts.
func (h *Handler) CreatePending(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreate(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	p, err := h.service.CreatePending(r.Context(), req)
	if err != nil {
		log.Printf("error creating pending post: %v", err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, []*PendingPost{p}, "Post created successfully", http.StatusCreated)
}

// Accept handles POST /admin/accept-twitter-post.
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.Validation("twitter_unique_id is required"))
		return
	}

	p, err := h.service.Accept(r.Context(), req.TwitterUniqueID)
	if err != nil {
		log.Printf("error accepting post: %v", err)
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, []*Post{p}, "Post accepted and published successfully", http.StatusOK)
}

func decodeCreate(r *http.Request) (*CreatePostRequest, error) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, httpx.Validation("no data provided")
	}
	return &req, nil
}
