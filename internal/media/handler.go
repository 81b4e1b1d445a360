package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bot-gateway/internal/shared/httpx"
)

type Service interface {
	DeleteAll(ctx context.Context, mediaURLs []string) Result
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type deleteMediaRequest struct {
	MediaURLs []string `json:"media_urls"`
}

// Delete handles POST /delete-media.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.Validation("no data provided"))
		return
	}
	if len(req.MediaURLs) == 0 {
		httpx.WriteError(w, httpx.Validation("no media URLs provided"))
		return
	}

	res := h.service.DeleteAll(r.Context(), req.MediaURLs)
	httpx.WriteSuccess(w, nil, fmt.Sprintf("Deleted %d media files", len(res.Deleted)), http.StatusOK)
}
