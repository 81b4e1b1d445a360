package user

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"bot-gateway/internal/shared/httpx"
)

// Deleter is the admin side of the identity provider.
type Deleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

type Handler struct {
	provider Deleter
}

func NewHandler(provider Deleter) *Handler {
	return &Handler{provider: provider}
}

type deleteUserRequest struct {
	UserID string `json:"user_id"`
}

// Delete handles POST /api/delete-user.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.Validation("no data provided"))
		return
	}
	if req.UserID == "" {
		httpx.WriteError(w, httpx.Validation("user_id is required"))
		return
	}

	if err := h.provider.DeleteUser(r.Context(), req.UserID); err != nil {
		log.Printf("error deleting user %s: %v", req.UserID, err)
		httpx.WriteError(w, err)
		return
	}

	log.Printf("user deleted: %s", req.UserID)
	httpx.WriteSuccess(w, nil, "User deleted successfully", http.StatusOK)
}
