package upload

import (
	"encoding/json"
	"log"
	"net/http"

	"bot-gateway/internal/shared/httpx"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type uploadURLRequest struct {
	UserID      string `json:"user_id"`
	FileType    string `json:"file_type"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type uploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	S3Key     string `json:"s3_key"`
}

// PostURL handles POST /api/get-upload-url.
func (h *Handler) PostURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, map[string]string{"error": "Missing required fields"}, http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.FileType == "" || req.FileName == "" || req.ContentType == "" {
		httpx.WriteJSON(w, map[string]string{"error": "Missing required fields"}, http.StatusBadRequest)
		return
	}

	target, err := h.service.PostUploadURL(r.Context(), req.UserID, req.FileType, req.FileName, req.ContentType)
	if err != nil {
		log.Printf("error generating presigned URL: %v", err)
		httpx.WriteJSON(w, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, uploadURLResponse{
		UploadURL: target.UploadURL,
		PublicURL: target.PublicURL,
		S3Key:     target.Key,
	}, http.StatusOK)
}

// AvatarURL handles POST /api/get-avatar-upload-url.
func (h *Handler) AvatarURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, map[string]string{"error": "Missing required fields"}, http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.FileName == "" || req.ContentType == "" {
		httpx.WriteJSON(w, map[string]string{"error": "Missing required fields"}, http.StatusBadRequest)
		return
	}

	target, err := h.service.AvatarUploadURL(r.Context(), req.UserID, req.FileName, req.ContentType)
	if err != nil {
		log.Printf("error generating presigned URL: %v", err)
		httpx.WriteJSON(w, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, uploadURLResponse{
		UploadURL: target.UploadURL,
		PublicURL: target.PublicURL,
		S3Key:     target.Key,
	}, http.StatusOK)
}
