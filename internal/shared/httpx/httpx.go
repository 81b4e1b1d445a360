package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("unauthorized")

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// APIError carries the HTTP status a failure maps to. Anything that is not an
// APIError is treated as an upstream failure (500).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func Validation(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

// StatusOf resolves the HTTP status for an error chain.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteSuccess(w http.ResponseWriter, data any, message string, code int) {
	WriteJSON(w, Response{Success: true, Data: data, Message: message}, code)
}

func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New(http.StatusText(http.StatusInternalServerError))
	}
	WriteJSON(w, Response{Success: false, Error: err.Error()}, StatusOf(err))
}

// AuthMiddleware guards admin routes with a shared-secret JWT. With an empty
// secret it passes everything through, matching the open surface the service
// started with.
func AuthMiddleware(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			WriteError(w, ErrUnauthorized)
			return
		}
		token := strings.TrimSpace(h[7:])
		parsed, err := jwt.Parse(token,
			func(t *jwt.Token) (any, error) { return []byte(secret), nil },
			jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !parsed.Valid {
			WriteError(w, ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
