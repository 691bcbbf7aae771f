package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"accounts/pkg/logger"
	"accounts/pkg/serrors"

	"github.com/google/uuid"
)

const (
	// DefaultPageSize is used when the client does not specify pageSize.
	DefaultPageSize = 20
	// MaxPageSize caps pageSize to keep result sets bounded.
	MaxPageSize = 100

	// maxBodyBytes limits request body size to protect against oversized payloads.
	maxBodyBytes = 1 << 20
)

// Page is the envelope returned by all list endpoints.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int64 `json:"totalPages"`
}

// NewPage wraps items in a Page envelope, deriving TotalPages from the total
// count and page size. Items is never nil so the JSON always carries an array.
func NewPage[T any](items []T, total int64, page, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps semantic error kinds onto HTTP status codes. Internal
// errors are logged with their cause and surfaced as a generic message so
// implementation details never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	default:
		status = http.StatusInternalServerError
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), msg)
		msg = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads and decodes the request body into v, rejecting unknown
// fields and trailing garbage.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "invalid request body")
	}

	return nil
}

// pathUUID parses the {id} path segment of the request as a UUID.
func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid id")
	}

	return id, nil
}

// pageParams extracts page and pageSize query parameters, clamping them into
// valid ranges, and derives the storage offset and limit.
func pageParams(r *http.Request) (page, pageSize int, offset, limit uint) {
	page = queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	pageSize = queryInt(r, "pageSize", DefaultPageSize)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize, uint(page-1) * uint(pageSize), uint(pageSize) //nolint: gosec
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}
