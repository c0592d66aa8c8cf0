package handler

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"go-vehicle-api/internal/model"
	"go-vehicle-api/pkg/apierror"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxBodyBytes    = 1 << 20
	// maxPageNumber keeps (page-1)*page_size within an int.
	maxPageNumber = math.MaxInt / maxPageSize
)

type requestValidator interface {
	Validate(v any) error
}

func parseIntOrDefault(raw string, fallback int) int {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	return v
}

// parsePage reads page and page_size. A missing or non-positive page
// disables paging; oversized values are clamped.
func parsePage(r *http.Request) model.Page {
	query := r.URL.Query()
	page := parseIntOrDefault(query.Get("page"), 0)
	if page <= 0 {
		return model.Page{}
	}

	size := parseIntOrDefault(query.Get("page_size"), defaultPageSize)
	if size <= 0 {
		size = defaultPageSize
	}

	return model.Page{Number: min(page, maxPageNumber), Size: min(size, maxPageSize)}
}

// parseID reads the {id} path parameter, which must be a positive integer.
func parseID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.New("BAD_REQUEST", "id must be a positive integer", raw, http.StatusBadRequest)
	}
	return id, nil
}

// decodeBody reads a JSON payload into dst and runs its registered rules.
func decodeBody(r *http.Request, w http.ResponseWriter, validator requestValidator, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apierror.New("BAD_REQUEST", "request body is required", "", http.StatusBadRequest)
		}
		return apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest)
	}

	if validator == nil {
		return nil
	}
	return validator.Validate(dst)
}
