package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ulascansenturk/weather-analytics-service/internal/service"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	errorCode := "INTERNAL_ERROR"
	title := "Internal Server Error"

	switch code {
	case http.StatusBadRequest:
		errorCode = "BAD_REQUEST"
		title = "Bad Request"
	case http.StatusNotFound:
		errorCode = "NOT_FOUND"
		title = "Not Found"
	case http.StatusMethodNotAllowed:
		errorCode = "METHOD_NOT_ALLOWED"
		title = "Method Not Allowed"
	case http.StatusTooManyRequests:
		errorCode = "RATE_LIMITED"
		title = "Too Many Requests"
	case http.StatusServiceUnavailable:
		errorCode = "SERVICE_UNAVAILABLE"
		title = "Service Unavailable"
	}

	respondWithJSON(w, code, ErrorResponse{
		Errors: []Error{
			{
				Code:   errorCode,
				Detail: message,
				Status: code,
				Title:  title,
			},
		},
	})
}

// respondWithValidationError writes one error object per invalid field, ordered by field name.
func respondWithValidationError(w http.ResponseWriter, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	errs := make([]Error, 0, len(names))
	for _, name := range names {
		errs = append(errs, Error{
			Code:   "VALIDATION_ERROR",
			Detail: fields[name],
			Status: http.StatusBadRequest,
			Title:  "Bad Request",
			Field:  name,
		})
	}

	respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Errors: errs})
}

// respondWithServiceError maps service errors to their HTTP representation. Anything unknown is
// logged and reported as a 500 without leaking the cause.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithValidationError(w, validationErr.Fields)
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, service.ErrInvalidPage):
		respondWithError(w, http.StatusNotFound, "Invalid page.")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func withTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

// pathID reads the {id} route variable. Routes constrain it to digits, so a failure here means
// the value overflowed and can never name an existing row.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryPage returns the 1-based page number; anything unparsable or below one is the first page.
func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func queryUint(r *http.Request, key string) *uint {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func absoluteURL(r *http.Request, path string) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{Scheme: scheme, Host: r.Host, Path: path}
}

func pageURL(r *http.Request, page int) *string {
	u := absoluteURL(r, r.URL.Path)
	query := r.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()

	s := u.String()
	return &s
}

func paginate[T, R any](r *http.Request, page service.Page[T], mapItem func(T) R) PaginatedResponse[R] {
	results := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		results = append(results, mapItem(item))
	}

	response := PaginatedResponse[R]{
		Count:   page.Total,
		Results: results,
	}
	if page.HasNext {
		response.Next = pageURL(r, page.Number+1)
	}
	if page.HasPrevious {
		response.Previous = pageURL(r, page.Number-1)
	}
	return response
}
