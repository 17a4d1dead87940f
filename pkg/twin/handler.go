/*
Copyright 2026 the Airport Gap Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package twin

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
)

// ContentType is sent with every JSON document.
const ContentType = "application/json; charset=utf-8"

// Handler serves the Airport API from a MemoryStore.
type Handler struct {
	store *MemoryStore
	log   logr.Logger
}

// NewHandler returns a handler, use logr.Discard() to silence it.
func NewHandler(store *MemoryStore, log logr.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

// Routes mounts the Airport API routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/airports", h.ListAirports)
	r.Post("/airports/distance", h.CalculateDistance)
	r.Get("/airports/{airportID}", h.GetAirport)

	r.Get("/favorites", h.ListFavorites)
	r.Post("/favorites", h.CreateFavorite)
	r.Delete("/favorites/clear_all", h.ClearFavorites)
	r.Get("/favorites/{favoriteID}", h.GetFavorite)
	r.Put("/favorites/{favoriteID}", h.UpdateFavorite)
	r.Patch("/favorites/{favoriteID}", h.UpdateFavorite)
	r.Delete("/favorites/{favoriteID}", h.DeleteFavorite)
}

// NewRouter returns a router with the handler mounted behind the standard
// middleware stack.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(h.logRequests)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found", "The page you requested could not be found.")
	})

	h.Routes(r)

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.log.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start), "requestID", chimw.GetReqID(r.Context()))
	})
}

type resource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes any    `json:"attributes"`
}

type document struct {
	Data  any    `json:"data"`
	Links *links `json:"links,omitempty"`
}

type links struct {
	First string `json:"first"`
	Self  string `json:"self"`
	Last  string `json:"last"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

type errorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type errorDocument struct {
	Errors []errorObject `json:"errors"`
}

type favoriteAirport struct {
	ID string `json:"id"`
	Airport
}

type favoriteAttributes struct {
	Airport favoriteAirport `json:"airport"`
	Note    string          `json:"note"`
}

func airportResource(a Airport) resource {
	return resource{ID: a.ID, Type: "airport", Attributes: a}
}

func favoriteResource(f Favorite) resource {
	return resource{
		ID:   f.ID,
		Type: "favorite",
		Attributes: favoriteAttributes{
			Airport: favoriteAirport{ID: f.Airport.ID, Airport: f.Airport},
			Note:    f.Note,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)

	//nolint:errchkjson
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, title, detail string) {
	writeJSON(w, status, errorDocument{
		Errors: []errorObject{
			{
				Status: strconv.Itoa(status),
				Title:  title,
				Detail: detail,
			},
		},
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Unauthorized", "You are not authorized to perform the requested action.")
}

// handleError maps store errors to their HTTP representation.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		writeUnauthorized(w)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Not Found", "The page you requested could not be found.")
	case errors.Is(err, ErrUnknownAirport), errors.Is(err, ErrInvalid):
		writeError(w, http.StatusUnprocessableEntity, "Unable to process request", err.Error())
	default:
		h.log.Error(err, "unhandled error", "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.")
	}
}

// bearerToken extracts the token from "Bearer <token>" or "Bearer token=<token>".
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimPrefix(strings.TrimSpace(token), "token=")
	if token == "" {
		return "", false
	}

	return token, true
}

// authenticate returns the caller's token, writing a 401 if there isn't a
// valid one.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, ok := bearerToken(r)
	if !ok || !h.store.Authorized(token) {
		writeUnauthorized(w)
		return "", false
	}

	return token, true
}

// payload reads form or JSON encoded request bodies.
func payload(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var body map[string]string

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}

		values := url.Values{}

		for k, v := range body {
			values.Set(k, v)
		}

		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return r.Form, nil
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s%s?page=%d", scheme, r.Host, r.URL.Path, page)
}

// requestedPage reads the optional page query parameter, writing a 422 if
// it isn't a positive integer.
func requestedPage(w http.ResponseWriter, r *http.Request) (int, bool) {
	p := r.URL.Query().Get("page")
	if p == "" {
		return 1, true
	}

	page, err := strconv.Atoi(p)
	if err != nil || page < 1 {
		writeError(w, http.StatusUnprocessableEntity, "Unable to process request", "page must be a positive integer")
		return 0, false
	}

	return page, true
}

func pageLinks(r *http.Request, page, pages int) *links {
	l := &links{
		First: pageURL(r, 1),
		Self:  pageURL(r, page),
		Last:  pageURL(r, pages),
	}

	if page > 1 {
		l.Prev = pageURL(r, page-1)
	}

	if page < pages {
		l.Next = pageURL(r, page+1)
	}

	return l
}

// ListAirports handles GET /airports.
func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	page, ok := requestedPage(w, r)
	if !ok {
		return
	}

	airports := h.store.Airports(page)

	data := make([]resource, len(airports))

	for i := range airports {
		data[i] = airportResource(airports[i])
	}

	writeJSON(w, http.StatusOK, document{Data: data, Links: pageLinks(r, page, h.store.Pages())})
}

// GetAirport handles GET /airports/{airportID}.
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	a, err := h.store.Airport(chi.URLParam(r, "airportID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, document{Data: airportResource(a)})
}

// CalculateDistance handles POST /airports/distance.
func (h *Handler) CalculateDistance(w http.ResponseWriter, r *http.Request) {
	values, err := payload(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	d, err := h.store.Distance(values.Get("from"), values.Get("to"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, document{
		Data: resource{
			ID:         d.From.ID + "-" + d.To.ID,
			Type:       "airport_distance",
			Attributes: d,
		},
	})
}

// ListFavorites handles GET /favorites, paginated like the airport listing.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	page, ok := requestedPage(w, r)
	if !ok {
		return
	}

	favorites, pages, err := h.store.FavoritesPage(token, page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	data := make([]resource, len(favorites))

	for i := range favorites {
		data[i] = favoriteResource(favorites[i])
	}

	writeJSON(w, http.StatusOK, document{Data: data, Links: pageLinks(r, page, pages)})
}

// CreateFavorite handles POST /favorites.
func (h *Handler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	values, err := payload(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	airportID := values.Get("airport_id")
	if airportID == "" {
		h.handleError(w, r, fmt.Errorf("%w: airport_id is required", ErrInvalid))
		return
	}

	f, err := h.store.CreateFavorite(token, airportID, values.Get("note"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.Info("favorite created", "id", f.ID, "airport", f.Airport.ID)

	writeJSON(w, http.StatusCreated, document{Data: favoriteResource(f)})
}

// GetFavorite handles GET /favorites/{favoriteID}.
func (h *Handler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	f, err := h.store.Favorite(token, chi.URLParam(r, "favoriteID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, document{Data: favoriteResource(f)})
}

// UpdateFavorite handles PUT and PATCH /favorites/{favoriteID}.
func (h *Handler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	values, err := payload(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	f, err := h.store.UpdateFavorite(token, chi.URLParam(r, "favoriteID"), values.Get("note"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, document{Data: favoriteResource(f)})
}

// DeleteFavorite handles DELETE /favorites/{favoriteID}.
func (h *Handler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "favoriteID")

	if err := h.store.DeleteFavorite(token, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.Info("favorite deleted", "id", id)

	w.WriteHeader(http.StatusNoContent)
}

// ClearFavorites handles DELETE /favorites/clear_all.
func (h *Handler) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	token, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	if err := h.store.ClearFavorites(token); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
