// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// Handlers binds every service to its routes. Reads go through Q;
// each creation endpoint owns one orchestrator.
type Handlers struct {
	Rooms  *app.RoomService
	Hotels *app.HotelService
	Geo    *app.GeoService
	Pages  *app.PageService
	Seo    *app.SeoService
	Images *app.ImageService
	Q      *app.QueryService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/room", h.createRoom)
		r.Get("/room/list", h.listRooms)
		r.Get("/room/{id}", h.getRoom)

		r.Post("/hotel", h.createHotel)
		r.Get("/hotel/list", h.listHotels)
		r.Get("/hotel/{id}", h.getHotel)

		r.Post("/country", h.createCountry)
		r.Get("/country/list", h.listCountries)
		r.Post("/city", h.createCity)
		r.Get("/city/list", h.listCities)

		r.Post("/page", h.createPage)
		r.Get("/page/list", h.listPages)

		r.Get("/option/list", h.listOptions)
		r.Post("/seo-metadata", h.createSeoBatch)
		r.Post("/image-collection", h.createImageCollection)
	})
}

// Every response shares one envelope: {"success":true,"data":...} on
// the happy path, {"success":false,"message":...,"error":...} on the
// sad one. Multi-status creations still count as success.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeFailure(w http.ResponseWriter, status int, message string, eb *errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Message: message, Error: eb}); err != nil {
		log.Error().Err(err).Msg("write JSON failure response failed")
	}
}

// writeError maps the typed domain errors onto HTTP statuses. Anything
// unrecognized is a store-side fault and stays opaque to the client.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var ce *domain.ConflictError
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &ve):
		writeFailure(w, http.StatusBadRequest, ve.Message, &errorBody{Code: ve.Code, Field: ve.Field, Details: ve.Details})
	case errors.As(err, &ce):
		writeFailure(w, http.StatusConflict, ce.Message, &errorBody{Code: ce.Code, Details: ce.Details})
	case errors.As(err, &nf):
		writeFailure(w, http.StatusNotFound, nf.Message, &errorBody{Code: nf.Code})
	default:
		log.Error().Err(err).Msg("request failed")
		writeFailure(w, http.StatusInternalServerError, "internal error", &errorBody{Code: domain.CodeStoreError})
	}
}

// statusFor picks 201 for a clean aggregate and 207 when dependent
// entries failed but the primary record stands.
func statusFor(partial bool) int {
	if partial {
		return http.StatusMultiStatus
	}
	return http.StatusCreated
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON payload: "+err.Error())
	}
	return nil
}

func queryInt(r *http.Request, key string) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewValidationError(key, "must be an integer")
	}
	return n, nil
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCachedData wraps detail reads in the envelope, tags them with a
// weak ETag and short-circuits If-None-Match revalidations.
func writeCachedData(w http.ResponseWriter, r *http.Request, data any) {
	etag, body := calcETagAndBody(envelope{Success: true, Data: data})
	if body == nil {
		writeFailure(w, http.StatusInternalServerError, "internal error", &errorBody{Code: domain.CodeStoreError})
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}
