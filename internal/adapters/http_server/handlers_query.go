package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := h.Q.ListRooms(r.Context(), domain.RoomsQuery{
		HotelSlug: r.URL.Query().Get("hotel_slug"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCachedData(w, r, out)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := h.Q.ListHotels(r.Context(), domain.HotelsQuery{
		CitySlug: r.URL.Query().Get("city_slug"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCachedData(w, r, out)
}

func (h *Handlers) listCountries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListCountries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		Countries []domain.Country `json:"countries"`
	}{out})
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListCities(r.Context(), r.URL.Query().Get("country_slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		Cities []domain.City `json:"cities"`
	}{out})
}

func (h *Handlers) listPages(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListPages(r.Context(), domain.PageKind(r.URL.Query().Get("kind")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		Pages []domain.Page `json:"pages"`
	}{out})
}

func (h *Handlers) listOptions(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListOptions(r.Context(), domain.OptionScope(r.URL.Query().Get("scope")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		Options []domain.Option `json:"options"`
	}{out})
}
