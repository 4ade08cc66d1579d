package httpserver

import (
	"net/http"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/adapters/observability"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// writeCreateResult and writeCreateError are the terminal writes of
// every creation endpoint; they also feed the aggregate-creation
// counter. Decode and validation failures count as rejected.
func writeCreateResult(w http.ResponseWriter, entity string, partial bool, res any) {
	outcome := "created"
	if partial {
		outcome = "partial"
	}
	observability.ObserveAggregate(entity, outcome)
	writeData(w, statusFor(partial), res)
}

func writeCreateError(w http.ResponseWriter, entity string, err error) {
	observability.ObserveAggregate(entity, "rejected")
	writeError(w, err)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "room", err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeCreateError(w, "room", err)
		return
	}
	res, err := h.Rooms.CreateRoom(r.Context(), in)
	if err != nil {
		writeCreateError(w, "room", err)
		return
	}
	writeCreateResult(w, "room", res.Partial(), res)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "hotel", err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeCreateError(w, "hotel", err)
		return
	}
	res, err := h.Hotels.CreateHotel(r.Context(), in)
	if err != nil {
		writeCreateError(w, "hotel", err)
		return
	}
	writeCreateResult(w, "hotel", res.Partial(), res)
}

func (h *Handlers) createCountry(w http.ResponseWriter, r *http.Request) {
	var req createCountryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "country", err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeCreateError(w, "country", err)
		return
	}
	res, err := h.Geo.CreateCountry(r.Context(), in)
	if err != nil {
		writeCreateError(w, "country", err)
		return
	}
	writeCreateResult(w, "country", res.Partial(), res)
}

func (h *Handlers) createCity(w http.ResponseWriter, r *http.Request) {
	var req createCityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "city", err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeCreateError(w, "city", err)
		return
	}
	res, err := h.Geo.CreateCity(r.Context(), in)
	if err != nil {
		writeCreateError(w, "city", err)
		return
	}
	writeCreateResult(w, "city", res.Partial(), res)
}

func (h *Handlers) createPage(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "page", err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeCreateError(w, "page", err)
		return
	}
	res, err := h.Pages.CreatePage(r.Context(), in)
	if err != nil {
		writeCreateError(w, "page", err)
		return
	}
	writeCreateResult(w, "page", res.Partial(), res)
}

func (h *Handlers) createSeoBatch(w http.ResponseWriter, r *http.Request) {
	var req createSeoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "seo", err)
		return
	}
	res, err := h.Seo.CreateBatch(r.Context(), seoEntries(req.SeoData))
	if err != nil {
		writeCreateError(w, "seo", err)
		return
	}
	writeCreateResult(w, "seo", res.Partial(), res)
}

func (h *Handlers) createImageCollection(w http.ResponseWriter, r *http.Request) {
	var req createImagesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeCreateError(w, "image", err)
		return
	}
	res, err := h.Images.CreateCollection(r.Context(), domain.PageType(req.ContentType), req.ContentID, imageRecords(req.Images))
	if err != nil {
		writeCreateError(w, "image", err)
		return
	}
	writeCreateResult(w, "image", res.Partial(), res)
}
