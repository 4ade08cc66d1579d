package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

const (
	defaultLimit  = 20
	maxLimit      = 100
	maxCacheBytes = 1_000_000

	countriesKey = "countries"
)

func roomListKey(hotelSlug string, limit, offset int) string {
	return fmt.Sprintf("rooms:%s:%d:%d", hotelSlug, limit, offset)
}

func hotelListKey(citySlug string, limit, offset int) string {
	return fmt.Sprintf("hotels:%s:%d:%d", citySlug, limit, offset)
}

func cityListKey(countrySlug string) string { return "cities:" + countrySlug }
func pageListKey(kind string) string        { return "pages:" + kind }
func roomKey(id string) string              { return "room:" + id }
func hotelKey(id string) string             { return "hotel:" + id }

func optionListKey(scope domain.OptionScope) string { return "options:" + string(scope) }

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// QueryService serves the read side, cache-aside over redis. Cache
// errors are ignored; the store stays authoritative.
type QueryService struct {
	stores   domain.Stores
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(st domain.Stores, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{stores: st, cache: c, cacheTTL: ttl}
}

type RoomsPage struct {
	Rooms  []domain.Room `json:"rooms"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func (s *QueryService) ListRooms(ctx context.Context, q domain.RoomsQuery) (RoomsPage, error) {
	q.Limit, q.Offset = clampPage(q.Limit, q.Offset)
	key := roomListKey(q.HotelSlug, q.Limit, q.Offset)
	var out RoomsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	rooms, total, err := s.stores.Rooms.ListRooms(ctx, q)
	if err != nil {
		return RoomsPage{}, err
	}
	out = RoomsPage{Rooms: rooms, Total: total, Limit: q.Limit, Offset: q.Offset}
	if out.Rooms == nil {
		out.Rooms = []domain.Room{}
	}
	if b, _ := json.Marshal(out); len(b) < maxCacheBytes {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// RoomDetail is the aggregate read model of one room.
type RoomDetail struct {
	Room      domain.Room            `json:"room"`
	BasePrice *domain.BasePrice      `json:"base_price,omitempty"`
	Seasons   []domain.SeasonPrice   `json:"season_base_prices,omitempty"`
	Overrides []domain.OverridePrice `json:"override_prices,omitempty"`
	OptionIDs []string               `json:"room_option_ids"`
	Images    []domain.Image         `json:"images,omitempty"`
}

func (s *QueryService) GetRoom(ctx context.Context, id string) (RoomDetail, error) {
	key := roomKey(id)
	var out RoomDetail
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	room, err := s.stores.Rooms.GetRoom(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return RoomDetail{}, &domain.NotFoundError{
				Code:    domain.CodeRoomNotFound,
				Message: fmt.Sprintf("room %q does not exist", id),
			}
		}
		return RoomDetail{}, err
	}
	out.Room = room

	base, err := s.stores.Prices.GetBasePrice(ctx, id)
	switch {
	case err == nil:
		out.BasePrice = &base
	case !domain.IsNotFound(err):
		return RoomDetail{}, err
	}
	if out.Seasons, err = s.stores.Prices.ListSeasonPrices(ctx, id); err != nil {
		return RoomDetail{}, err
	}
	if out.Overrides, err = s.stores.Prices.ListOverridePrices(ctx, id); err != nil {
		return RoomDetail{}, err
	}
	if out.OptionIDs, err = s.stores.Options.ListOptionIDs(ctx, domain.ScopeRoom, id); err != nil {
		return RoomDetail{}, err
	}
	if out.OptionIDs == nil {
		out.OptionIDs = []string{}
	}
	if out.Images, err = s.stores.Images.ListImagesByOwner(ctx, domain.PageTypeRoom, id); err != nil {
		return RoomDetail{}, err
	}

	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

type HotelsPage struct {
	Hotels []domain.Hotel `json:"hotels"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func (s *QueryService) ListHotels(ctx context.Context, q domain.HotelsQuery) (HotelsPage, error) {
	q.Limit, q.Offset = clampPage(q.Limit, q.Offset)
	key := hotelListKey(q.CitySlug, q.Limit, q.Offset)
	var out HotelsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	hotels, total, err := s.stores.Hotels.ListHotels(ctx, q)
	if err != nil {
		return HotelsPage{}, err
	}
	out = HotelsPage{Hotels: hotels, Total: total, Limit: q.Limit, Offset: q.Offset}
	if out.Hotels == nil {
		out.Hotels = []domain.Hotel{}
	}
	if b, _ := json.Marshal(out); len(b) < maxCacheBytes {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

type HotelDetail struct {
	Hotel     domain.Hotel   `json:"hotel"`
	OptionIDs []string       `json:"hotel_option_ids"`
	Images    []domain.Image `json:"images,omitempty"`
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (HotelDetail, error) {
	key := hotelKey(id)
	var out HotelDetail
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	hotel, err := s.stores.Hotels.GetHotel(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return HotelDetail{}, &domain.NotFoundError{
				Code:    domain.CodeHotelNotFound,
				Message: fmt.Sprintf("hotel %q does not exist", id),
			}
		}
		return HotelDetail{}, err
	}
	out.Hotel = hotel

	if out.OptionIDs, err = s.stores.Options.ListOptionIDs(ctx, domain.ScopeHotel, id); err != nil {
		return HotelDetail{}, err
	}
	if out.OptionIDs == nil {
		out.OptionIDs = []string{}
	}
	if out.Images, err = s.stores.Images.ListImagesByOwner(ctx, domain.PageTypeHotel, id); err != nil {
		return HotelDetail{}, err
	}

	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var out []domain.Country
	if ok, _ := s.cache.Get(ctx, countriesKey, &out); ok {
		return out, nil
	}
	countries, err := s.stores.Geo.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	if countries == nil {
		countries = []domain.Country{}
	}
	_ = s.cache.Set(ctx, countriesKey, countries, int(s.cacheTTL.Seconds()))
	return countries, nil
}

func (s *QueryService) ListCities(ctx context.Context, countrySlug string) ([]domain.City, error) {
	key := cityListKey(countrySlug)
	var out []domain.City
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	cities, err := s.stores.Geo.ListCities(ctx, countrySlug)
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []domain.City{}
	}
	_ = s.cache.Set(ctx, key, cities, int(s.cacheTTL.Seconds()))
	return cities, nil
}

func (s *QueryService) ListPages(ctx context.Context, kind domain.PageKind) ([]domain.Page, error) {
	if kind != "" && !kind.Valid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown kind %q", kind))
	}
	key := pageListKey(string(kind))
	var out []domain.Page
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	pages, err := s.stores.Pages.ListPages(ctx, kind)
	if err != nil {
		return nil, err
	}
	if pages == nil {
		pages = []domain.Page{}
	}
	_ = s.cache.Set(ctx, key, pages, int(s.cacheTTL.Seconds()))
	return pages, nil
}

func (s *QueryService) ListOptions(ctx context.Context, scope domain.OptionScope) ([]domain.Option, error) {
	if !scope.Valid() {
		return nil, domain.NewValidationError("scope", fmt.Sprintf("scope must be %q or %q", domain.ScopeHotel, domain.ScopeRoom))
	}
	key := optionListKey(scope)
	var out []domain.Option
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	options, err := s.stores.Options.ListOptions(ctx, scope)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []domain.Option{}
	}
	_ = s.cache.Set(ctx, key, options, int(s.cacheTTL.Seconds()))
	return options, nil
}
