package app_test

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// ---- fakes ----

// memStore implements every store port in memory with injectable
// failures, so orchestrator tests can observe exactly which rows
// survive a rollback.
type memStore struct {
	countries map[string]domain.Country
	cities    map[string]domain.City
	hotels    map[string]domain.Hotel
	rooms     map[string]domain.Room
	pages     map[string]domain.Page
	options   map[string]domain.Option
	links     map[string][]string // scope|entityID -> option ids
	bases     map[string]domain.BasePrice
	seasons   map[string][]domain.SeasonPrice
	overrides map[string][]domain.OverridePrice
	seo       map[string]domain.SeoRecord
	images    []domain.Image

	roomInsertErr  error
	hotelInsertErr error
	linkErr        error
	baseErr        error
	seasonErr      error
	overrideErr    error
	seoErrByLang   map[string]error
	imageErr       error
	imageErrByURL  map[string]error
	clearCoverErr  error
	deleteRoomErr  error
	deleteSeoErr   error
	deleteBaseErr  error
}

func newMemStore() *memStore {
	return &memStore{
		countries: map[string]domain.Country{},
		cities:    map[string]domain.City{},
		hotels:    map[string]domain.Hotel{},
		rooms:     map[string]domain.Room{},
		pages:     map[string]domain.Page{},
		options:   map[string]domain.Option{},
		links:     map[string][]string{},
		bases:     map[string]domain.BasePrice{},
		seasons:   map[string][]domain.SeasonPrice{},
		overrides: map[string][]domain.OverridePrice{},
		seo:       map[string]domain.SeoRecord{},
	}
}

func storesFor(m *memStore) domain.Stores {
	return domain.Stores{Geo: m, Hotels: m, Rooms: m, Options: m, Prices: m, Seo: m, Images: m, Pages: m}
}

func linkKey(scope domain.OptionScope, entityID string) string {
	return string(scope) + "|" + entityID
}

// GeoStore

func (m *memStore) InsertCountry(_ context.Context, c domain.Country) error {
	m.countries[c.ID] = c
	return nil
}

func (m *memStore) DeleteCountry(_ context.Context, id string) error {
	delete(m.countries, id)
	return nil
}

func (m *memStore) CountryExists(_ context.Context, id string) (bool, error) {
	_, ok := m.countries[id]
	return ok, nil
}

func (m *memStore) CountryNameExists(_ context.Context, nameEn, nameTh string) (bool, error) {
	for _, c := range m.countries {
		if c.NameEn == nameEn || c.NameTh == nameTh {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CountrySlugExists(_ context.Context, slug string) (bool, error) {
	for _, c := range m.countries {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetCountry(_ context.Context, id string) (domain.Country, error) {
	c, ok := m.countries[id]
	if !ok {
		return domain.Country{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *memStore) ListCountries(_ context.Context) ([]domain.Country, error) {
	out := make([]domain.Country, 0, len(m.countries))
	for _, c := range m.countries {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) InsertCity(_ context.Context, c domain.City) error {
	m.cities[c.ID] = c
	return nil
}

func (m *memStore) DeleteCity(_ context.Context, id string) error {
	delete(m.cities, id)
	return nil
}

func (m *memStore) CityExists(_ context.Context, id string) (bool, error) {
	_, ok := m.cities[id]
	return ok, nil
}

func (m *memStore) CityNameExists(_ context.Context, countryID, nameEn, nameTh string) (bool, error) {
	for _, c := range m.cities {
		if c.CountryID == countryID && (c.NameEn == nameEn || c.NameTh == nameTh) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CitySlugExists(_ context.Context, slug string) (bool, error) {
	for _, c := range m.cities {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetCity(_ context.Context, id string) (domain.City, error) {
	c, ok := m.cities[id]
	if !ok {
		return domain.City{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *memStore) ListCities(_ context.Context, countrySlug string) ([]domain.City, error) {
	var out []domain.City
	for _, c := range m.cities {
		if countrySlug != "" {
			country, ok := m.countries[c.CountryID]
			if !ok || country.Slug != countrySlug {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// HotelStore

func (m *memStore) InsertHotel(_ context.Context, h domain.Hotel) error {
	if m.hotelInsertErr != nil {
		return m.hotelInsertErr
	}
	m.hotels[h.ID] = h
	return nil
}

func (m *memStore) DeleteHotel(_ context.Context, id string) error {
	delete(m.hotels, id)
	return nil
}

func (m *memStore) HotelExists(_ context.Context, id string) (bool, error) {
	_, ok := m.hotels[id]
	return ok, nil
}

func (m *memStore) HotelNameExists(_ context.Context, cityID, nameEn, nameTh string) (bool, error) {
	for _, h := range m.hotels {
		if h.CityID == cityID && (h.NameEn == nameEn || h.NameTh == nameTh) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) HotelSlugExists(_ context.Context, slug string) (bool, error) {
	for _, h := range m.hotels {
		if h.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetHotel(_ context.Context, id string) (domain.Hotel, error) {
	h, ok := m.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (m *memStore) ListHotels(_ context.Context, q domain.HotelsQuery) ([]domain.Hotel, int, error) {
	var all []domain.Hotel
	for _, h := range m.hotels {
		if q.CitySlug != "" {
			city, ok := m.cities[h.CityID]
			if !ok || city.Slug != q.CitySlug {
				continue
			}
		}
		all = append(all, h)
	}
	return page(all, q.Limit, q.Offset), len(all), nil
}

// RoomStore

func (m *memStore) InsertRoom(_ context.Context, r domain.Room) error {
	if m.roomInsertErr != nil {
		return m.roomInsertErr
	}
	m.rooms[r.ID] = r
	return nil
}

func (m *memStore) DeleteRoom(_ context.Context, id string) error {
	if m.deleteRoomErr != nil {
		return m.deleteRoomErr
	}
	delete(m.rooms, id)
	return nil
}

func (m *memStore) RoomExists(_ context.Context, id string) (bool, error) {
	_, ok := m.rooms[id]
	return ok, nil
}

func (m *memStore) RoomNameExists(_ context.Context, hotelID, nameEn, nameTh string) (bool, error) {
	for _, r := range m.rooms {
		if r.HotelID == hotelID && (r.NameEn == nameEn || r.NameTh == nameTh) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetRoom(_ context.Context, id string) (domain.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *memStore) ListRooms(_ context.Context, q domain.RoomsQuery) ([]domain.Room, int, error) {
	var all []domain.Room
	for _, r := range m.rooms {
		if q.HotelSlug != "" {
			hotel, ok := m.hotels[r.HotelID]
			if !ok || hotel.Slug != q.HotelSlug {
				continue
			}
		}
		all = append(all, r)
	}
	return page(all, q.Limit, q.Offset), len(all), nil
}

// OptionStore

func (m *memStore) InsertOption(_ context.Context, o domain.Option) error {
	m.options[o.ID] = o
	return nil
}

func (m *memStore) InsertOptionLinks(_ context.Context, scope domain.OptionScope, entityID string, optionIDs []string) error {
	if m.linkErr != nil {
		return m.linkErr
	}
	key := linkKey(scope, entityID)
	m.links[key] = append(m.links[key], optionIDs...)
	return nil
}

func (m *memStore) DeleteOptionLinks(_ context.Context, scope domain.OptionScope, entityID string) error {
	delete(m.links, linkKey(scope, entityID))
	return nil
}

func (m *memStore) MissingOptionIDs(_ context.Context, scope domain.OptionScope, ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		opt, ok := m.options[id]
		if !ok || opt.Scope != scope {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (m *memStore) ListOptions(_ context.Context, scope domain.OptionScope) ([]domain.Option, error) {
	var out []domain.Option
	for _, o := range m.options {
		if o.Scope == scope {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memStore) ListOptionIDs(_ context.Context, scope domain.OptionScope, entityID string) ([]string, error) {
	return m.links[linkKey(scope, entityID)], nil
}

// PriceStore

func (m *memStore) InsertBasePrice(_ context.Context, p domain.BasePrice) error {
	if m.baseErr != nil {
		return m.baseErr
	}
	m.bases[p.RoomID] = p
	return nil
}

func (m *memStore) DeleteBasePrice(_ context.Context, roomID string) error {
	if m.deleteBaseErr != nil {
		return m.deleteBaseErr
	}
	delete(m.bases, roomID)
	return nil
}

func (m *memStore) InsertSeasonPrice(_ context.Context, p domain.SeasonPrice) error {
	if m.seasonErr != nil {
		return m.seasonErr
	}
	m.seasons[p.RoomID] = append(m.seasons[p.RoomID], p)
	return nil
}

func (m *memStore) DeleteSeasonPrices(_ context.Context, roomID string) error {
	delete(m.seasons, roomID)
	return nil
}

func (m *memStore) InsertOverridePrice(_ context.Context, p domain.OverridePrice) error {
	if m.overrideErr != nil {
		return m.overrideErr
	}
	m.overrides[p.RoomID] = append(m.overrides[p.RoomID], p)
	return nil
}

func (m *memStore) DeleteOverridePrices(_ context.Context, roomID string) error {
	delete(m.overrides, roomID)
	return nil
}

func (m *memStore) GetBasePrice(_ context.Context, roomID string) (domain.BasePrice, error) {
	p, ok := m.bases[roomID]
	if !ok {
		return domain.BasePrice{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memStore) ListSeasonPrices(_ context.Context, roomID string) ([]domain.SeasonPrice, error) {
	return m.seasons[roomID], nil
}

func (m *memStore) ListOverridePrices(_ context.Context, roomID string) ([]domain.OverridePrice, error) {
	return m.overrides[roomID], nil
}

// SeoStore

func (m *memStore) InsertSeo(_ context.Context, rec domain.SeoRecord) error {
	if err, ok := m.seoErrByLang[rec.Language]; ok {
		return err
	}
	m.seo[rec.ID] = rec
	return nil
}

func (m *memStore) DeleteSeo(_ context.Context, id string) error {
	if m.deleteSeoErr != nil {
		return m.deleteSeoErr
	}
	delete(m.seo, id)
	return nil
}

func (m *memStore) DeleteSeoByPage(_ context.Context, pageType domain.PageType, pageID string) error {
	for id, rec := range m.seo {
		if rec.PageType == pageType && rec.PageID == pageID {
			delete(m.seo, id)
		}
	}
	return nil
}

func (m *memStore) SeoSlugExists(_ context.Context, pageType domain.PageType, slug string) (bool, error) {
	for _, rec := range m.seo {
		if rec.PageType == pageType && rec.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) SeoLanguageExists(_ context.Context, pageType domain.PageType, pageID, language string) (bool, error) {
	for _, rec := range m.seo {
		if rec.PageType == pageType && rec.PageID == pageID && strings.EqualFold(rec.Language, language) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListSeoByPage(_ context.Context, pageType domain.PageType, pageID string) ([]domain.SeoRecord, error) {
	var out []domain.SeoRecord
	for _, rec := range m.seo {
		if rec.PageType == pageType && rec.PageID == pageID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ImageStore

func (m *memStore) InsertImage(_ context.Context, img domain.Image) error {
	if m.imageErr != nil {
		return m.imageErr
	}
	if err, ok := m.imageErrByURL[img.URL]; ok {
		return err
	}
	m.images = append(m.images, img)
	return nil
}

func (m *memStore) ClearCover(_ context.Context, contentType domain.PageType, contentID string) error {
	if m.clearCoverErr != nil {
		return m.clearCoverErr
	}
	for i := range m.images {
		if m.images[i].ContentType == contentType && m.images[i].ContentID == contentID {
			m.images[i].IsCover = false
		}
	}
	return nil
}

func (m *memStore) DeleteImagesByOwner(_ context.Context, contentType domain.PageType, contentID string) error {
	kept := m.images[:0]
	for _, img := range m.images {
		if img.ContentType != contentType || img.ContentID != contentID {
			kept = append(kept, img)
		}
	}
	m.images = kept
	return nil
}

func (m *memStore) ListImagesByOwner(_ context.Context, contentType domain.PageType, contentID string) ([]domain.Image, error) {
	var out []domain.Image
	for _, img := range m.images {
		if img.ContentType == contentType && img.ContentID == contentID {
			out = append(out, img)
		}
	}
	return out, nil
}

// PageStore

func (m *memStore) InsertPage(_ context.Context, p domain.Page) error {
	m.pages[p.ID] = p
	return nil
}

func (m *memStore) DeletePage(_ context.Context, id string) error {
	delete(m.pages, id)
	return nil
}

func (m *memStore) PageExists(_ context.Context, id string) (bool, error) {
	_, ok := m.pages[id]
	return ok, nil
}

func (m *memStore) PageNameExists(_ context.Context, kind domain.PageKind, titleEn, titleTh string) (bool, error) {
	for _, p := range m.pages {
		if p.Kind == kind && (p.TitleEn == titleEn || p.TitleTh == titleTh) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) PageSlugExists(_ context.Context, kind domain.PageKind, slug string) (bool, error) {
	for _, p := range m.pages {
		if p.Kind == kind && p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListPages(_ context.Context, kind domain.PageKind) ([]domain.Page, error) {
	var out []domain.Page
	for _, p := range m.pages {
		if kind == "" || p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// fakeCache round-trips values through JSON, same as the redis adapter.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(_ context.Context, key string, v any, _ int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func ptr[T any](v T) *T { return &v }
