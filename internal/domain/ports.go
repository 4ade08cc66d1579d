package domain

import "context"

type GeoStore interface {
	// Write paths
	InsertCountry(ctx context.Context, c Country) error
	DeleteCountry(ctx context.Context, id string) error
	InsertCity(ctx context.Context, c City) error
	DeleteCity(ctx context.Context, id string) error

	// Read paths
	CountryExists(ctx context.Context, id string) (bool, error)
	CountryNameExists(ctx context.Context, nameEn, nameTh string) (bool, error)
	CountrySlugExists(ctx context.Context, slug string) (bool, error)
	GetCountry(ctx context.Context, id string) (Country, error)
	ListCountries(ctx context.Context) ([]Country, error)
	CityExists(ctx context.Context, id string) (bool, error)
	CityNameExists(ctx context.Context, countryID, nameEn, nameTh string) (bool, error)
	CitySlugExists(ctx context.Context, slug string) (bool, error)
	GetCity(ctx context.Context, id string) (City, error)
	ListCities(ctx context.Context, countrySlug string) ([]City, error)
}

type HotelStore interface {
	// Write paths
	InsertHotel(ctx context.Context, h Hotel) error
	DeleteHotel(ctx context.Context, id string) error

	// Read paths
	HotelExists(ctx context.Context, id string) (bool, error)
	HotelNameExists(ctx context.Context, cityID, nameEn, nameTh string) (bool, error)
	HotelSlugExists(ctx context.Context, slug string) (bool, error)
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context, q HotelsQuery) ([]Hotel, int, error)
}

type RoomStore interface {
	// Write paths
	InsertRoom(ctx context.Context, r Room) error
	DeleteRoom(ctx context.Context, id string) error

	// Read paths
	RoomExists(ctx context.Context, id string) (bool, error)
	RoomNameExists(ctx context.Context, hotelID, nameEn, nameTh string) (bool, error)
	GetRoom(ctx context.Context, id string) (Room, error)
	ListRooms(ctx context.Context, q RoomsQuery) ([]Room, int, error)
}

// OptionStore serves both catalogs; scope picks the hotel or room side,
// including which link table a write lands in.
type OptionStore interface {
	// Write paths
	InsertOption(ctx context.Context, o Option) error
	InsertOptionLinks(ctx context.Context, scope OptionScope, entityID string, optionIDs []string) error
	DeleteOptionLinks(ctx context.Context, scope OptionScope, entityID string) error

	// Read paths
	MissingOptionIDs(ctx context.Context, scope OptionScope, ids []string) ([]string, error)
	ListOptions(ctx context.Context, scope OptionScope) ([]Option, error)
	ListOptionIDs(ctx context.Context, scope OptionScope, entityID string) ([]string, error)
}

type PriceStore interface {
	// Write paths
	InsertBasePrice(ctx context.Context, p BasePrice) error
	DeleteBasePrice(ctx context.Context, roomID string) error
	InsertSeasonPrice(ctx context.Context, p SeasonPrice) error
	DeleteSeasonPrices(ctx context.Context, roomID string) error
	InsertOverridePrice(ctx context.Context, p OverridePrice) error
	DeleteOverridePrices(ctx context.Context, roomID string) error

	// Read paths
	GetBasePrice(ctx context.Context, roomID string) (BasePrice, error)
	ListSeasonPrices(ctx context.Context, roomID string) ([]SeasonPrice, error)
	ListOverridePrices(ctx context.Context, roomID string) ([]OverridePrice, error)
}

type SeoStore interface {
	// Write paths
	InsertSeo(ctx context.Context, rec SeoRecord) error
	DeleteSeo(ctx context.Context, id string) error
	DeleteSeoByPage(ctx context.Context, pageType PageType, pageID string) error

	// Read paths
	SeoSlugExists(ctx context.Context, pageType PageType, slug string) (bool, error)
	SeoLanguageExists(ctx context.Context, pageType PageType, pageID, language string) (bool, error)
	ListSeoByPage(ctx context.Context, pageType PageType, pageID string) ([]SeoRecord, error)
}

type ImageStore interface {
	// Write paths
	InsertImage(ctx context.Context, img Image) error
	// ClearCover drops the cover flag from every image of the owner,
	// so an incoming cover never coexists with an old one.
	ClearCover(ctx context.Context, contentType PageType, contentID string) error
	DeleteImagesByOwner(ctx context.Context, contentType PageType, contentID string) error

	// Read paths
	ListImagesByOwner(ctx context.Context, contentType PageType, contentID string) ([]Image, error)
}

type PageStore interface {
	// Write paths
	InsertPage(ctx context.Context, p Page) error
	DeletePage(ctx context.Context, id string) error

	// Read paths
	PageExists(ctx context.Context, id string) (bool, error)
	PageNameExists(ctx context.Context, kind PageKind, titleEn, titleTh string) (bool, error)
	PageSlugExists(ctx context.Context, kind PageKind, slug string) (bool, error)
	ListPages(ctx context.Context, kind PageKind) ([]Page, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Stores bundles every persistence port. The mysql repo satisfies all
// of them; tests fill only the fields a service touches.
type Stores struct {
	Geo     GeoStore
	Hotels  HotelStore
	Rooms   RoomStore
	Options OptionStore
	Prices  PriceStore
	Seo     SeoStore
	Images  ImageStore
	Pages   PageStore
}

// Queries for the list endpoints. Offset pagination, totals included.
type RoomsQuery struct {
	HotelSlug string
	Limit     int
	Offset    int
}

type HotelsQuery struct {
	CitySlug string
	Limit    int
	Offset   int
}
