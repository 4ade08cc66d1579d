package httpserver

import (
	"fmt"
	"strings"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// Request bodies. Pointer fields mark required-ness: a nil required
// field fails with a field-specific VALIDATION_ERROR before any
// service call. Optional scalars carry their default inline.

func require(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", domain.NewValidationError(field, "field is required")
	}
	return *v, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

type weekPricesDTO struct {
	Sun *float64 `json:"price_sun"`
	Mon *float64 `json:"price_mon"`
	Tue *float64 `json:"price_tue"`
	Wed *float64 `json:"price_wed"`
	Thu *float64 `json:"price_thu"`
	Fri *float64 `json:"price_fri"`
	Sat *float64 `json:"price_sat"`
}

func (d weekPricesDTO) toDomain(prefix string) (domain.WeekPrices, error) {
	var w domain.WeekPrices
	for _, f := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"price_sun", d.Sun, &w.Sun},
		{"price_mon", d.Mon, &w.Mon},
		{"price_tue", d.Tue, &w.Tue},
		{"price_wed", d.Wed, &w.Wed},
		{"price_thu", d.Thu, &w.Thu},
		{"price_fri", d.Fri, &w.Fri},
		{"price_sat", d.Sat, &w.Sat},
	} {
		if f.src == nil {
			return domain.WeekPrices{}, domain.NewValidationError(prefix+"."+f.name, "field is required")
		}
		*f.dst = *f.src
	}
	return w, nil
}

type seasonDTO struct {
	Name      *string      `json:"name"`
	StartDate *domain.Date `json:"start_date"`
	EndDate   *domain.Date `json:"end_date"`
	weekPricesDTO
	IsActive *bool `json:"is_active"`
}

func (d seasonDTO) toDomain(idx int) (domain.SeasonPrice, error) {
	prefix := fmt.Sprintf("season_base_prices[%d]", idx)
	name, err := require(prefix+".name", d.Name)
	if err != nil {
		return domain.SeasonPrice{}, err
	}
	if d.StartDate == nil {
		return domain.SeasonPrice{}, domain.NewValidationError(prefix+".start_date", "field is required")
	}
	if d.EndDate == nil {
		return domain.SeasonPrice{}, domain.NewValidationError(prefix+".end_date", "field is required")
	}
	week, err := d.weekPricesDTO.toDomain(prefix)
	if err != nil {
		return domain.SeasonPrice{}, err
	}
	return domain.SeasonPrice{
		Name:       name,
		DateRange:  domain.DateRange{Start: *d.StartDate, End: *d.EndDate},
		WeekPrices: week,
		IsActive:   boolOr(d.IsActive, true),
	}, nil
}

type overrideDTO struct {
	Name        *string      `json:"name"`
	StartDate   *domain.Date `json:"start_date"`
	EndDate     *domain.Date `json:"end_date"`
	Price       *float64     `json:"price"`
	IsPromotion *bool        `json:"is_promotion"`
	IsActive    *bool        `json:"is_active"`
	Note        string       `json:"note"`
}

func (d overrideDTO) toDomain(idx int) (domain.OverridePrice, error) {
	prefix := fmt.Sprintf("override_prices[%d]", idx)
	name, err := require(prefix+".name", d.Name)
	if err != nil {
		return domain.OverridePrice{}, err
	}
	if d.StartDate == nil {
		return domain.OverridePrice{}, domain.NewValidationError(prefix+".start_date", "field is required")
	}
	if d.EndDate == nil {
		return domain.OverridePrice{}, domain.NewValidationError(prefix+".end_date", "field is required")
	}
	if d.Price == nil {
		return domain.OverridePrice{}, domain.NewValidationError(prefix+".price", "field is required")
	}
	return domain.OverridePrice{
		Name:        name,
		DateRange:   domain.DateRange{Start: *d.StartDate, End: *d.EndDate},
		Price:       *d.Price,
		IsPromotion: boolOr(d.IsPromotion, false),
		IsActive:    boolOr(d.IsActive, true),
		Note:        d.Note,
	}, nil
}

type seoEntryDTO struct {
	PageType      string `json:"page_type"`
	PageID        string `json:"page_id"`
	Language      string `json:"language"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	Slug          string `json:"slug"`
	OgTitle       string `json:"og_title"`
	OgDescription string `json:"og_description"`
	OgImage       string `json:"og_image"`
}

// seoEntries maps wire entries onto domain records. Ids and timestamps
// are never client-supplied; per-entry value checks happen in the
// service so one bad entry cannot sink its siblings.
func seoEntries(in []seoEntryDTO) []domain.SeoRecord {
	out := make([]domain.SeoRecord, 0, len(in))
	for _, e := range in {
		out = append(out, domain.SeoRecord{
			PageType:      domain.PageType(e.PageType),
			PageID:        e.PageID,
			Language:      e.Language,
			Title:         e.Title,
			Description:   e.Description,
			Keywords:      e.Keywords,
			Slug:          e.Slug,
			OgTitle:       e.OgTitle,
			OgDescription: e.OgDescription,
			OgImage:       e.OgImage,
		})
	}
	return out
}

type imageDTO struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	Caption   string `json:"caption"`
	IsCover   bool   `json:"is_cover"`
	SortOrder int    `json:"sort_order"`
}

func imageRecords(in []imageDTO) []domain.Image {
	out := make([]domain.Image, 0, len(in))
	for _, img := range in {
		out = append(out, domain.Image{
			URL:       img.URL,
			AltText:   img.AltText,
			Caption:   img.Caption,
			IsCover:   img.IsCover,
			SortOrder: img.SortOrder,
		})
	}
	return out
}

// ---- primary entity payloads ----

type roomDataDTO struct {
	HotelID       *string  `json:"hotel_id"`
	NameEn        *string  `json:"name_en"`
	NameTh        *string  `json:"name_th"`
	DescriptionEn string   `json:"description_en"`
	DescriptionTh string   `json:"description_th"`
	MaxAdults     *int     `json:"max_adults"`
	MaxChildren   *int     `json:"max_children"`
	RoomSize      *float64 `json:"room_size"`
	IsActive      *bool    `json:"is_active"`
}

func (d roomDataDTO) toDomain() (domain.Room, error) {
	hotelID, err := require("room_data.hotel_id", d.HotelID)
	if err != nil {
		return domain.Room{}, err
	}
	nameEn, err := require("room_data.name_en", d.NameEn)
	if err != nil {
		return domain.Room{}, err
	}
	nameTh, err := require("room_data.name_th", d.NameTh)
	if err != nil {
		return domain.Room{}, err
	}
	return domain.Room{
		HotelID:       hotelID,
		NameEn:        nameEn,
		NameTh:        nameTh,
		DescriptionEn: d.DescriptionEn,
		DescriptionTh: d.DescriptionTh,
		MaxAdults:     intOr(d.MaxAdults, 2),
		MaxChildren:   intOr(d.MaxChildren, 0),
		RoomSize:      d.RoomSize,
		IsActive:      boolOr(d.IsActive, true),
	}, nil
}

type hotelDataDTO struct {
	CityID        *string `json:"city_id"`
	NameEn        *string `json:"name_en"`
	NameTh        *string `json:"name_th"`
	DescriptionEn string  `json:"description_en"`
	DescriptionTh string  `json:"description_th"`
	Address       string  `json:"address"`
	StarRating    *int    `json:"star_rating"`
	Slug          *string `json:"slug"`
	IsActive      *bool   `json:"is_active"`
}

func (d hotelDataDTO) toDomain() (domain.Hotel, error) {
	cityID, err := require("hotel_data.city_id", d.CityID)
	if err != nil {
		return domain.Hotel{}, err
	}
	nameEn, err := require("hotel_data.name_en", d.NameEn)
	if err != nil {
		return domain.Hotel{}, err
	}
	nameTh, err := require("hotel_data.name_th", d.NameTh)
	if err != nil {
		return domain.Hotel{}, err
	}
	slug, err := require("hotel_data.slug", d.Slug)
	if err != nil {
		return domain.Hotel{}, err
	}
	return domain.Hotel{
		CityID:        cityID,
		NameEn:        nameEn,
		NameTh:        nameTh,
		DescriptionEn: d.DescriptionEn,
		DescriptionTh: d.DescriptionTh,
		Address:       d.Address,
		StarRating:    d.StarRating,
		Slug:          slug,
		IsActive:      boolOr(d.IsActive, true),
	}, nil
}

type countryDataDTO struct {
	NameEn   *string `json:"name_en"`
	NameTh   *string `json:"name_th"`
	Slug     *string `json:"slug"`
	IsActive *bool   `json:"is_active"`
}

func (d countryDataDTO) toDomain() (domain.Country, error) {
	nameEn, err := require("country_data.name_en", d.NameEn)
	if err != nil {
		return domain.Country{}, err
	}
	nameTh, err := require("country_data.name_th", d.NameTh)
	if err != nil {
		return domain.Country{}, err
	}
	slug, err := require("country_data.slug", d.Slug)
	if err != nil {
		return domain.Country{}, err
	}
	return domain.Country{
		NameEn:   nameEn,
		NameTh:   nameTh,
		Slug:     slug,
		IsActive: boolOr(d.IsActive, true),
	}, nil
}

type cityDataDTO struct {
	CountryID *string `json:"country_id"`
	NameEn    *string `json:"name_en"`
	NameTh    *string `json:"name_th"`
	Slug      *string `json:"slug"`
	IsActive  *bool   `json:"is_active"`
}

func (d cityDataDTO) toDomain() (domain.City, error) {
	countryID, err := require("city_data.country_id", d.CountryID)
	if err != nil {
		return domain.City{}, err
	}
	nameEn, err := require("city_data.name_en", d.NameEn)
	if err != nil {
		return domain.City{}, err
	}
	nameTh, err := require("city_data.name_th", d.NameTh)
	if err != nil {
		return domain.City{}, err
	}
	slug, err := require("city_data.slug", d.Slug)
	if err != nil {
		return domain.City{}, err
	}
	return domain.City{
		CountryID: countryID,
		NameEn:    nameEn,
		NameTh:    nameTh,
		Slug:      slug,
		IsActive:  boolOr(d.IsActive, true),
	}, nil
}

type pageDataDTO struct {
	Kind     *string `json:"kind"`
	Slug     *string `json:"slug"`
	TitleEn  *string `json:"title_en"`
	TitleTh  *string `json:"title_th"`
	Excerpt  string  `json:"excerpt"`
	IsActive *bool   `json:"is_active"`
}

func (d pageDataDTO) toDomain() (domain.Page, error) {
	kind, err := require("page_data.kind", d.Kind)
	if err != nil {
		return domain.Page{}, err
	}
	slug, err := require("page_data.slug", d.Slug)
	if err != nil {
		return domain.Page{}, err
	}
	titleEn, err := require("page_data.title_en", d.TitleEn)
	if err != nil {
		return domain.Page{}, err
	}
	titleTh, err := require("page_data.title_th", d.TitleTh)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{
		Kind:     domain.PageKind(kind),
		Slug:     slug,
		TitleEn:  titleEn,
		TitleTh:  titleTh,
		Excerpt:  d.Excerpt,
		IsActive: boolOr(d.IsActive, true),
	}, nil
}

// ---- request envelopes ----

type createRoomRequest struct {
	RoomData      *roomDataDTO   `json:"room_data"`
	RoomOptionIDs []string       `json:"room_option_ids"`
	BasePrice     *weekPricesDTO `json:"base_price"`
	Seasons       []seasonDTO    `json:"season_base_prices"`
	Overrides     []overrideDTO  `json:"override_prices"`
	SeoData       []seoEntryDTO  `json:"seo_data"`
	Images        []imageDTO     `json:"images"`
}

func (req createRoomRequest) toInput() (app.CreateRoomInput, error) {
	if req.RoomData == nil {
		return app.CreateRoomInput{}, domain.NewValidationError("room_data", "field is required")
	}
	room, err := req.RoomData.toDomain()
	if err != nil {
		return app.CreateRoomInput{}, err
	}
	if req.BasePrice == nil {
		return app.CreateRoomInput{}, domain.NewValidationError("base_price", "field is required")
	}
	base, err := req.BasePrice.toDomain("base_price")
	if err != nil {
		return app.CreateRoomInput{}, err
	}
	seasons := make([]domain.SeasonPrice, 0, len(req.Seasons))
	for i, s := range req.Seasons {
		sp, err := s.toDomain(i)
		if err != nil {
			return app.CreateRoomInput{}, err
		}
		seasons = append(seasons, sp)
	}
	overrides := make([]domain.OverridePrice, 0, len(req.Overrides))
	for i, o := range req.Overrides {
		op, err := o.toDomain(i)
		if err != nil {
			return app.CreateRoomInput{}, err
		}
		overrides = append(overrides, op)
	}
	return app.CreateRoomInput{
		Room:      room,
		OptionIDs: req.RoomOptionIDs,
		Pricing:   app.PricingInput{Base: base, Seasons: seasons, Overrides: overrides},
		Seo:       seoEntries(req.SeoData),
		Images:    imageRecords(req.Images),
	}, nil
}

type createHotelRequest struct {
	HotelData      *hotelDataDTO `json:"hotel_data"`
	HotelOptionIDs []string      `json:"hotel_option_ids"`
	SeoData        []seoEntryDTO `json:"seo_data"`
	Images         []imageDTO    `json:"images"`
}

func (req createHotelRequest) toInput() (app.CreateHotelInput, error) {
	if req.HotelData == nil {
		return app.CreateHotelInput{}, domain.NewValidationError("hotel_data", "field is required")
	}
	hotel, err := req.HotelData.toDomain()
	if err != nil {
		return app.CreateHotelInput{}, err
	}
	return app.CreateHotelInput{
		Hotel:     hotel,
		OptionIDs: req.HotelOptionIDs,
		Seo:       seoEntries(req.SeoData),
		Images:    imageRecords(req.Images),
	}, nil
}

type createCountryRequest struct {
	CountryData *countryDataDTO `json:"country_data"`
	SeoData     []seoEntryDTO   `json:"seo_data"`
}

func (req createCountryRequest) toInput() (app.CreateCountryInput, error) {
	if req.CountryData == nil {
		return app.CreateCountryInput{}, domain.NewValidationError("country_data", "field is required")
	}
	country, err := req.CountryData.toDomain()
	if err != nil {
		return app.CreateCountryInput{}, err
	}
	return app.CreateCountryInput{Country: country, Seo: seoEntries(req.SeoData)}, nil
}

type createCityRequest struct {
	CityData *cityDataDTO  `json:"city_data"`
	SeoData  []seoEntryDTO `json:"seo_data"`
}

func (req createCityRequest) toInput() (app.CreateCityInput, error) {
	if req.CityData == nil {
		return app.CreateCityInput{}, domain.NewValidationError("city_data", "field is required")
	}
	city, err := req.CityData.toDomain()
	if err != nil {
		return app.CreateCityInput{}, err
	}
	return app.CreateCityInput{City: city, Seo: seoEntries(req.SeoData)}, nil
}

type createPageRequest struct {
	PageData *pageDataDTO  `json:"page_data"`
	SeoData  []seoEntryDTO `json:"seo_data"`
}

func (req createPageRequest) toInput() (app.CreatePageInput, error) {
	if req.PageData == nil {
		return app.CreatePageInput{}, domain.NewValidationError("page_data", "field is required")
	}
	page, err := req.PageData.toDomain()
	if err != nil {
		return app.CreatePageInput{}, err
	}
	return app.CreatePageInput{Page: page, Seo: seoEntries(req.SeoData)}, nil
}

type createSeoRequest struct {
	SeoData []seoEntryDTO `json:"seo_data"`
}

type createImagesRequest struct {
	ContentType string     `json:"content_type"`
	ContentID   string     `json:"content_id"`
	Images      []imageDTO `json:"images"`
}
