package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/adapters/observability"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/shared"
	mysqlrepo "github.com/boatbie14/funch-hotel-backend-v2/internal/storage/mysql"
)

type seedRoom struct {
	nameEn  string
	nameTh  string
	slug    string
	size    float64
	base    float64
	high    float64
	peak    float64
	options []string
}

type seedHotel struct {
	nameEn  string
	nameTh  string
	slug    string
	stars   int
	options []string
	rooms   []seedRoom
}

type seedCity struct {
	nameEn string
	nameTh string
	slug   string
	hotels []seedHotel
}

var optionCatalog = []domain.Option{
	{Scope: domain.ScopeHotel, NameEn: "Swimming Pool", NameTh: "สระว่ายน้ำ", Category: "facility"},
	{Scope: domain.ScopeHotel, NameEn: "Free Parking", NameTh: "ที่จอดรถฟรี", Category: "facility"},
	{Scope: domain.ScopeHotel, NameEn: "Spa", NameTh: "สปา", Category: "wellness"},
	{Scope: domain.ScopeRoom, NameEn: "Free WiFi", NameTh: "ไวไฟฟรี", Category: "connectivity"},
	{Scope: domain.ScopeRoom, NameEn: "Bathtub", NameTh: "อ่างอาบน้ำ", Category: "bathroom"},
	{Scope: domain.ScopeRoom, NameEn: "Balcony", NameTh: "ระเบียง", Category: "comfort"},
}

var seedCities = []seedCity{
	{
		nameEn: "Bangkok", nameTh: "กรุงเทพมหานคร", slug: "bangkok",
		hotels: []seedHotel{
			{
				nameEn: "Funch Riverside", nameTh: "ฟันช์ริมแม่น้ำ", slug: "funch-riverside", stars: 5,
				options: []string{"Swimming Pool", "Spa"},
				rooms: []seedRoom{
					{nameEn: "Deluxe King", nameTh: "ดีลักซ์คิง", slug: "deluxe-king", size: 32, base: 2400, high: 3200, peak: 4800, options: []string{"Free WiFi", "Bathtub"}},
					{nameEn: "Family Suite", nameTh: "แฟมิลีสวีท", slug: "family-suite", size: 54, base: 3900, high: 5100, peak: 7800, options: []string{"Free WiFi", "Balcony"}},
				},
			},
			{
				nameEn: "Funch City Center", nameTh: "ฟันช์ใจกลางเมือง", slug: "funch-city-center", stars: 4,
				options: []string{"Free Parking"},
				rooms: []seedRoom{
					{nameEn: "Standard Twin", nameTh: "สแตนดาร์ดทวิน", slug: "standard-twin", size: 24, base: 1500, high: 1900, peak: 3000, options: []string{"Free WiFi"}},
					{nameEn: "Corner Suite", nameTh: "คอร์เนอร์สวีท", slug: "corner-suite", size: 41, base: 2800, high: 3500, peak: 5600, options: []string{"Free WiFi", "Bathtub"}},
				},
			},
		},
	},
	{
		nameEn: "Phuket", nameTh: "ภูเก็ต", slug: "phuket",
		hotels: []seedHotel{
			{
				nameEn: "Funch Beachfront", nameTh: "ฟันช์ริมหาด", slug: "funch-beachfront", stars: 5,
				options: []string{"Swimming Pool", "Spa", "Free Parking"},
				rooms: []seedRoom{
					{nameEn: "Sea View Deluxe", nameTh: "ดีลักซ์วิวทะเล", slug: "sea-view-deluxe", size: 36, base: 3200, high: 4200, peak: 6400, options: []string{"Free WiFi", "Balcony"}},
					{nameEn: "Pool Villa", nameTh: "พูลวิลล่า", slug: "pool-villa", size: 78, base: 6500, high: 8400, peak: 13000, options: []string{"Free WiFi", "Bathtub", "Balcony"}},
				},
			},
			{
				nameEn: "Funch Hillside", nameTh: "ฟันช์เชิงเขา", slug: "funch-hillside", stars: 3,
				options: []string{"Free Parking"},
				rooms: []seedRoom{
					{nameEn: "Garden Bungalow", nameTh: "บังกะโลสวน", slug: "garden-bungalow", size: 28, base: 1200, high: 1500, peak: 2400, options: []string{"Free WiFi"}},
				},
			},
		},
	},
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	stores := domain.Stores{
		Geo:     repo,
		Hotels:  repo,
		Rooms:   repo,
		Options: repo,
		Prices:  repo,
		Seo:     repo,
		Images:  repo,
		Pages:   repo,
	}

	// seeding runs cacheless; the services skip invalidation on nil
	geo := app.NewGeoService(stores, nil, log.Logger)
	hotels := app.NewHotelService(stores, nil, log.Logger)
	rooms := app.NewRoomService(stores, nil, log.Logger)

	optionIDs := seedOptions(ctx, stores)
	countryID := ensureCountry(ctx, geo, stores)
	cityIDs := ensureCities(ctx, geo, stores, countryID)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, city := range seedCities {
		cityID := cityIDs[city.slug]
		if cityID == "" {
			continue
		}
		for _, h := range city.hotels {
			// acquire before launching the goroutine; release inside it
			if err := sem.Acquire(ctx, 1); err != nil {
				log.Fatal().Err(err).Msg("semaphore acquire failed")
			}
			wg.Add(1)
			go func(cityID, citySlug string, h seedHotel) {
				defer wg.Done()
				defer sem.Release(1)
				seedHotelTree(ctx, hotels, rooms, stores, optionIDs, cityID, citySlug, h)
			}(cityID, city.slug, h)
		}
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

// seedOptions inserts the option catalog and returns name -> id,
// resolving ids of rows that survived an earlier run.
func seedOptions(ctx context.Context, st domain.Stores) map[string]string {
	ids := make(map[string]string, len(optionCatalog))
	for _, opt := range optionCatalog {
		opt.ID = uuid.NewString()
		opt.IsActive = true
		err := st.Options.InsertOption(ctx, opt)
		switch {
		case err == nil:
			ids[opt.NameEn] = opt.ID
		case domain.ConstraintOfKind(err, domain.ConstraintUnique):
			// already seeded; resolved below
		default:
			log.Fatal().Err(err).Str("option", opt.NameEn).Msg("insert option failed")
		}
	}
	for _, scope := range []domain.OptionScope{domain.ScopeHotel, domain.ScopeRoom} {
		existing, err := st.Options.ListOptions(ctx, scope)
		if err != nil {
			log.Fatal().Err(err).Msg("list options failed")
		}
		for _, opt := range existing {
			ids[opt.NameEn] = opt.ID
		}
	}
	return ids
}

func ensureCountry(ctx context.Context, geo *app.GeoService, st domain.Stores) string {
	res, err := geo.CreateCountry(ctx, app.CreateCountryInput{
		Country: domain.Country{NameEn: "Thailand", NameTh: "ประเทศไทย", Slug: "thailand", IsActive: true},
		Seo: []domain.SeoRecord{
			{Language: "en", Title: "Hotels in Thailand", Slug: "hotels-in-thailand"},
		},
	})
	if err == nil {
		log.Info().Str("country", "thailand").Msg("country seeded")
		return res.Country.ID
	}
	if !isConflict(err) {
		log.Fatal().Err(err).Msg("seed country failed")
	}
	countries, err := st.Geo.ListCountries(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list countries failed")
	}
	for _, c := range countries {
		if c.Slug == "thailand" {
			return c.ID
		}
	}
	log.Fatal().Msg("country exists but not found by slug")
	return ""
}

func ensureCities(ctx context.Context, geo *app.GeoService, st domain.Stores, countryID string) map[string]string {
	ids := make(map[string]string, len(seedCities))
	for _, city := range seedCities {
		res, err := geo.CreateCity(ctx, app.CreateCityInput{
			City: domain.City{
				CountryID: countryID,
				NameEn:    city.nameEn,
				NameTh:    city.nameTh,
				Slug:      city.slug,
				IsActive:  true,
			},
			Seo: []domain.SeoRecord{
				{Language: "en", Title: "Hotels in " + city.nameEn, Slug: "hotels-in-" + city.slug},
			},
		})
		switch {
		case err == nil:
			ids[city.slug] = res.City.ID
			log.Info().Str("city", city.slug).Msg("city seeded")
		case isConflict(err):
			log.Info().Str("city", city.slug).Msg("city already seeded")
		default:
			log.Warn().Err(err).Str("city", city.slug).Msg("city seed failed")
		}
	}
	existing, err := st.Geo.ListCities(ctx, "thailand")
	if err != nil {
		log.Fatal().Err(err).Msg("list cities failed")
	}
	for _, c := range existing {
		ids[c.Slug] = c.ID
	}
	return ids
}

func seedHotelTree(ctx context.Context, hotels *app.HotelService, rooms *app.RoomService, st domain.Stores, optionIDs map[string]string, cityID, citySlug string, h seedHotel) {
	stars := h.stars
	res, err := hotels.CreateHotel(ctx, app.CreateHotelInput{
		Hotel: domain.Hotel{
			CityID:     cityID,
			NameEn:     h.nameEn,
			NameTh:     h.nameTh,
			Slug:       h.slug,
			StarRating: &stars,
			IsActive:   true,
		},
		OptionIDs: resolve(optionIDs, h.options),
		Seo: []domain.SeoRecord{
			{Language: "en", Title: h.nameEn, Slug: h.slug},
			{Language: "th", Title: h.nameTh, Slug: h.slug + "-th"},
		},
		Images: []domain.Image{
			{URL: "https://cdn.funch.dev/hotels/" + h.slug + "/cover.jpg", IsCover: true},
			{URL: "https://cdn.funch.dev/hotels/" + h.slug + "/lobby.jpg", SortOrder: 1},
		},
	})

	var hotelID string
	switch {
	case err == nil:
		hotelID = res.Hotel.ID
		log.Info().Str("hotel", h.slug).Bool("partial", res.Partial()).Msg("hotel seeded")
	case isConflict(err):
		hotelID = findHotelID(ctx, st, citySlug, h.slug)
		log.Info().Str("hotel", h.slug).Msg("hotel already seeded")
	default:
		log.Warn().Err(err).Str("hotel", h.slug).Msg("hotel seed failed")
		return
	}
	if hotelID == "" {
		return
	}

	for _, r := range h.rooms {
		seedRoomIn(ctx, rooms, optionIDs, hotelID, h.slug, r)
	}
}

func seedRoomIn(ctx context.Context, rooms *app.RoomService, optionIDs map[string]string, hotelID, hotelSlug string, r seedRoom) {
	size := r.size
	res, err := rooms.CreateRoom(ctx, app.CreateRoomInput{
		Room: domain.Room{
			HotelID:   hotelID,
			NameEn:    r.nameEn,
			NameTh:    r.nameTh,
			MaxAdults: 2,
			RoomSize:  &size,
			IsActive:  true,
		},
		OptionIDs: resolve(optionIDs, r.options),
		Pricing: app.PricingInput{
			Base: week(r.base),
			Seasons: []domain.SeasonPrice{{
				Name:       "High Season",
				DateRange:  domain.DateRange{Start: date("2026-11-01"), End: date("2027-03-31")},
				WeekPrices: week(r.high),
				IsActive:   true,
			}},
			Overrides: []domain.OverridePrice{{
				Name:      "New Year",
				DateRange: domain.DateRange{Start: date("2026-12-29"), End: date("2027-01-02")},
				Price:     r.peak,
				IsActive:  true,
			}},
		},
		Seo: []domain.SeoRecord{
			{Language: "en", Title: r.nameEn + " at " + hotelSlug, Slug: r.slug + "-" + hotelSlug},
		},
		Images: []domain.Image{
			{URL: "https://cdn.funch.dev/hotels/" + hotelSlug + "/" + r.slug + ".jpg", IsCover: true},
		},
	})
	switch {
	case err == nil:
		log.Info().Str("room", r.slug).Str("hotel", hotelSlug).Bool("partial", res.Partial()).Msg("room seeded")
	case isConflict(err):
		log.Info().Str("room", r.slug).Str("hotel", hotelSlug).Msg("room already seeded")
	default:
		log.Warn().Err(err).Str("room", r.slug).Str("hotel", hotelSlug).Msg("room seed failed")
	}
}

func findHotelID(ctx context.Context, st domain.Stores, citySlug, slug string) string {
	hotels, _, err := st.Hotels.ListHotels(ctx, domain.HotelsQuery{CitySlug: citySlug, Limit: 100})
	if err != nil {
		log.Warn().Err(err).Str("city", citySlug).Msg("list hotels failed")
		return ""
	}
	for _, h := range hotels {
		if h.Slug == slug {
			return h.ID
		}
	}
	return ""
}

func week(price float64) domain.WeekPrices {
	return domain.WeekPrices{Sun: price, Mon: price, Tue: price, Wed: price, Thu: price, Fri: price, Sat: price}
}

func date(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		log.Fatal().Err(err).Str("date", s).Msg("bad seed date")
	}
	return d
}

func resolve(ids map[string]string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if id, ok := ids[n]; ok {
			out = append(out, id)
		}
	}
	return out
}

func isConflict(err error) bool {
	var ce *domain.ConflictError
	return errors.As(err, &ce)
}
