package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// GeoService creates countries and cities. Same orchestration shape as
// rooms and hotels, just with SEO as the only dependent collection.
type GeoService struct {
	stores domain.Stores
	cache  domain.Cache
	log    zerolog.Logger
}

func NewGeoService(st domain.Stores, cache domain.Cache, log zerolog.Logger) *GeoService {
	return &GeoService{stores: st, cache: cache, log: log}
}

type CreateCountryInput struct {
	Country domain.Country
	Seo     []domain.SeoRecord
}

type CountryResult struct {
	Country   domain.Country     `json:"country"`
	Seo       []domain.SeoRecord `json:"seo_metadata,omitempty"`
	SeoErrors []SeoFailure       `json:"seo_errors,omitempty"`
	Summary   SeoSummary         `json:"summary"`
}

func (r CountryResult) Partial() bool { return r.Summary.SeoFailed > 0 }

func (s *GeoService) CreateCountry(ctx context.Context, in CreateCountryInput) (CountryResult, error) {
	taken, err := s.stores.Geo.CountryNameExists(ctx, in.Country.NameEn, in.Country.NameTh)
	if err != nil {
		return CountryResult{}, err
	}
	if taken {
		return CountryResult{}, &domain.ConflictError{
			Code:    domain.CodeCountryExists,
			Message: "a country with this name already exists",
		}
	}
	if err := validateEntitySlug(in.Country.Slug); err != nil {
		return CountryResult{}, err
	}
	slugTaken, err := s.stores.Geo.CountrySlugExists(ctx, in.Country.Slug)
	if err != nil {
		return CountryResult{}, err
	}
	if slugTaken {
		return CountryResult{}, slugExists(in.Country.Slug)
	}
	if len(in.Seo) > 0 {
		if err := checkDuplicateLanguages(in.Seo); err != nil {
			return CountryResult{}, err
		}
	}

	ctx = context.WithoutCancel(ctx)
	var comp compensation

	country := in.Country
	country.ID = uuid.NewString()
	country.CreatedAt = time.Now().UTC()
	if err := s.stores.Geo.InsertCountry(ctx, country); err != nil {
		if domain.ConstraintOfKind(err, domain.ConstraintUnique) {
			return CountryResult{}, &domain.ConflictError{
				Code:    domain.CodeCountryExists,
				Message: "a country with this name or slug already exists",
			}
		}
		return CountryResult{}, err
	}
	comp.push("country", func(c context.Context) error {
		return s.stores.Geo.DeleteCountry(c, country.ID)
	})

	res := CountryResult{Country: country}
	if len(in.Seo) > 0 {
		seoRes, err := seoFanOut(ctx, s.stores.Seo, &comp, domain.PageTypeCountry, country.ID, in.Seo)
		if err != nil {
			s.log.Warn().Err(err).Str("country_id", country.ID).Msg("create country failed, rolling back")
			comp.run(ctx, s.log)
			return CountryResult{}, err
		}
		res.Seo = seoRes.Successful
		res.SeoErrors = seoRes.Failed
		res.Summary = SeoSummary{SeoCreated: len(seoRes.Successful), SeoFailed: len(seoRes.Failed)}
	}

	s.log.Info().Str("country_id", country.ID).Str("slug", country.Slug).Msg("country created")
	if s.cache != nil {
		_ = s.cache.Del(ctx, countriesKey)
	}
	return res, nil
}

type CreateCityInput struct {
	City domain.City
	Seo  []domain.SeoRecord
}

type CityResult struct {
	City      domain.City        `json:"city"`
	Seo       []domain.SeoRecord `json:"seo_metadata,omitempty"`
	SeoErrors []SeoFailure       `json:"seo_errors,omitempty"`
	Summary   SeoSummary         `json:"summary"`
}

func (r CityResult) Partial() bool { return r.Summary.SeoFailed > 0 }

func (s *GeoService) CreateCity(ctx context.Context, in CreateCityInput) (CityResult, error) {
	country, err := s.stores.Geo.GetCountry(ctx, in.City.CountryID)
	if err != nil {
		if domain.IsNotFound(err) {
			return CityResult{}, &domain.NotFoundError{
				Code:    domain.CodeCountryNotFound,
				Message: fmt.Sprintf("country %q does not exist", in.City.CountryID),
			}
		}
		return CityResult{}, err
	}
	taken, err := s.stores.Geo.CityNameExists(ctx, in.City.CountryID, in.City.NameEn, in.City.NameTh)
	if err != nil {
		return CityResult{}, err
	}
	if taken {
		return CityResult{}, &domain.ConflictError{
			Code:    domain.CodeCityExists,
			Message: "a city with this name already exists in this country",
		}
	}
	if err := validateEntitySlug(in.City.Slug); err != nil {
		return CityResult{}, err
	}
	slugTaken, err := s.stores.Geo.CitySlugExists(ctx, in.City.Slug)
	if err != nil {
		return CityResult{}, err
	}
	if slugTaken {
		return CityResult{}, slugExists(in.City.Slug)
	}
	if len(in.Seo) > 0 {
		if err := checkDuplicateLanguages(in.Seo); err != nil {
			return CityResult{}, err
		}
	}

	ctx = context.WithoutCancel(ctx)
	var comp compensation

	city := in.City
	city.ID = uuid.NewString()
	city.CreatedAt = time.Now().UTC()
	if err := s.stores.Geo.InsertCity(ctx, city); err != nil {
		if domain.ConstraintOfKind(err, domain.ConstraintUnique) {
			return CityResult{}, &domain.ConflictError{
				Code:    domain.CodeCityExists,
				Message: "a city with this name or slug already exists",
			}
		}
		if domain.ConstraintOfKind(err, domain.ConstraintForeignKey) {
			return CityResult{}, &domain.NotFoundError{
				Code:    domain.CodeCountryNotFound,
				Message: fmt.Sprintf("country %q does not exist", in.City.CountryID),
			}
		}
		return CityResult{}, err
	}
	comp.push("city", func(c context.Context) error {
		return s.stores.Geo.DeleteCity(c, city.ID)
	})

	res := CityResult{City: city}
	if len(in.Seo) > 0 {
		seoRes, err := seoFanOut(ctx, s.stores.Seo, &comp, domain.PageTypeCity, city.ID, in.Seo)
		if err != nil {
			s.log.Warn().Err(err).Str("city_id", city.ID).Msg("create city failed, rolling back")
			comp.run(ctx, s.log)
			return CityResult{}, err
		}
		res.Seo = seoRes.Successful
		res.SeoErrors = seoRes.Failed
		res.Summary = SeoSummary{SeoCreated: len(seoRes.Successful), SeoFailed: len(seoRes.Failed)}
	}

	s.log.Info().Str("city_id", city.ID).Str("slug", city.Slug).Msg("city created")
	if s.cache != nil {
		_ = s.cache.Del(ctx, cityListKey(""))
		_ = s.cache.Del(ctx, cityListKey(country.Slug))
	}
	return res, nil
}
