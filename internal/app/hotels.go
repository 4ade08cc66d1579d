package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// CreateHotelInput is the aggregate payload of POST /api/hotel. Hotels
// carry no pricing; rooms own that.
type CreateHotelInput struct {
	Hotel     domain.Hotel
	OptionIDs []string
	Seo       []domain.SeoRecord
	Images    []domain.Image
}

type HotelSummary struct {
	OptionsLinked int `json:"options_linked"`
	SeoCreated    int `json:"seo_created"`
	SeoFailed     int `json:"seo_failed"`
	ImagesCreated int `json:"images_created"`
	ImagesFailed  int `json:"images_failed"`
}

type HotelResult struct {
	Hotel       domain.Hotel       `json:"hotel"`
	OptionIDs   []string           `json:"hotel_option_ids"`
	Seo         []domain.SeoRecord `json:"seo_metadata,omitempty"`
	SeoErrors   []SeoFailure       `json:"seo_errors,omitempty"`
	Images      []domain.Image     `json:"images,omitempty"`
	ImageErrors []ImageFailure     `json:"image_errors,omitempty"`
	Summary     HotelSummary       `json:"summary"`
}

func (r HotelResult) Partial() bool {
	return r.Summary.SeoFailed > 0 || r.Summary.ImagesFailed > 0
}

type HotelService struct {
	stores domain.Stores
	cache  domain.Cache
	log    zerolog.Logger
}

func NewHotelService(st domain.Stores, cache domain.Cache, log zerolog.Logger) *HotelService {
	return &HotelService{stores: st, cache: cache, log: log}
}

func (s *HotelService) CreateHotel(ctx context.Context, in CreateHotelInput) (HotelResult, error) {
	log := s.log.With().Str("city_id", in.Hotel.CityID).Str("name", in.Hotel.NameEn).Logger()
	log.Debug().Str("phase", "validating").Msg("create hotel")

	city, err := s.stores.Geo.GetCity(ctx, in.Hotel.CityID)
	if err != nil {
		if domain.IsNotFound(err) {
			return HotelResult{}, &domain.NotFoundError{
				Code:    domain.CodeCityNotFound,
				Message: fmt.Sprintf("city %q does not exist", in.Hotel.CityID),
			}
		}
		return HotelResult{}, err
	}

	taken, err := s.stores.Hotels.HotelNameExists(ctx, in.Hotel.CityID, in.Hotel.NameEn, in.Hotel.NameTh)
	if err != nil {
		return HotelResult{}, err
	}
	if taken {
		return HotelResult{}, hotelExists()
	}

	if err := validateEntitySlug(in.Hotel.Slug); err != nil {
		return HotelResult{}, err
	}
	slugTaken, err := s.stores.Hotels.HotelSlugExists(ctx, in.Hotel.Slug)
	if err != nil {
		return HotelResult{}, err
	}
	if slugTaken {
		return HotelResult{}, slugExists(in.Hotel.Slug)
	}

	if len(in.OptionIDs) > 0 {
		missing, err := s.stores.Options.MissingOptionIDs(ctx, domain.ScopeHotel, in.OptionIDs)
		if err != nil {
			return HotelResult{}, err
		}
		if len(missing) > 0 {
			return HotelResult{}, &domain.ValidationError{
				Code:    domain.CodeInvalidOptionID,
				Field:   "hotel_option_ids",
				Message: "one or more option ids do not exist",
				Details: missing,
			}
		}
	}

	if in.Hotel.StarRating != nil {
		if r := *in.Hotel.StarRating; r < 1 || r > 5 {
			return HotelResult{}, domain.NewValidationError("star_rating", "star_rating must be between 1 and 5")
		}
	}
	if len(in.Seo) > 0 {
		if err := checkDuplicateLanguages(in.Seo); err != nil {
			return HotelResult{}, err
		}
	}
	if len(in.Images) > 0 {
		if err := validateImageBatch(in.Images); err != nil {
			return HotelResult{}, err
		}
	}

	ctx = context.WithoutCancel(ctx)
	var comp compensation

	fail := func(cause error) (HotelResult, error) {
		log.Warn().Err(cause).Str("phase", "rolled_back").Msg("create hotel failed, rolling back")
		comp.run(ctx, log)
		return HotelResult{}, cause
	}

	now := time.Now().UTC()
	hotel := in.Hotel
	hotel.ID = uuid.NewString()
	hotel.CreatedAt, hotel.UpdatedAt = now, now
	if err := s.stores.Hotels.InsertHotel(ctx, hotel); err != nil {
		if domain.ConstraintOfKind(err, domain.ConstraintUnique) {
			return HotelResult{}, hotelExists()
		}
		if domain.ConstraintOfKind(err, domain.ConstraintForeignKey) {
			return HotelResult{}, &domain.NotFoundError{
				Code:    domain.CodeCityNotFound,
				Message: fmt.Sprintf("city %q does not exist", in.Hotel.CityID),
			}
		}
		return HotelResult{}, err
	}
	comp.push("hotel", func(c context.Context) error {
		return s.stores.Hotels.DeleteHotel(c, hotel.ID)
	})
	log = log.With().Str("hotel_id", hotel.ID).Logger()
	log.Debug().Str("phase", "primary_written").Msg("hotel row committed")

	if len(in.OptionIDs) > 0 {
		if err := s.stores.Options.InsertOptionLinks(ctx, domain.ScopeHotel, hotel.ID, in.OptionIDs); err != nil {
			return fail(err)
		}
		comp.push("option links", func(c context.Context) error {
			return s.stores.Options.DeleteOptionLinks(c, domain.ScopeHotel, hotel.ID)
		})
	}

	res := HotelResult{
		Hotel:     hotel,
		OptionIDs: in.OptionIDs,
		Summary:   HotelSummary{OptionsLinked: len(in.OptionIDs)},
	}
	if res.OptionIDs == nil {
		res.OptionIDs = []string{}
	}

	if len(in.Seo) > 0 {
		seoRes, err := seoFanOut(ctx, s.stores.Seo, &comp, domain.PageTypeHotel, hotel.ID, in.Seo)
		if err != nil {
			return fail(err)
		}
		res.Seo = seoRes.Successful
		res.SeoErrors = seoRes.Failed
		res.Summary.SeoCreated = len(seoRes.Successful)
		res.Summary.SeoFailed = len(seoRes.Failed)
	}

	if len(in.Images) > 0 {
		imgRes, err := createImageBatch(ctx, s.stores.Images, domain.PageTypeHotel, hotel.ID, in.Images)
		if err != nil {
			log.Error().Err(err).Msg("image batch failed")
			for _, img := range in.Images {
				f := ImageFailure{URL: img.URL}
				f.Code, f.Message = failureCode(err)
				res.ImageErrors = append(res.ImageErrors, f)
			}
		} else {
			res.Images = imgRes.Successful
			res.ImageErrors = imgRes.Failed
		}
		res.Summary.ImagesCreated = len(res.Images)
		res.Summary.ImagesFailed = len(res.ImageErrors)
	}

	phase := "succeeded"
	if res.Partial() {
		phase = "partial"
	}
	log.Info().
		Str("phase", phase).
		Int("seo_failed", res.Summary.SeoFailed).
		Int("images_failed", res.Summary.ImagesFailed).
		Msg("hotel created")

	s.invalidateHotelLists(ctx, city.Slug)
	return res, nil
}

func hotelExists() error {
	return &domain.ConflictError{
		Code:    domain.CodeHotelExists,
		Message: "a hotel with this name already exists in this city",
	}
}

func slugExists(slug string) error {
	return &domain.ConflictError{
		Code:    domain.CodeSlugExists,
		Message: fmt.Sprintf("slug %q is already taken", slug),
	}
}

// validateEntitySlug covers slugs owned by entity rows (hotels, geo,
// pages). SEO slugs go through attemptSeo instead.
func validateEntitySlug(slug string) error {
	if !domain.ValidSlug(slug) {
		return &domain.ValidationError{
			Code:    domain.CodeInvalidSlug,
			Field:   "slug",
			Message: "slug must be lowercase alphanumerics separated by single hyphens",
		}
	}
	if domain.ReservedSlug(slug) {
		return &domain.ValidationError{
			Code:    domain.CodeReservedSlug,
			Field:   "slug",
			Message: fmt.Sprintf("slug %q is reserved", slug),
		}
	}
	return nil
}

func (s *HotelService) invalidateHotelLists(ctx context.Context, citySlug string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, hotelListKey("", defaultLimit, 0))
	_ = s.cache.Del(ctx, hotelListKey(citySlug, defaultLimit, 0))
}
