package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// CreateRoomInput is the aggregate payload of POST /api/room after
// boundary decoding.
type CreateRoomInput struct {
	Room      domain.Room
	OptionIDs []string
	Pricing   PricingInput
	Seo       []domain.SeoRecord
	Images    []domain.Image
}

type RoomSummary struct {
	OptionsLinked         int `json:"options_linked"`
	SeasonPricesCreated   int `json:"season_prices_created"`
	OverridePricesCreated int `json:"override_prices_created"`
	SeoCreated            int `json:"seo_created"`
	SeoFailed             int `json:"seo_failed"`
	ImagesCreated         int `json:"images_created"`
	ImagesFailed          int `json:"images_failed"`
}

type RoomResult struct {
	Room        domain.Room            `json:"room"`
	BasePrice   domain.BasePrice       `json:"base_price"`
	OptionIDs   []string               `json:"room_option_ids"`
	Seasons     []domain.SeasonPrice   `json:"season_base_prices,omitempty"`
	Overrides   []domain.OverridePrice `json:"override_prices,omitempty"`
	Seo         []domain.SeoRecord     `json:"seo_metadata,omitempty"`
	SeoErrors   []SeoFailure           `json:"seo_errors,omitempty"`
	Images      []domain.Image         `json:"images,omitempty"`
	ImageErrors []ImageFailure         `json:"image_errors,omitempty"`
	Summary     RoomSummary            `json:"summary"`
}

// Partial reports whether any optional sub-collection failed while the
// room itself stands. Drives the 201 vs 207 split.
func (r RoomResult) Partial() bool {
	return r.Summary.SeoFailed > 0 || r.Summary.ImagesFailed > 0
}

// RoomService creates rooms with their dependent collections and backs
// them out when a mandatory step fails. MySQL offers the caller no
// cross-table transaction here, so consistency comes from compensating
// deletes.
type RoomService struct {
	stores domain.Stores
	cache  domain.Cache
	log    zerolog.Logger
}

func NewRoomService(st domain.Stores, cache domain.Cache, log zerolog.Logger) *RoomService {
	return &RoomService{stores: st, cache: cache, log: log}
}

// CreateRoom runs the aggregate creation: validate everything that can
// be validated without writing, persist the room, fan out the dependent
// writes, and compensate in reverse order on terminal failure.
func (s *RoomService) CreateRoom(ctx context.Context, in CreateRoomInput) (RoomResult, error) {
	log := s.log.With().Str("hotel_id", in.Room.HotelID).Str("name", in.Room.NameEn).Logger()
	log.Debug().Str("phase", "validating").Msg("create room")

	hotel, err := s.stores.Hotels.GetHotel(ctx, in.Room.HotelID)
	if err != nil {
		if domain.IsNotFound(err) {
			return RoomResult{}, &domain.NotFoundError{
				Code:    domain.CodeHotelNotFound,
				Message: fmt.Sprintf("hotel %q does not exist", in.Room.HotelID),
			}
		}
		return RoomResult{}, err
	}

	taken, err := s.stores.Rooms.RoomNameExists(ctx, in.Room.HotelID, in.Room.NameEn, in.Room.NameTh)
	if err != nil {
		return RoomResult{}, err
	}
	if taken {
		return RoomResult{}, roomExists()
	}

	if len(in.OptionIDs) > 0 {
		missing, err := s.stores.Options.MissingOptionIDs(ctx, domain.ScopeRoom, in.OptionIDs)
		if err != nil {
			return RoomResult{}, err
		}
		if len(missing) > 0 {
			return RoomResult{}, &domain.ValidationError{
				Code:    domain.CodeInvalidOptionID,
				Field:   "room_option_ids",
				Message: "one or more option ids do not exist",
				Details: missing,
			}
		}
	}

	// A new room has no persisted tiers to collide with.
	if err := ValidatePricing(in.Pricing, nil, nil); err != nil {
		return RoomResult{}, err
	}
	if len(in.Seo) > 0 {
		if err := checkDuplicateLanguages(in.Seo); err != nil {
			return RoomResult{}, err
		}
	}
	if len(in.Images) > 0 {
		if err := validateImageBatch(in.Images); err != nil {
			return RoomResult{}, err
		}
	}

	// Write phase. From here on caller cancellation must not interrupt
	// writes or the compensation that cleans them up.
	ctx = context.WithoutCancel(ctx)
	var comp compensation

	fail := func(cause error) (RoomResult, error) {
		log.Warn().Err(cause).Str("phase", "rolled_back").Msg("create room failed, rolling back")
		comp.run(ctx, log)
		return RoomResult{}, cause
	}

	now := time.Now().UTC()
	room := in.Room
	room.ID = uuid.NewString()
	room.CreatedAt, room.UpdatedAt = now, now
	if err := s.stores.Rooms.InsertRoom(ctx, room); err != nil {
		// The unique index is the real duplicate guard; the pre-check
		// above only buys a cleaner early answer.
		if domain.ConstraintOfKind(err, domain.ConstraintUnique) {
			return RoomResult{}, roomExists()
		}
		if domain.ConstraintOfKind(err, domain.ConstraintForeignKey) {
			return RoomResult{}, &domain.NotFoundError{
				Code:    domain.CodeHotelNotFound,
				Message: fmt.Sprintf("hotel %q does not exist", in.Room.HotelID),
			}
		}
		return RoomResult{}, err
	}
	comp.push("room", func(c context.Context) error {
		return s.stores.Rooms.DeleteRoom(c, room.ID)
	})
	log = log.With().Str("room_id", room.ID).Logger()
	log.Debug().Str("phase", "primary_written").Msg("room row committed")

	if len(in.OptionIDs) > 0 {
		if err := s.stores.Options.InsertOptionLinks(ctx, domain.ScopeRoom, room.ID, in.OptionIDs); err != nil {
			return fail(err)
		}
		comp.push("option links", func(c context.Context) error {
			return s.stores.Options.DeleteOptionLinks(c, domain.ScopeRoom, room.ID)
		})
	}

	base := domain.BasePrice{ID: uuid.NewString(), RoomID: room.ID, WeekPrices: in.Pricing.Base}
	if err := s.stores.Prices.InsertBasePrice(ctx, base); err != nil {
		return fail(err)
	}
	comp.push("base price", func(c context.Context) error {
		return s.stores.Prices.DeleteBasePrice(c, room.ID)
	})

	seasons := make([]domain.SeasonPrice, 0, len(in.Pricing.Seasons))
	pushedSeasons := false
	for _, sp := range in.Pricing.Seasons {
		sp.ID = uuid.NewString()
		sp.RoomID = room.ID
		if err := s.stores.Prices.InsertSeasonPrice(ctx, sp); err != nil {
			return fail(err)
		}
		if !pushedSeasons {
			comp.push("season prices", func(c context.Context) error {
				return s.stores.Prices.DeleteSeasonPrices(c, room.ID)
			})
			pushedSeasons = true
		}
		seasons = append(seasons, sp)
	}

	overrides := make([]domain.OverridePrice, 0, len(in.Pricing.Overrides))
	pushedOverrides := false
	for _, op := range in.Pricing.Overrides {
		op.ID = uuid.NewString()
		op.RoomID = room.ID
		if err := s.stores.Prices.InsertOverridePrice(ctx, op); err != nil {
			return fail(err)
		}
		if !pushedOverrides {
			comp.push("override prices", func(c context.Context) error {
				return s.stores.Prices.DeleteOverridePrices(c, room.ID)
			})
			pushedOverrides = true
		}
		overrides = append(overrides, op)
	}
	log.Debug().Str("phase", "dependents_written").Msg("mandatory dependents committed")

	res := RoomResult{
		Room:      room,
		BasePrice: base,
		OptionIDs: in.OptionIDs,
		Seasons:   seasons,
		Overrides: overrides,
		Summary: RoomSummary{
			OptionsLinked:         len(in.OptionIDs),
			SeasonPricesCreated:   len(seasons),
			OverridePricesCreated: len(overrides),
		},
	}
	if res.OptionIDs == nil {
		res.OptionIDs = []string{}
	}

	// SEO entries are attempted independently; only a wipeout is fatal.
	if len(in.Seo) > 0 {
		seoRes, err := seoFanOut(ctx, s.stores.Seo, &comp, domain.PageTypeRoom, room.ID, in.Seo)
		if err != nil {
			return fail(err)
		}
		res.Seo = seoRes.Successful
		res.SeoErrors = seoRes.Failed
		res.Summary.SeoCreated = len(seoRes.Successful)
		res.Summary.SeoFailed = len(seoRes.Failed)
	}

	// Images are the least critical collection: even a total failure
	// leaves the room standing.
	if len(in.Images) > 0 {
		imgRes, err := createImageBatch(ctx, s.stores.Images, domain.PageTypeRoom, room.ID, in.Images)
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
		Msg("room created")

	s.invalidateRoomLists(ctx, hotel.Slug)
	return res, nil
}

func roomExists() error {
	return &domain.ConflictError{
		Code:    domain.CodeRoomExists,
		Message: "a room with this name already exists in this hotel",
	}
}

// invalidateRoomLists drops the list variants a fresh room is most
// likely to appear in; everything else ages out by TTL.
func (s *RoomService) invalidateRoomLists(ctx context.Context, hotelSlug string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, roomListKey("", defaultLimit, 0))
	_ = s.cache.Del(ctx, roomListKey(hotelSlug, defaultLimit, 0))
}
