package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// ImageFailure is one rejected entry of an image fan-out.
type ImageFailure struct {
	URL     string `json:"url"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ImageSummary struct {
	ImagesCreated int `json:"images_created"`
	ImagesFailed  int `json:"images_failed"`
}

type ImageBatchResult struct {
	Created []domain.Image `json:"images"`
	Errors  []ImageFailure `json:"image_errors,omitempty"`
	Summary ImageSummary   `json:"summary"`
}

func (r ImageBatchResult) Partial() bool { return r.Summary.ImagesFailed > 0 }

// ImageService is the standalone batch endpoint behind POST
// /api/image-collection. The room and hotel orchestrators reuse its
// batch validation and fan-out.
type ImageService struct {
	stores domain.Stores
	log    zerolog.Logger
}

func NewImageService(st domain.Stores, log zerolog.Logger) *ImageService {
	return &ImageService{stores: st, log: log}
}

func (s *ImageService) CreateCollection(ctx context.Context, contentType domain.PageType, contentID string, images []domain.Image) (ImageBatchResult, error) {
	if !contentType.Valid() {
		return ImageBatchResult{}, &domain.ValidationError{
			Code:    domain.CodeInvalidContent,
			Field:   "content_type",
			Message: fmt.Sprintf("unknown content type %q", contentType),
		}
	}
	if contentID == "" {
		return ImageBatchResult{}, domain.NewValidationError("content_id", "content_id is required")
	}
	if err := validateImageBatch(images); err != nil {
		return ImageBatchResult{}, err
	}

	exists, err := ownerExists(ctx, s.stores, contentType, contentID)
	if err != nil {
		return ImageBatchResult{}, err
	}
	if !exists {
		return ImageBatchResult{}, &domain.NotFoundError{
			Code:    domain.CodeEntityNotFound,
			Message: fmt.Sprintf("%s %q does not exist", contentType, contentID),
		}
	}

	ctx = context.WithoutCancel(ctx)
	res, err := createImageBatch(ctx, s.stores.Images, contentType, contentID, images)
	if err != nil {
		return ImageBatchResult{}, err
	}
	out := ImageBatchResult{
		Created: res.Successful,
		Errors:  res.Failed,
		Summary: ImageSummary{ImagesCreated: len(res.Successful), ImagesFailed: len(res.Failed)},
	}
	if res.outcome() == batchTotalFailure {
		s.log.Warn().Str("content_type", string(contentType)).Str("content_id", contentID).Msg("image batch failed entirely")
		return ImageBatchResult{}, &domain.ValidationError{
			Code:    domain.CodeImageBatchFailed,
			Message: "all images failed",
			Details: res.Failed,
		}
	}
	s.log.Info().
		Str("content_type", string(contentType)).
		Str("content_id", contentID).
		Int("created", out.Summary.ImagesCreated).
		Int("failed", out.Summary.ImagesFailed).
		Msg("image batch done")
	return out, nil
}

// validateImageBatch enforces the batch invariants before anything is
// written: no duplicate URLs and exactly one cover.
func validateImageBatch(images []domain.Image) error {
	if len(images) == 0 {
		return domain.NewValidationError("images", "at least one image is required")
	}
	seen := make(map[string]struct{}, len(images))
	covers := 0
	for i, img := range images {
		url := strings.TrimSpace(img.URL)
		if url == "" {
			return domain.NewValidationError(fmt.Sprintf("images[%d].url", i), "url is required")
		}
		if _, dup := seen[url]; dup {
			return &domain.ValidationError{
				Code:    domain.CodeDuplicateImage,
				Field:   fmt.Sprintf("images[%d].url", i),
				Message: fmt.Sprintf("duplicate image url %q in batch", url),
			}
		}
		seen[url] = struct{}{}
		if img.IsCover {
			covers++
		}
	}
	switch {
	case covers == 0:
		return &domain.ValidationError{
			Code:    domain.CodeCoverRequired,
			Field:   "images",
			Message: "exactly one image must have is_cover set",
		}
	case covers > 1:
		return &domain.ValidationError{
			Code:    domain.CodeMultipleCovers,
			Field:   "images",
			Message: "only one image may have is_cover set",
		}
	}
	return nil
}

// createImageBatch clears any previous cover, then attempts each image
// independently. Callers validate the batch first.
func createImageBatch(ctx context.Context, store domain.ImageStore, contentType domain.PageType, contentID string, images []domain.Image) (batchResult[domain.Image, ImageFailure], error) {
	// The batch always carries exactly one cover, so an existing cover
	// must lose the flag before the new one lands.
	if err := store.ClearCover(ctx, contentType, contentID); err != nil {
		return batchResult[domain.Image, ImageFailure]{}, err
	}
	res := runBatch(images,
		func(img domain.Image) (domain.Image, error) {
			img.ContentType = contentType
			img.ContentID = contentID
			img.ID = uuid.NewString()
			img.CreatedAt = time.Now().UTC()
			if err := store.InsertImage(ctx, img); err != nil {
				return domain.Image{}, err
			}
			return img, nil
		},
		func(img domain.Image, err error) ImageFailure {
			f := ImageFailure{URL: img.URL}
			f.Code, f.Message = failureCode(err)
			return f
		},
	)
	return res, nil
}

// ownerExists resolves the polymorphic (content_type, content_id) pair
// against the owning table.
func ownerExists(ctx context.Context, st domain.Stores, contentType domain.PageType, id string) (bool, error) {
	switch contentType {
	case domain.PageTypeHotel:
		return st.Hotels.HotelExists(ctx, id)
	case domain.PageTypeRoom:
		return st.Rooms.RoomExists(ctx, id)
	case domain.PageTypeCity:
		return st.Geo.CityExists(ctx, id)
	case domain.PageTypeCountry:
		return st.Geo.CountryExists(ctx, id)
	case domain.PageTypePage, domain.PageTypeBlog:
		return st.Pages.PageExists(ctx, id)
	default:
		return false, nil
	}
}
