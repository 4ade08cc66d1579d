package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// PageService creates static pages and blog posts, the two content
// kinds SEO records and image galleries can hang off besides inventory
// entities.
type PageService struct {
	stores domain.Stores
	cache  domain.Cache
	log    zerolog.Logger
}

func NewPageService(st domain.Stores, cache domain.Cache, log zerolog.Logger) *PageService {
	return &PageService{stores: st, cache: cache, log: log}
}

type CreatePageInput struct {
	Page domain.Page
	Seo  []domain.SeoRecord
}

type PageResult struct {
	Page      domain.Page        `json:"page"`
	Seo       []domain.SeoRecord `json:"seo_metadata,omitempty"`
	SeoErrors []SeoFailure       `json:"seo_errors,omitempty"`
	Summary   SeoSummary         `json:"summary"`
}

func (r PageResult) Partial() bool { return r.Summary.SeoFailed > 0 }

func (s *PageService) CreatePage(ctx context.Context, in CreatePageInput) (PageResult, error) {
	if !in.Page.Kind.Valid() {
		return PageResult{}, domain.NewValidationError("kind", fmt.Sprintf("kind must be %q or %q", domain.KindPage, domain.KindBlog))
	}
	taken, err := s.stores.Pages.PageNameExists(ctx, in.Page.Kind, in.Page.TitleEn, in.Page.TitleTh)
	if err != nil {
		return PageResult{}, err
	}
	if taken {
		return PageResult{}, &domain.ConflictError{
			Code:    domain.CodePageExists,
			Message: fmt.Sprintf("a %s with this title already exists", in.Page.Kind),
		}
	}
	if err := validateEntitySlug(in.Page.Slug); err != nil {
		return PageResult{}, err
	}
	slugTaken, err := s.stores.Pages.PageSlugExists(ctx, in.Page.Kind, in.Page.Slug)
	if err != nil {
		return PageResult{}, err
	}
	if slugTaken {
		return PageResult{}, slugExists(in.Page.Slug)
	}
	if len(in.Seo) > 0 {
		if err := checkDuplicateLanguages(in.Seo); err != nil {
			return PageResult{}, err
		}
	}

	ctx = context.WithoutCancel(ctx)
	var comp compensation

	page := in.Page
	page.ID = uuid.NewString()
	page.CreatedAt = time.Now().UTC()
	if err := s.stores.Pages.InsertPage(ctx, page); err != nil {
		if domain.ConstraintOfKind(err, domain.ConstraintUnique) {
			return PageResult{}, &domain.ConflictError{
				Code:    domain.CodePageExists,
				Message: fmt.Sprintf("a %s with this title or slug already exists", page.Kind),
			}
		}
		return PageResult{}, err
	}
	comp.push("page", func(c context.Context) error {
		return s.stores.Pages.DeletePage(c, page.ID)
	})

	// SEO records for a page attach under its own kind, so blogs stay
	// addressable separately from static pages.
	pageType := domain.PageTypePage
	if page.Kind == domain.KindBlog {
		pageType = domain.PageTypeBlog
	}

	res := PageResult{Page: page}
	if len(in.Seo) > 0 {
		seoRes, err := seoFanOut(ctx, s.stores.Seo, &comp, pageType, page.ID, in.Seo)
		if err != nil {
			s.log.Warn().Err(err).Str("page_id", page.ID).Msg("create page failed, rolling back")
			comp.run(ctx, s.log)
			return PageResult{}, err
		}
		res.Seo = seoRes.Successful
		res.SeoErrors = seoRes.Failed
		res.Summary = SeoSummary{SeoCreated: len(seoRes.Successful), SeoFailed: len(seoRes.Failed)}
	}

	s.log.Info().Str("page_id", page.ID).Str("kind", string(page.Kind)).Str("slug", page.Slug).Msg("page created")
	if s.cache != nil {
		_ = s.cache.Del(ctx, pageListKey(""))
		_ = s.cache.Del(ctx, pageListKey(string(page.Kind)))
	}
	return res, nil
}
