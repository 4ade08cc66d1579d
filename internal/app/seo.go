package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// SeoFailure is one rejected entry of a SEO fan-out.
type SeoFailure struct {
	Language string `json:"language"`
	Slug     string `json:"slug,omitempty"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

type SeoSummary struct {
	SeoCreated int `json:"seo_created"`
	SeoFailed  int `json:"seo_failed"`
}

type SeoBatchResult struct {
	Created []domain.SeoRecord `json:"seo_metadata"`
	Errors  []SeoFailure       `json:"seo_errors,omitempty"`
	Summary SeoSummary         `json:"summary"`
}

func (r SeoBatchResult) Partial() bool { return r.Summary.SeoFailed > 0 }

// SeoService is the standalone batch endpoint behind POST
// /api/seo-metadata. The embedded fan-outs of the room and hotel
// orchestrators share its per-entry attempt logic.
type SeoService struct {
	stores domain.Stores
	log    zerolog.Logger
}

func NewSeoService(st domain.Stores, log zerolog.Logger) *SeoService {
	return &SeoService{stores: st, log: log}
}

// CreateBatch writes each entry independently. All-failed is a terminal
// error and, since every attempt failed before or during its own
// insert, leaves nothing behind.
func (s *SeoService) CreateBatch(ctx context.Context, entries []domain.SeoRecord) (SeoBatchResult, error) {
	if len(entries) == 0 {
		return SeoBatchResult{}, domain.NewValidationError("seo_data", "at least one entry is required")
	}
	if err := checkDuplicateLanguages(entries); err != nil {
		return SeoBatchResult{}, err
	}

	ctx = context.WithoutCancel(ctx)
	res := runSeoBatch(ctx, s.stores.Seo, entries)
	out := SeoBatchResult{
		Created: res.Successful,
		Errors:  res.Failed,
		Summary: SeoSummary{SeoCreated: len(res.Successful), SeoFailed: len(res.Failed)},
	}
	if res.outcome() == batchTotalFailure {
		s.log.Warn().Int("entries", len(entries)).Msg("seo batch failed entirely")
		return SeoBatchResult{}, &domain.ValidationError{
			Code:    domain.CodeSeoBatchFailed,
			Message: "all seo entries failed",
			Details: res.Failed,
		}
	}
	s.log.Info().Int("created", out.Summary.SeoCreated).Int("failed", out.Summary.SeoFailed).Msg("seo batch done")
	return out, nil
}

// checkDuplicateLanguages rejects a batch where two entries claim the
// same language for the same page.
func checkDuplicateLanguages(entries []domain.SeoRecord) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := string(e.PageType) + "|" + e.PageID + "|" + strings.ToLower(e.Language)
		if _, dup := seen[key]; dup {
			return &domain.ValidationError{
				Code:    domain.CodeDuplicateLang,
				Field:   "language",
				Message: fmt.Sprintf("language %q appears more than once for the same page", e.Language),
			}
		}
		seen[key] = struct{}{}
	}
	return nil
}

// seoFanOut runs the embedded SEO step of an aggregate creation: bind
// every entry to the freshly created page, attempt each independently,
// push a compensator for whatever landed, and turn a wipeout into a
// terminal error for the orchestrator to roll back on.
func seoFanOut(ctx context.Context, store domain.SeoStore, comp *compensation, pageType domain.PageType, pageID string, entries []domain.SeoRecord) (batchResult[domain.SeoRecord, SeoFailure], error) {
	bound := make([]domain.SeoRecord, len(entries))
	for i, e := range entries {
		e.PageType = pageType
		e.PageID = pageID
		bound[i] = e
	}
	res := runSeoBatch(ctx, store, bound)
	if n := len(res.Successful); n > 0 {
		ids := make([]string, n)
		for i, rec := range res.Successful {
			ids[i] = rec.ID
		}
		comp.push("seo records", func(c context.Context) error {
			for _, id := range ids {
				if err := store.DeleteSeo(c, id); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if res.outcome() == batchTotalFailure {
		return res, &domain.ValidationError{
			Code:    domain.CodeSeoBatchFailed,
			Message: "all seo entries failed",
			Details: res.Failed,
		}
	}
	return res, nil
}

func runSeoBatch(ctx context.Context, store domain.SeoStore, entries []domain.SeoRecord) batchResult[domain.SeoRecord, SeoFailure] {
	return runBatch(entries,
		func(rec domain.SeoRecord) (domain.SeoRecord, error) {
			return attemptSeo(ctx, store, rec)
		},
		seoFailureFor,
	)
}

// attemptSeo validates and writes one record. Every error is isolated
// to this entry; the unique indexes on the table remain the final word
// against races.
func attemptSeo(ctx context.Context, store domain.SeoStore, rec domain.SeoRecord) (domain.SeoRecord, error) {
	if !rec.PageType.Valid() {
		return domain.SeoRecord{}, domain.NewValidationError("page_type", fmt.Sprintf("unknown page type %q", rec.PageType))
	}
	if rec.PageID == "" {
		return domain.SeoRecord{}, domain.NewValidationError("page_id", "page_id is required")
	}
	if strings.TrimSpace(rec.Language) == "" {
		return domain.SeoRecord{}, domain.NewValidationError("language", "language is required")
	}
	if strings.TrimSpace(rec.Title) == "" {
		return domain.SeoRecord{}, domain.NewValidationError("title", "title is required")
	}
	if !domain.ValidSlug(rec.Slug) {
		return domain.SeoRecord{}, &domain.ValidationError{
			Code:    domain.CodeInvalidSlug,
			Field:   "slug",
			Message: "slug must be lowercase alphanumerics separated by single hyphens",
		}
	}
	if domain.ReservedSlug(rec.Slug) {
		return domain.SeoRecord{}, &domain.ValidationError{
			Code:    domain.CodeReservedSlug,
			Field:   "slug",
			Message: fmt.Sprintf("slug %q is reserved", rec.Slug),
		}
	}

	taken, err := store.SeoSlugExists(ctx, rec.PageType, rec.Slug)
	if err != nil {
		return domain.SeoRecord{}, err
	}
	if taken {
		return domain.SeoRecord{}, &domain.ConflictError{
			Code:    domain.CodeSlugExists,
			Message: fmt.Sprintf("slug %q is already used by another %s", rec.Slug, rec.PageType),
		}
	}
	exists, err := store.SeoLanguageExists(ctx, rec.PageType, rec.PageID, rec.Language)
	if err != nil {
		return domain.SeoRecord{}, err
	}
	if exists {
		return domain.SeoRecord{}, &domain.ConflictError{
			Code:    domain.CodeDuplicateEntry,
			Message: fmt.Sprintf("seo metadata for language %q already exists on this page", rec.Language),
		}
	}

	rec.ID = uuid.NewString()
	rec.Language = strings.ToLower(rec.Language)
	rec.CreatedAt = time.Now().UTC()
	if err := store.InsertSeo(ctx, rec); err != nil {
		return domain.SeoRecord{}, err
	}
	return rec, nil
}

// seoFailureFor flattens any attempt error into the wire shape.
func seoFailureFor(rec domain.SeoRecord, err error) SeoFailure {
	f := SeoFailure{Language: rec.Language, Slug: rec.Slug}
	f.Code, f.Message = failureCode(err)
	return f
}

// failureCode maps a typed error onto a per-entry code and a message
// safe to return to clients.
func failureCode(err error) (string, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Code, ve.Message
	}
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		return ce.Code, ce.Message
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Code, nf.Message
	}
	if domain.ConstraintOfKind(err, domain.ConstraintUnique) {
		return domain.CodeDuplicateEntry, "record already exists"
	}
	return domain.CodeStoreError, "failed to save record"
}
