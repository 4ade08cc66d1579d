package mysql

import (
	"context"
	"database/sql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertSeo(ctx context.Context, rec domain.SeoRecord) error {
	_, err := r.db.ExecContext(ctx, insertSeoSQL,
		rec.ID, rec.PageType, rec.PageID, rec.Language, rec.Title, rec.Description,
		rec.Keywords, rec.Slug, rec.OgTitle, rec.OgDescription, rec.OgImage, rec.CreatedAt)
	return classify("insert seo", err)
}

func (r *Repo) DeleteSeo(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM seo_metadata WHERE id = ?`, id)
	return classify("delete seo", err)
}

func (r *Repo) DeleteSeoByPage(ctx context.Context, pageType domain.PageType, pageID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM seo_metadata WHERE page_type = ? AND page_id = ?`, pageType, pageID)
	return classify("delete seo by page", err)
}

func (r *Repo) SeoSlugExists(ctx context.Context, pageType domain.PageType, slug string) (bool, error) {
	return r.exists(ctx, "seo slug exists",
		`SELECT 1 FROM seo_metadata WHERE page_type = ? AND slug = ? LIMIT 1`, pageType, slug)
}

func (r *Repo) SeoLanguageExists(ctx context.Context, pageType domain.PageType, pageID, language string) (bool, error) {
	return r.exists(ctx, "seo language exists",
		`SELECT 1 FROM seo_metadata WHERE page_type = ? AND page_id = ? AND language = ? LIMIT 1`,
		pageType, pageID, language)
}

func (r *Repo) ListSeoByPage(ctx context.Context, pageType domain.PageType, pageID string) ([]domain.SeoRecord, error) {
	rows, err := r.db.QueryContext(ctx, listSeoByPageSQL, pageType, pageID)
	if err != nil {
		return nil, classify("list seo by page", err)
	}
	defer rows.Close()

	var out []domain.SeoRecord
	for rows.Next() {
		var rec domain.SeoRecord
		var desc, kw, ogT, ogD, ogI sql.NullString
		if err := rows.Scan(&rec.ID, &rec.PageType, &rec.PageID, &rec.Language, &rec.Title,
			&desc, &kw, &rec.Slug, &ogT, &ogD, &ogI, &rec.CreatedAt); err != nil {
			return nil, classify("list seo by page", err)
		}
		rec.Description = desc.String
		rec.Keywords = kw.String
		rec.OgTitle = ogT.String
		rec.OgDescription = ogD.String
		rec.OgImage = ogI.String
		out = append(out, rec)
	}
	return out, classify("list seo by page", rows.Err())
}
