package mysql

import (
	"context"
	"database/sql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertPage(ctx context.Context, p domain.Page) error {
	_, err := r.db.ExecContext(ctx, insertPageSQL,
		p.ID, p.Kind, p.Slug, p.TitleEn, p.TitleTh, p.Excerpt, p.IsActive, p.CreatedAt)
	return classify("insert page", err)
}

func (r *Repo) DeletePage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return classify("delete page", err)
}

func (r *Repo) PageExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "page exists",
		`SELECT 1 FROM pages WHERE id = ? LIMIT 1`, id)
}

func (r *Repo) PageNameExists(ctx context.Context, kind domain.PageKind, titleEn, titleTh string) (bool, error) {
	return r.exists(ctx, "page name exists",
		`SELECT 1 FROM pages WHERE kind = ? AND (title_en = ? OR title_th = ?) LIMIT 1`,
		kind, titleEn, titleTh)
}

func (r *Repo) PageSlugExists(ctx context.Context, kind domain.PageKind, slug string) (bool, error) {
	return r.exists(ctx, "page slug exists",
		`SELECT 1 FROM pages WHERE kind = ? AND slug = ? LIMIT 1`, kind, slug)
}

func (r *Repo) ListPages(ctx context.Context, kind domain.PageKind) ([]domain.Page, error) {
	q := `
SELECT id, kind, slug, title_en, title_th, excerpt, is_active, created_at
FROM pages`
	var args []any
	if kind != "" {
		q += `
WHERE kind = ?`
		args = append(args, kind)
	}
	q += `
ORDER BY created_at DESC, title_en`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify("list pages", err)
	}
	defer rows.Close()

	var out []domain.Page
	for rows.Next() {
		var p domain.Page
		var excerpt sql.NullString
		if err := rows.Scan(&p.ID, &p.Kind, &p.Slug, &p.TitleEn, &p.TitleTh,
			&excerpt, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, classify("list pages", err)
		}
		p.Excerpt = excerpt.String
		out = append(out, p)
	}
	return out, classify("list pages", rows.Err())
}
