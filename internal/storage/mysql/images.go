package mysql

import (
	"context"
	"database/sql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertImage(ctx context.Context, img domain.Image) error {
	_, err := r.db.ExecContext(ctx, insertImageSQL,
		img.ID, img.ContentType, img.ContentID, img.URL, img.AltText,
		img.Caption, img.IsCover, img.SortOrder, img.CreatedAt)
	return classify("insert image", err)
}

func (r *Repo) ClearCover(ctx context.Context, contentType domain.PageType, contentID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE images SET is_cover = 0 WHERE content_type = ? AND content_id = ? AND is_cover = 1`,
		contentType, contentID)
	return classify("clear cover", err)
}

func (r *Repo) DeleteImagesByOwner(ctx context.Context, contentType domain.PageType, contentID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM images WHERE content_type = ? AND content_id = ?`, contentType, contentID)
	return classify("delete images by owner", err)
}

func (r *Repo) ListImagesByOwner(ctx context.Context, contentType domain.PageType, contentID string) ([]domain.Image, error) {
	rows, err := r.db.QueryContext(ctx, listImagesByOwnerSQL, contentType, contentID)
	if err != nil {
		return nil, classify("list images by owner", err)
	}
	defer rows.Close()

	var out []domain.Image
	for rows.Next() {
		var img domain.Image
		var alt, caption sql.NullString
		if err := rows.Scan(&img.ID, &img.ContentType, &img.ContentID, &img.URL,
			&alt, &caption, &img.IsCover, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, classify("list images by owner", err)
		}
		img.AltText = alt.String
		img.Caption = caption.String
		out = append(out, img)
	}
	return out, classify("list images by owner", rows.Err())
}
