package mysql

import (
	"context"
	"database/sql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.ID, h.CityID, h.NameEn, h.NameTh, h.DescriptionEn, h.DescriptionTh,
		h.Address, valInt(h.StarRating), h.Slug, h.IsActive, h.CreatedAt, h.UpdatedAt)
	return classify("insert hotel", err)
}

func (r *Repo) DeleteHotel(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
	return classify("delete hotel", err)
}

func (r *Repo) HotelExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "hotel exists",
		`SELECT 1 FROM hotels WHERE id = ? LIMIT 1`, id)
}

func (r *Repo) HotelNameExists(ctx context.Context, cityID, nameEn, nameTh string) (bool, error) {
	return r.exists(ctx, "hotel name exists",
		`SELECT 1 FROM hotels WHERE city_id = ? AND (name_en = ? OR name_th = ?) LIMIT 1`,
		cityID, nameEn, nameTh)
}

func (r *Repo) HotelSlugExists(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, "hotel slug exists",
		`SELECT 1 FROM hotels WHERE slug = ? LIMIT 1`, slug)
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err != nil {
		return domain.Hotel{}, classify("get hotel", err)
	}
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, int, error) {
	where := ""
	var args []any
	if q.CitySlug != "" {
		where = `
JOIN cities c ON c.id = h.city_id
WHERE c.slug = ?`
		args = append(args, q.CitySlug)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM hotels h`+where, args...).Scan(&total); err != nil {
		return nil, 0, classify("count hotels", err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT h.id, h.city_id, h.name_en, h.name_th, h.description_en, h.description_th,
       h.address, h.star_rating, h.slug, h.is_active, h.created_at, h.updated_at
FROM hotels h`+where+`
ORDER BY h.name_en
LIMIT ? OFFSET ?`, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, classify("list hotels", err)
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, 0, classify("list hotels", err)
		}
		out = append(out, h)
	}
	return out, total, classify("list hotels", rows.Err())
}

type rowScanner interface{ Scan(dest ...any) error }

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var descEn, descTh, addr sql.NullString
	var stars sql.NullInt64

	err := row.Scan(
		&h.ID, &h.CityID, &h.NameEn, &h.NameTh, &descEn, &descTh,
		&addr, &stars, &h.Slug, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.DescriptionEn = descEn.String
	h.DescriptionTh = descTh.String
	h.Address = addr.String
	if stars.Valid {
		s := int(stars.Int64)
		h.StarRating = &s
	}
	return h, nil
}
