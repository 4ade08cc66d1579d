package mysql

import (
	"context"
	"database/sql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.ID, rm.HotelID, rm.NameEn, rm.NameTh, rm.DescriptionEn, rm.DescriptionTh,
		rm.MaxAdults, rm.MaxChildren, valF64(rm.RoomSize), rm.IsActive, rm.CreatedAt, rm.UpdatedAt)
	return classify("insert room", err)
}

func (r *Repo) DeleteRoom(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	return classify("delete room", err)
}

func (r *Repo) RoomExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "room exists",
		`SELECT 1 FROM rooms WHERE id = ? LIMIT 1`, id)
}

func (r *Repo) RoomNameExists(ctx context.Context, hotelID, nameEn, nameTh string) (bool, error) {
	return r.exists(ctx, "room name exists",
		`SELECT 1 FROM rooms WHERE hotel_id = ? AND (name_en = ? OR name_th = ?) LIMIT 1`,
		hotelID, nameEn, nameTh)
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	if err != nil {
		return domain.Room{}, classify("get room", err)
	}
	return rm, nil
}

func (r *Repo) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, int, error) {
	where := ""
	var args []any
	if q.HotelSlug != "" {
		where = `
JOIN hotels h ON h.id = r.hotel_id
WHERE h.slug = ?`
		args = append(args, q.HotelSlug)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rooms r`+where, args...).Scan(&total); err != nil {
		return nil, 0, classify("count rooms", err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT r.id, r.hotel_id, r.name_en, r.name_th, r.description_en, r.description_th,
       r.max_adults, r.max_children, r.room_size, r.is_active, r.created_at, r.updated_at
FROM rooms r`+where+`
ORDER BY r.name_en
LIMIT ? OFFSET ?`, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, classify("list rooms", err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, 0, classify("list rooms", err)
		}
		out = append(out, rm)
	}
	return out, total, classify("list rooms", rows.Err())
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var rm domain.Room
	var descEn, descTh sql.NullString
	var size sql.NullFloat64

	err := row.Scan(
		&rm.ID, &rm.HotelID, &rm.NameEn, &rm.NameTh, &descEn, &descTh,
		&rm.MaxAdults, &rm.MaxChildren, &size, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return domain.Room{}, err
	}
	rm.DescriptionEn = descEn.String
	rm.DescriptionTh = descTh.String
	if size.Valid {
		f := size.Float64
		rm.RoomSize = &f
	}
	return rm, nil
}
