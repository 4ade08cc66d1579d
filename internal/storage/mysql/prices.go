package mysql

import (
	"context"
	"database/sql"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertBasePrice(ctx context.Context, p domain.BasePrice) error {
	_, err := r.db.ExecContext(ctx, insertBasePriceSQL,
		p.ID, p.RoomID, p.Sun, p.Mon, p.Tue, p.Wed, p.Thu, p.Fri, p.Sat)
	return classify("insert base price", err)
}

func (r *Repo) DeleteBasePrice(ctx context.Context, roomID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM room_base_prices WHERE room_id = ?`, roomID)
	return classify("delete base price", err)
}

func (r *Repo) InsertSeasonPrice(ctx context.Context, p domain.SeasonPrice) error {
	_, err := r.db.ExecContext(ctx, insertSeasonPriceSQL,
		p.ID, p.RoomID, p.Name, p.Start, p.End,
		p.Sun, p.Mon, p.Tue, p.Wed, p.Thu, p.Fri, p.Sat, p.IsActive)
	return classify("insert season price", err)
}

func (r *Repo) DeleteSeasonPrices(ctx context.Context, roomID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM room_season_prices WHERE room_id = ?`, roomID)
	return classify("delete season prices", err)
}

func (r *Repo) InsertOverridePrice(ctx context.Context, p domain.OverridePrice) error {
	_, err := r.db.ExecContext(ctx, insertOverridePriceSQL,
		p.ID, p.RoomID, p.Name, p.Start, p.End, p.Price, p.IsPromotion, p.IsActive, p.Note)
	return classify("insert override price", err)
}

func (r *Repo) DeleteOverridePrices(ctx context.Context, roomID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM room_override_prices WHERE room_id = ?`, roomID)
	return classify("delete override prices", err)
}

func (r *Repo) GetBasePrice(ctx context.Context, roomID string) (domain.BasePrice, error) {
	row := r.db.QueryRowContext(ctx, getBasePriceSQL, roomID)

	var p domain.BasePrice
	err := row.Scan(&p.ID, &p.RoomID, &p.Sun, &p.Mon, &p.Tue, &p.Wed, &p.Thu, &p.Fri, &p.Sat)
	if err != nil {
		return domain.BasePrice{}, classify("get base price", err)
	}
	return p, nil
}

func (r *Repo) ListSeasonPrices(ctx context.Context, roomID string) ([]domain.SeasonPrice, error) {
	rows, err := r.db.QueryContext(ctx, listSeasonPricesSQL, roomID)
	if err != nil {
		return nil, classify("list season prices", err)
	}
	defer rows.Close()

	var out []domain.SeasonPrice
	for rows.Next() {
		var p domain.SeasonPrice
		if err := rows.Scan(&p.ID, &p.RoomID, &p.Name, &p.Start, &p.End,
			&p.Sun, &p.Mon, &p.Tue, &p.Wed, &p.Thu, &p.Fri, &p.Sat, &p.IsActive); err != nil {
			return nil, classify("list season prices", err)
		}
		out = append(out, p)
	}
	return out, classify("list season prices", rows.Err())
}

func (r *Repo) ListOverridePrices(ctx context.Context, roomID string) ([]domain.OverridePrice, error) {
	rows, err := r.db.QueryContext(ctx, listOverridePricesSQL, roomID)
	if err != nil {
		return nil, classify("list override prices", err)
	}
	defer rows.Close()

	var out []domain.OverridePrice
	for rows.Next() {
		var p domain.OverridePrice
		var note sql.NullString
		if err := rows.Scan(&p.ID, &p.RoomID, &p.Name, &p.Start, &p.End,
			&p.Price, &p.IsPromotion, &p.IsActive, &note); err != nil {
			return nil, classify("list override prices", err)
		}
		p.Note = note.String
		out = append(out, p)
	}
	return out, classify("list override prices", rows.Err())
}
