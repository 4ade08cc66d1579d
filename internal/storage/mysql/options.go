package mysql

import (
	"context"
	"strings"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

// linkTable resolves which link table a scope writes to. Scope is
// validated upstream; an unknown value still lands on the room side
// rather than producing malformed SQL.
func linkTable(scope domain.OptionScope) (table, ownerCol string) {
	if scope == domain.ScopeHotel {
		return "hotel_options", "hotel_id"
	}
	return "room_options", "room_id"
}

func (r *Repo) InsertOption(ctx context.Context, o domain.Option) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO options (id, scope, name_en, name_th, category, is_active)
VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.Scope, o.NameEn, o.NameTh, o.Category, o.IsActive)
	return classify("insert option", err)
}

func (r *Repo) InsertOptionLinks(ctx context.Context, scope domain.OptionScope, entityID string, optionIDs []string) error {
	if len(optionIDs) == 0 {
		return nil
	}
	table, ownerCol := linkTable(scope)

	values := make([]string, 0, len(optionIDs))
	args := make([]any, 0, len(optionIDs)*2)
	for _, id := range optionIDs {
		values = append(values, "(?,?)")
		args = append(args, entityID, id)
	}
	q := "INSERT INTO " + table + " (" + ownerCol + ", option_id) VALUES " + strings.Join(values, ",")
	_, err := r.db.ExecContext(ctx, q, args...)
	return classify("insert option links", err)
}

func (r *Repo) DeleteOptionLinks(ctx context.Context, scope domain.OptionScope, entityID string) error {
	table, ownerCol := linkTable(scope)
	_, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE "+ownerCol+" = ?", entityID)
	return classify("delete option links", err)
}

func (r *Repo) MissingOptionIDs(ctx context.Context, scope domain.OptionScope, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(ids)+1)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, scope)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM options WHERE id IN (`+placeholders(len(ids))+`) AND scope = ?`, args...)
	if err != nil {
		return nil, classify("missing option ids", err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, classify("missing option ids", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, classify("missing option ids", err)
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *Repo) ListOptions(ctx context.Context, scope domain.OptionScope) ([]domain.Option, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, scope, name_en, name_th, category, is_active
FROM options
WHERE scope = ?
ORDER BY category, name_en`, scope)
	if err != nil {
		return nil, classify("list options", err)
	}
	defer rows.Close()

	var out []domain.Option
	for rows.Next() {
		var o domain.Option
		if err := rows.Scan(&o.ID, &o.Scope, &o.NameEn, &o.NameTh, &o.Category, &o.IsActive); err != nil {
			return nil, classify("list options", err)
		}
		out = append(out, o)
	}
	return out, classify("list options", rows.Err())
}

func (r *Repo) ListOptionIDs(ctx context.Context, scope domain.OptionScope, entityID string) ([]string, error) {
	table, ownerCol := linkTable(scope)
	rows, err := r.db.QueryContext(ctx,
		"SELECT option_id FROM "+table+" WHERE "+ownerCol+" = ? ORDER BY option_id", entityID)
	if err != nil {
		return nil, classify("list option ids", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, classify("list option ids", err)
		}
		out = append(out, id)
	}
	return out, classify("list option ids", rows.Err())
}
