package mysql

import (
	"context"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func (r *Repo) InsertCountry(ctx context.Context, c domain.Country) error {
	_, err := r.db.ExecContext(ctx, insertCountrySQL,
		c.ID, c.NameEn, c.NameTh, c.Slug, c.IsActive, c.CreatedAt)
	return classify("insert country", err)
}

func (r *Repo) DeleteCountry(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM countries WHERE id = ?`, id)
	return classify("delete country", err)
}

func (r *Repo) CountryExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "country exists",
		`SELECT 1 FROM countries WHERE id = ? LIMIT 1`, id)
}

func (r *Repo) CountryNameExists(ctx context.Context, nameEn, nameTh string) (bool, error) {
	return r.exists(ctx, "country name exists",
		`SELECT 1 FROM countries WHERE name_en = ? OR name_th = ? LIMIT 1`, nameEn, nameTh)
}

func (r *Repo) CountrySlugExists(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, "country slug exists",
		`SELECT 1 FROM countries WHERE slug = ? LIMIT 1`, slug)
}

func (r *Repo) GetCountry(ctx context.Context, id string) (domain.Country, error) {
	row := r.db.QueryRowContext(ctx, getCountrySQL, id)

	var c domain.Country
	if err := row.Scan(&c.ID, &c.NameEn, &c.NameTh, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
		return domain.Country{}, classify("get country", err)
	}
	return c, nil
}

func (r *Repo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name_en, name_th, slug, is_active, created_at
FROM countries
ORDER BY name_en`)
	if err != nil {
		return nil, classify("list countries", err)
	}
	defer rows.Close()

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.NameEn, &c.NameTh, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, classify("list countries", err)
		}
		out = append(out, c)
	}
	return out, classify("list countries", rows.Err())
}

func (r *Repo) InsertCity(ctx context.Context, c domain.City) error {
	_, err := r.db.ExecContext(ctx, insertCitySQL,
		c.ID, c.CountryID, c.NameEn, c.NameTh, c.Slug, c.IsActive, c.CreatedAt)
	return classify("insert city", err)
}

func (r *Repo) DeleteCity(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = ?`, id)
	return classify("delete city", err)
}

func (r *Repo) CityExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "city exists",
		`SELECT 1 FROM cities WHERE id = ? LIMIT 1`, id)
}

func (r *Repo) CityNameExists(ctx context.Context, countryID, nameEn, nameTh string) (bool, error) {
	return r.exists(ctx, "city name exists",
		`SELECT 1 FROM cities WHERE country_id = ? AND (name_en = ? OR name_th = ?) LIMIT 1`,
		countryID, nameEn, nameTh)
}

func (r *Repo) CitySlugExists(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, "city slug exists",
		`SELECT 1 FROM cities WHERE slug = ? LIMIT 1`, slug)
}

func (r *Repo) GetCity(ctx context.Context, id string) (domain.City, error) {
	row := r.db.QueryRowContext(ctx, getCitySQL, id)

	var c domain.City
	if err := row.Scan(&c.ID, &c.CountryID, &c.NameEn, &c.NameTh, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
		return domain.City{}, classify("get city", err)
	}
	return c, nil
}

func (r *Repo) ListCities(ctx context.Context, countrySlug string) ([]domain.City, error) {
	q := `
SELECT c.id, c.country_id, c.name_en, c.name_th, c.slug, c.is_active, c.created_at
FROM cities c`
	var args []any
	if countrySlug != "" {
		q += `
JOIN countries co ON co.id = c.country_id
WHERE co.slug = ?`
		args = append(args, countrySlug)
	}
	q += `
ORDER BY c.name_en`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify("list cities", err)
	}
	defer rows.Close()

	var out []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.CountryID, &c.NameEn, &c.NameTh, &c.Slug, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, classify("list cities", err)
		}
		out = append(out, c)
	}
	return out, classify("list cities", rows.Err())
}
