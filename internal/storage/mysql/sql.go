package mysql

const insertCountrySQL = `
INSERT INTO countries
  (id, name_en, name_th, slug, is_active, created_at)
VALUES
  (?, ?, ?, ?, ?, ?)
`

const insertCitySQL = `
INSERT INTO cities
  (id, country_id, name_en, name_th, slug, is_active, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const insertHotelSQL = `
INSERT INTO hotels
  (id, city_id, name_en, name_th, description_en, description_th,
   address, star_rating, slug, is_active, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertRoomSQL = `
INSERT INTO rooms
  (id, hotel_id, name_en, name_th, description_en, description_th,
   max_adults, max_children, room_size, is_active, created_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertBasePriceSQL = `
INSERT INTO room_base_prices
  (id, room_id, price_sun, price_mon, price_tue, price_wed, price_thu, price_fri, price_sat)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertSeasonPriceSQL = `
INSERT INTO room_season_prices
  (id, room_id, name, start_date, end_date,
   price_sun, price_mon, price_tue, price_wed, price_thu, price_fri, price_sat, is_active)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertOverridePriceSQL = `
INSERT INTO room_override_prices
  (id, room_id, name, start_date, end_date, price, is_promotion, is_active, note)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertSeoSQL = `
INSERT INTO seo_metadata
  (id, page_type, page_id, language, title, description, keywords,
   slug, og_title, og_description, og_image, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertImageSQL = `
INSERT INTO images
  (id, content_type, content_id, url, alt_text, caption, is_cover, sort_order, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertPageSQL = `
INSERT INTO pages
  (id, kind, slug, title_en, title_th, excerpt, is_active, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getCountrySQL = `
SELECT id, name_en, name_th, slug, is_active, created_at
FROM countries
WHERE id = ?
`

const getCitySQL = `
SELECT id, country_id, name_en, name_th, slug, is_active, created_at
FROM cities
WHERE id = ?
`

const getHotelSQL = `
SELECT id, city_id, name_en, name_th, description_en, description_th,
       address, star_rating, slug, is_active, created_at, updated_at
FROM hotels
WHERE id = ?
`

const getRoomSQL = `
SELECT id, hotel_id, name_en, name_th, description_en, description_th,
       max_adults, max_children, room_size, is_active, created_at, updated_at
FROM rooms
WHERE id = ?
`

const getBasePriceSQL = `
SELECT id, room_id, price_sun, price_mon, price_tue, price_wed, price_thu, price_fri, price_sat
FROM room_base_prices
WHERE room_id = ?
`

const listSeasonPricesSQL = `
SELECT id, room_id, name, start_date, end_date,
       price_sun, price_mon, price_tue, price_wed, price_thu, price_fri, price_sat, is_active
FROM room_season_prices
WHERE room_id = ?
ORDER BY start_date
`

const listOverridePricesSQL = `
SELECT id, room_id, name, start_date, end_date, price, is_promotion, is_active, note
FROM room_override_prices
WHERE room_id = ?
ORDER BY start_date
`

const listSeoByPageSQL = `
SELECT id, page_type, page_id, language, title, description, keywords,
       slug, og_title, og_description, og_image, created_at
FROM seo_metadata
WHERE page_type = ? AND page_id = ?
ORDER BY language
`

const listImagesByOwnerSQL = `
SELECT id, content_type, content_id, url, alt_text, caption, is_cover, sort_order, created_at
FROM images
WHERE content_type = ? AND content_id = ?
ORDER BY sort_order, created_at, id
`
