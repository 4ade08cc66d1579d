//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
	mysqlrepo "github.com/boatbie14/funch-hotel-backend-v2/internal/storage/mysql"
)

// ---------- small helpers ----------
func pint(i int) *int           { return &i }
func pfloat(f float64) *float64 { return &f }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

// ---------- the test ----------
func TestRepo_MySQL_CreateAndQuery(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=funch",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "funch")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// ---- geo chain first ----
	country := domain.Country{
		ID: "co-1", NameEn: "Thailand", NameTh: "ไทย", Slug: "thailand",
		IsActive: true, CreatedAt: now,
	}
	if err := repo.InsertCountry(ctx, country); err != nil {
		t.Fatalf("InsertCountry: %v", err)
	}
	city := domain.City{
		ID: "ci-1", CountryID: "co-1", NameEn: "Phuket", NameTh: "ภูเก็ต",
		Slug: "phuket", IsActive: true, CreatedAt: now,
	}
	if err := repo.InsertCity(ctx, city); err != nil {
		t.Fatalf("InsertCity: %v", err)
	}
	hotel := domain.Hotel{
		ID: "h-1", CityID: "ci-1", NameEn: "Funch Grand", NameTh: "ฟันช์แกรนด์",
		DescriptionEn: "Beachfront", StarRating: pint(5), Slug: "funch-grand",
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.InsertHotel(ctx, hotel); err != nil {
		t.Fatalf("InsertHotel: %v", err)
	}
	room := domain.Room{
		ID: "r-1", HotelID: "h-1", NameEn: "Deluxe Sea View", NameTh: "ดีลักซ์วิวทะเล",
		MaxAdults: 2, MaxChildren: 1, RoomSize: pfloat(32.5),
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.InsertRoom(ctx, room); err != nil {
		t.Fatalf("InsertRoom: %v", err)
	}

	// Options and links
	for _, o := range []domain.Option{
		{ID: "opt-wifi", Scope: domain.ScopeRoom, NameEn: "Wi-Fi", NameTh: "ไวไฟ", Category: "comfort", IsActive: true},
		{ID: "opt-tub", Scope: domain.ScopeRoom, NameEn: "Bathtub", NameTh: "อ่างอาบน้ำ", Category: "bath", IsActive: true},
		{ID: "opt-pool", Scope: domain.ScopeHotel, NameEn: "Pool", NameTh: "สระว่ายน้ำ", Category: "facility", IsActive: true},
	} {
		if err := repo.InsertOption(ctx, o); err != nil {
			t.Fatalf("InsertOption %s: %v", o.ID, err)
		}
	}
	if err := repo.InsertOptionLinks(ctx, domain.ScopeRoom, "r-1", []string{"opt-wifi", "opt-tub"}); err != nil {
		t.Fatalf("InsertOptionLinks: %v", err)
	}
	missing, err := repo.MissingOptionIDs(ctx, domain.ScopeRoom, []string{"opt-wifi", "opt-pool", "opt-ghost"})
	if err != nil {
		t.Fatalf("MissingOptionIDs: %v", err)
	}
	// opt-pool exists but is hotel-scoped, so it counts as missing here.
	if len(missing) != 2 || missing[0] != "opt-pool" || missing[1] != "opt-ghost" {
		t.Fatalf("missing = %v", missing)
	}

	// Prices
	base := domain.BasePrice{
		ID: "bp-1", RoomID: "r-1",
		WeekPrices: domain.WeekPrices{Sun: 1200, Mon: 1200, Tue: 1200, Wed: 1200, Thu: 1200, Fri: 1500.5, Sat: 1500.5},
	}
	if err := repo.InsertBasePrice(ctx, base); err != nil {
		t.Fatalf("InsertBasePrice: %v", err)
	}
	season := domain.SeasonPrice{
		ID: "sp-1", RoomID: "r-1", Name: "High Season",
		DateRange:  domain.DateRange{Start: mustDate(t, "2026-11-01"), End: mustDate(t, "2027-02-28")},
		WeekPrices: domain.WeekPrices{Sun: 2200, Mon: 2200, Tue: 2200, Wed: 2200, Thu: 2200, Fri: 2600, Sat: 2600},
		IsActive:   true,
	}
	if err := repo.InsertSeasonPrice(ctx, season); err != nil {
		t.Fatalf("InsertSeasonPrice: %v", err)
	}
	override := domain.OverridePrice{
		ID:          "op-1",
		RoomID:      "r-1",
		Name:        "Soft Opening",
		DateRange:   domain.DateRange{Start: mustDate(t, "2026-09-01"), End: mustDate(t, "2026-09-07")},
		Price:       999.99,
		IsPromotion: true,
		IsActive:    true,
		Note:        "one week only",
	}
	if err := repo.InsertOverridePrice(ctx, override); err != nil {
		t.Fatalf("InsertOverridePrice: %v", err)
	}

	// SEO and images
	rec := domain.SeoRecord{
		ID: "seo-1", PageType: domain.PageTypeRoom, PageID: "r-1", Language: "en",
		Title: "Deluxe Sea View", Description: "32 sqm", Slug: "deluxe-sea-view",
		CreatedAt: now,
	}
	if err := repo.InsertSeo(ctx, rec); err != nil {
		t.Fatalf("InsertSeo: %v", err)
	}
	for i, img := range []domain.Image{
		{ID: "img-2", ContentType: domain.PageTypeRoom, ContentID: "r-1", URL: "https://img.funch.test/b.jpg", SortOrder: 2, CreatedAt: now},
		{ID: "img-1", ContentType: domain.PageTypeRoom, ContentID: "r-1", URL: "https://img.funch.test/a.jpg", IsCover: true, SortOrder: 1, CreatedAt: now},
	} {
		if err := repo.InsertImage(ctx, img); err != nil {
			t.Fatalf("InsertImage %d: %v", i, err)
		}
	}

	// ---- single reads round-trip ----
	gotRoom, err := repo.GetRoom(ctx, "r-1")
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if gotRoom.NameTh != room.NameTh || gotRoom.RoomSize == nil || *gotRoom.RoomSize != 32.5 {
		t.Fatalf("unexpected room: %+v", gotRoom)
	}
	gotHotel, err := repo.GetHotel(ctx, "h-1")
	if err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if gotHotel.StarRating == nil || *gotHotel.StarRating != 5 || gotHotel.Slug != "funch-grand" {
		t.Fatalf("unexpected hotel: %+v", gotHotel)
	}

	gotBase, err := repo.GetBasePrice(ctx, "r-1")
	if err != nil {
		t.Fatalf("GetBasePrice: %v", err)
	}
	if gotBase.Fri != 1500.5 {
		t.Fatalf("base price friday = %v", gotBase.Fri)
	}
	seasons, err := repo.ListSeasonPrices(ctx, "r-1")
	if err != nil {
		t.Fatalf("ListSeasonPrices: %v", err)
	}
	if len(seasons) != 1 || !seasons[0].Start.Equal(season.Start) || !seasons[0].End.Equal(season.End) {
		t.Fatalf("seasons = %+v", seasons)
	}
	overrides, err := repo.ListOverridePrices(ctx, "r-1")
	if err != nil {
		t.Fatalf("ListOverridePrices: %v", err)
	}
	if len(overrides) != 1 || overrides[0].Price != 999.99 || overrides[0].Note != "one week only" {
		t.Fatalf("overrides = %+v", overrides)
	}

	// Lists with filters and totals
	rooms, total, err := repo.ListRooms(ctx, domain.RoomsQuery{HotelSlug: "funch-grand", Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if total != 1 || len(rooms) != 1 || rooms[0].ID != "r-1" {
		t.Fatalf("rooms = %+v total = %d", rooms, total)
	}
	if _, total, err = repo.ListRooms(ctx, domain.RoomsQuery{HotelSlug: "no-such-hotel", Limit: 10}); err != nil || total != 0 {
		t.Fatalf("filtered rooms total = %d err = %v", total, err)
	}
	cities, err := repo.ListCities(ctx, "thailand")
	if err != nil || len(cities) != 1 || cities[0].ID != "ci-1" {
		t.Fatalf("cities = %+v err = %v", cities, err)
	}
	ids, err := repo.ListOptionIDs(ctx, domain.ScopeRoom, "r-1")
	if err != nil || len(ids) != 2 {
		t.Fatalf("option ids = %v err = %v", ids, err)
	}
	imgs, err := repo.ListImagesByOwner(ctx, domain.PageTypeRoom, "r-1")
	if err != nil {
		t.Fatalf("ListImagesByOwner: %v", err)
	}
	if len(imgs) != 2 || imgs[0].ID != "img-1" || !imgs[0].IsCover {
		t.Fatalf("image order wrong: %+v", imgs)
	}

	// SEO lookups
	if ok, err := repo.SeoSlugExists(ctx, domain.PageTypeRoom, "deluxe-sea-view"); err != nil || !ok {
		t.Fatalf("SeoSlugExists = %v err = %v", ok, err)
	}
	if ok, _ := repo.SeoSlugExists(ctx, domain.PageTypeHotel, "deluxe-sea-view"); ok {
		t.Fatal("slug must be scoped per page type")
	}
	if ok, err := repo.SeoLanguageExists(ctx, domain.PageTypeRoom, "r-1", "en"); err != nil || !ok {
		t.Fatalf("SeoLanguageExists = %v err = %v", ok, err)
	}

	// Constraint classification against the live schema
	err = repo.InsertCountry(ctx, domain.Country{
		ID: "co-2", NameEn: "Siam", NameTh: "สยาม", Slug: "thailand", CreatedAt: now,
	})
	if !domain.ConstraintOfKind(err, domain.ConstraintUnique) {
		t.Fatalf("duplicate slug: got %v, want unique constraint", err)
	}
	err = repo.InsertRoom(ctx, domain.Room{
		ID: "r-ghost", HotelID: "no-such-hotel", NameEn: "Ghost", NameTh: "ผี",
		MaxAdults: 2, CreatedAt: now, UpdatedAt: now,
	})
	if !domain.ConstraintOfKind(err, domain.ConstraintForeignKey) {
		t.Fatalf("ghost hotel: got %v, want foreign key constraint", err)
	}
	if _, err := repo.GetRoom(ctx, "no-such-room"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing room: got %v, want ErrNotFound", err)
	}

	// ClearCover drops the old cover before a new one lands
	if err := repo.ClearCover(ctx, domain.PageTypeRoom, "r-1"); err != nil {
		t.Fatalf("ClearCover: %v", err)
	}
	imgs, _ = repo.ListImagesByOwner(ctx, domain.PageTypeRoom, "r-1")
	for _, img := range imgs {
		if img.IsCover {
			t.Fatalf("cover flag survived ClearCover: %+v", img)
		}
	}

	// Compensating deletes run children-first; the cascade covers stragglers.
	if err := repo.DeleteSeoByPage(ctx, domain.PageTypeRoom, "r-1"); err != nil {
		t.Fatalf("DeleteSeoByPage: %v", err)
	}
	if err := repo.DeleteImagesByOwner(ctx, domain.PageTypeRoom, "r-1"); err != nil {
		t.Fatalf("DeleteImagesByOwner: %v", err)
	}
	if err := repo.DeleteRoom(ctx, "r-1"); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if _, err := repo.GetBasePrice(ctx, "r-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("base price survived room delete: %v", err)
	}
	if ok, _ := repo.RoomExists(ctx, "r-1"); ok {
		t.Fatal("room still exists after delete")
	}
}
