package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func queryService(m *memStore) (*app.QueryService, *fakeCache) {
	cache := &fakeCache{}
	return app.NewQueryService(storesFor(m), cache, 10*time.Minute), cache
}

func TestListRooms_CacheMissThenHit(t *testing.T) {
	m := seededStore()
	m.rooms["r1"] = domain.Room{ID: "r1", HotelID: "h1", NameEn: "Deluxe"}
	q, _ := queryService(m)

	// Miss (first time, populates cache)
	out, err := q.ListRooms(context.Background(), domain.RoomsQuery{HotelSlug: "funch-grand"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.Total != 1 || len(out.Rooms) != 1 || out.Rooms[0].NameEn != "Deluxe" {
		t.Fatalf("unexpected page: %+v", out)
	}
	if out.Limit != 20 || out.Offset != 0 {
		t.Fatalf("defaults not applied: limit=%d offset=%d", out.Limit, out.Offset)
	}

	// Mutate the store to prove the second read comes from cache
	m.rooms["r2"] = domain.Room{ID: "r2", HotelID: "h1", NameEn: "SHOULD NOT SEE THIS"}

	out2, err := q.ListRooms(context.Background(), domain.RoomsQuery{HotelSlug: "funch-grand"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out2.Total != 1 {
		t.Fatalf("expected cached page, got total %d", out2.Total)
	}
}

func TestListRooms_ClampsPagination(t *testing.T) {
	m := seededStore()
	q, _ := queryService(m)

	out, err := q.ListRooms(context.Background(), domain.RoomsQuery{Limit: 5000, Offset: -3})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.Limit != 100 || out.Offset != 0 {
		t.Fatalf("clamp failed: limit=%d offset=%d", out.Limit, out.Offset)
	}
}

func TestGetRoom_AssemblesAggregate(t *testing.T) {
	m := seededStore()
	m.rooms["r1"] = domain.Room{ID: "r1", HotelID: "h1", NameEn: "Deluxe"}
	m.bases["r1"] = domain.BasePrice{ID: "bp1", RoomID: "r1", WeekPrices: week(1200)}
	m.seasons["r1"] = []domain.SeasonPrice{{ID: "s1", RoomID: "r1", Name: "High"}}
	m.links[linkKey(domain.ScopeRoom, "r1")] = []string{"opt-wifi"}
	m.images = []domain.Image{{ID: "i1", ContentType: domain.PageTypeRoom, ContentID: "r1", URL: "https://img.funch.test/1.jpg", IsCover: true}}
	q, _ := queryService(m)

	out, err := q.GetRoom(context.Background(), "r1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out.BasePrice == nil || out.BasePrice.ID != "bp1" {
		t.Fatalf("base price missing: %+v", out.BasePrice)
	}
	if len(out.Seasons) != 1 || len(out.OptionIDs) != 1 || len(out.Images) != 1 {
		t.Fatalf("aggregate incomplete: %+v", out)
	}
}

func TestGetRoom_NotFound(t *testing.T) {
	m := seededStore()
	q, _ := queryService(m)

	_, err := q.GetRoom(context.Background(), "ghost")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Code != domain.CodeRoomNotFound {
		t.Fatalf("want ROOM_NOT_FOUND, got %v", err)
	}
}

func TestListCities_FiltersByCountrySlug(t *testing.T) {
	m := seededStore()
	m.countries["co2"] = domain.Country{ID: "co2", NameEn: "Japan", Slug: "japan"}
	m.cities["c2"] = domain.City{ID: "c2", CountryID: "co2", NameEn: "Osaka", Slug: "osaka"}
	q, _ := queryService(m)

	cities, err := q.ListCities(context.Background(), "japan")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(cities) != 1 || cities[0].Slug != "osaka" {
		t.Fatalf("unexpected cities: %+v", cities)
	}
}

func TestListOptions_ScopeRequired(t *testing.T) {
	m := seededStore()
	q, _ := queryService(m)

	if _, err := q.ListOptions(context.Background(), "pool"); err == nil {
		t.Fatal("unknown scope must fail")
	}
	opts, err := q.ListOptions(context.Background(), domain.ScopeRoom)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("options = %d", len(opts))
	}
}
