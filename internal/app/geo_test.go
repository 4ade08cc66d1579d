package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func geoService(m *memStore) *app.GeoService {
	return app.NewGeoService(storesFor(m), &fakeCache{}, zerolog.Nop())
}

func TestCreateCountry_WithSeo(t *testing.T) {
	m := newMemStore()
	svc := geoService(m)

	res, err := svc.CreateCountry(context.Background(), app.CreateCountryInput{
		Country: domain.Country{NameEn: "Japan", NameTh: "ญี่ปุ่น", Slug: "japan", IsActive: true},
		Seo: []domain.SeoRecord{
			{Language: "en", Title: "Hotels in Japan", Slug: "hotels-in-japan"},
		},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Country.ID == "" {
		t.Fatal("country id not assigned")
	}
	if res.Summary.SeoCreated != 1 || res.Partial() {
		t.Fatalf("summary: %+v", res.Summary)
	}
	for _, rec := range m.seo {
		if rec.PageType != domain.PageTypeCountry {
			t.Fatalf("seo page type = %s", rec.PageType)
		}
	}
}

func TestCreateCountry_NameTaken(t *testing.T) {
	m := seededStore()
	svc := geoService(m)

	_, err := svc.CreateCountry(context.Background(), app.CreateCountryInput{
		Country: domain.Country{NameEn: "Thailand", NameTh: "อื่น", Slug: "thailand-2"},
	})
	var ce *domain.ConflictError
	if !errors.As(err, &ce) || ce.Code != domain.CodeCountryExists {
		t.Fatalf("want COUNTRY_EXISTS, got %v", err)
	}
}

func TestCreateCity_RequiresCountry(t *testing.T) {
	m := newMemStore()
	svc := geoService(m)

	_, err := svc.CreateCity(context.Background(), app.CreateCityInput{
		City: domain.City{CountryID: "ghost", NameEn: "Osaka", NameTh: "โอซาก้า", Slug: "osaka"},
	})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Code != domain.CodeCountryNotFound {
		t.Fatalf("want COUNTRY_NOT_FOUND, got %v", err)
	}
}

func TestCreateCity_SeoWipeoutRollsBack(t *testing.T) {
	m := seededStore()
	svc := geoService(m)

	_, err := svc.CreateCity(context.Background(), app.CreateCityInput{
		City: domain.City{CountryID: "co1", NameEn: "Krabi", NameTh: "กระบี่", Slug: "krabi"},
		Seo: []domain.SeoRecord{
			{Language: "en", Title: "Krabi", Slug: "admin"}, // reserved, the only entry
		},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Code != domain.CodeSeoBatchFailed {
		t.Fatalf("want SEO_BATCH_FAILED, got %v", err)
	}
	if len(m.cities) != 1 { // only the seeded city remains
		t.Fatalf("city not rolled back: %d", len(m.cities))
	}
	if len(m.seo) != 0 {
		t.Fatalf("seo rows survived: %d", len(m.seo))
	}
}

func TestCreateCity_SameNameDifferentCountry(t *testing.T) {
	m := seededStore()
	m.countries["co2"] = domain.Country{ID: "co2", NameEn: "Laos", NameTh: "ลาว", Slug: "laos"}
	svc := geoService(m)

	// Phuket exists under co1; the same name under co2 is fine.
	res, err := svc.CreateCity(context.Background(), app.CreateCityInput{
		City: domain.City{CountryID: "co2", NameEn: "Phuket", NameTh: "ภูเก็ตลาว", Slug: "phuket-laos"},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.City.ID == "" {
		t.Fatal("city id not assigned")
	}
}
