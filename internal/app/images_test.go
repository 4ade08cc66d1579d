package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/app"
	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

func imageService(m *memStore) *app.ImageService {
	return app.NewImageService(storesFor(m), zerolog.Nop())
}

func TestCreateCollection_DuplicateURLRejectedBeforeWrite(t *testing.T) {
	m := seededStore()
	svc := imageService(m)

	_, err := svc.CreateCollection(context.Background(), domain.PageTypeHotel, "h1", []domain.Image{
		{URL: "https://img.funch.test/x.jpg", IsCover: true},
		{URL: "https://img.funch.test/x.jpg"},
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Code != domain.CodeDuplicateImage {
		t.Fatalf("want DUPLICATE_IMAGE_URL, got %v", err)
	}
	if len(m.images) != 0 {
		t.Fatalf("images written despite rejection: %d", len(m.images))
	}
}

func TestCreateCollection_CoverRules(t *testing.T) {
	m := seededStore()
	svc := imageService(m)

	_, err := svc.CreateCollection(context.Background(), domain.PageTypeHotel, "h1", []domain.Image{
		{URL: "https://img.funch.test/a.jpg"},
		{URL: "https://img.funch.test/b.jpg"},
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Code != domain.CodeCoverRequired {
		t.Fatalf("want COVER_REQUIRED, got %v", err)
	}

	_, err = svc.CreateCollection(context.Background(), domain.PageTypeHotel, "h1", []domain.Image{
		{URL: "https://img.funch.test/a.jpg", IsCover: true},
		{URL: "https://img.funch.test/b.jpg", IsCover: true},
	})
	if !errors.As(err, &ve) || ve.Code != domain.CodeMultipleCovers {
		t.Fatalf("want MULTIPLE_COVERS, got %v", err)
	}
	if len(m.images) != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestCreateCollection_ClearsPreviousCover(t *testing.T) {
	m := seededStore()
	svc := imageService(m)

	m.images = []domain.Image{
		{ID: "old", ContentType: domain.PageTypeHotel, ContentID: "h1", URL: "https://img.funch.test/old.jpg", IsCover: true},
	}

	res, err := svc.CreateCollection(context.Background(), domain.PageTypeHotel, "h1", []domain.Image{
		{URL: "https://img.funch.test/new.jpg", IsCover: true},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Summary.ImagesCreated != 1 {
		t.Fatalf("summary = %+v", res.Summary)
	}

	covers := 0
	for _, img := range m.images {
		if img.ContentID == "h1" && img.IsCover {
			covers++
			if img.URL != "https://img.funch.test/new.jpg" {
				t.Fatalf("wrong cover survived: %s", img.URL)
			}
		}
	}
	if covers != 1 {
		t.Fatalf("cover count = %d", covers)
	}
}

func TestCreateCollection_OwnerValidation(t *testing.T) {
	m := seededStore()
	svc := imageService(m)
	batch := []domain.Image{{URL: "https://img.funch.test/a.jpg", IsCover: true}}

	_, err := svc.CreateCollection(context.Background(), "gallery", "h1", batch)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Code != domain.CodeInvalidContent {
		t.Fatalf("want INVALID_CONTENT_TYPE, got %v", err)
	}

	_, err = svc.CreateCollection(context.Background(), domain.PageTypeRoom, "ghost", batch)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Code != domain.CodeEntityNotFound {
		t.Fatalf("want ENTITY_NOT_FOUND, got %v", err)
	}
}

func TestCreateCollection_PartialFailure(t *testing.T) {
	m := seededStore()
	svc := imageService(m)

	m.imageErrByURL = map[string]error{
		"https://img.funch.test/flaky.jpg": errors.New("write refused"),
	}
	res, err := svc.CreateCollection(context.Background(), domain.PageTypeHotel, "h1", []domain.Image{
		{URL: "https://img.funch.test/good.jpg", IsCover: true},
		{URL: "https://img.funch.test/flaky.jpg"},
	})
	if err != nil {
		t.Fatalf("partial failure must not error: %v", err)
	}
	if !res.Partial() || res.Summary.ImagesCreated != 1 || res.Summary.ImagesFailed != 1 {
		t.Fatalf("summary = %+v", res.Summary)
	}
	if res.Errors[0].URL != "https://img.funch.test/flaky.jpg" || res.Errors[0].Code != domain.CodeStoreError {
		t.Fatalf("failure entry = %+v", res.Errors[0])
	}
}

func TestCreateCollection_TotalFailure(t *testing.T) {
	m := seededStore()
	svc := imageService(m)

	m.imageErr = errors.New("bucket gone")
	_, err := svc.CreateCollection(context.Background(), domain.PageTypeHotel, "h1", []domain.Image{
		{URL: "https://img.funch.test/a.jpg", IsCover: true},
		{URL: "https://img.funch.test/b.jpg"},
	})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Code != domain.CodeImageBatchFailed {
		t.Fatalf("want IMAGE_BATCH_FAILED, got %v", err)
	}
}
