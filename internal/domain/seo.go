package domain

import (
	"regexp"
	"time"
)

// PageType identifies which kind of entity a SEO record or image
// collection belongs to. The set is closed.
type PageType string

const (
	PageTypeHotel   PageType = "hotel"
	PageTypeRoom    PageType = "room"
	PageTypeCity    PageType = "city"
	PageTypeCountry PageType = "country"
	PageTypePage    PageType = "page"
	PageTypeBlog    PageType = "blog"
)

var pageTypes = map[PageType]struct{}{
	PageTypeHotel:   {},
	PageTypeRoom:    {},
	PageTypeCity:    {},
	PageTypeCountry: {},
	PageTypePage:    {},
	PageTypeBlog:    {},
}

func (p PageType) Valid() bool {
	_, ok := pageTypes[p]
	return ok
}

// SeoRecord is per-language metadata for one page. Slugs are unique
// per page type, languages unique per page.
type SeoRecord struct {
	ID            string    `json:"id"`
	PageType      PageType  `json:"page_type"`
	PageID        string    `json:"page_id"`
	Language      string    `json:"language"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Keywords      string    `json:"keywords,omitempty"`
	Slug          string    `json:"slug"`
	OgTitle       string    `json:"og_title,omitempty"`
	OgDescription string    `json:"og_description,omitempty"`
	OgImage       string    `json:"og_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// slugPattern allows lowercase alphanumerics separated by single
// hyphens, no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func ValidSlug(s string) bool { return slugPattern.MatchString(s) }

// reservedSlugs are path segments the router owns. They can never be
// claimed as page slugs.
var reservedSlugs = map[string]struct{}{
	"api":     {},
	"admin":   {},
	"static":  {},
	"assets":  {},
	"healthz": {},
	"metrics": {},
	"search":  {},
	"sitemap": {},
}

func ReservedSlug(s string) bool {
	_, ok := reservedSlugs[s]
	return ok
}
