package domain

import "time"

// PageKind distinguishes static pages from blog posts. Both live in
// the same table and share the SEO and image machinery.
type PageKind string

const (
	KindPage PageKind = "page"
	KindBlog PageKind = "blog"
)

func (k PageKind) Valid() bool { return k == KindPage || k == KindBlog }

type Page struct {
	ID        string    `json:"id"`
	Kind      PageKind  `json:"kind"`
	Slug      string    `json:"slug"`
	TitleEn   string    `json:"title_en"`
	TitleTh   string    `json:"title_th"`
	Excerpt   string    `json:"excerpt,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
