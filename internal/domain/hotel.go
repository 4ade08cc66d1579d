package domain

import "time"

type Hotel struct {
	ID            string    `json:"id"`
	CityID        string    `json:"city_id"`
	NameEn        string    `json:"name_en"`
	NameTh        string    `json:"name_th"`
	DescriptionEn string    `json:"description_en,omitempty"`
	DescriptionTh string    `json:"description_th,omitempty"`
	Address       string    `json:"address,omitempty"`
	StarRating    *int      `json:"star_rating,omitempty"`
	Slug          string    `json:"slug"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
