package domain

import "time"

type Country struct {
	ID        string    `json:"id"`
	NameEn    string    `json:"name_en"`
	NameTh    string    `json:"name_th"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type City struct {
	ID        string    `json:"id"`
	CountryID string    `json:"country_id"`
	NameEn    string    `json:"name_en"`
	NameTh    string    `json:"name_th"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
