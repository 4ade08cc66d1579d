package domain

import "time"

type Room struct {
	ID            string    `json:"id"`
	HotelID       string    `json:"hotel_id"`
	NameEn        string    `json:"name_en"`
	NameTh        string    `json:"name_th"`
	DescriptionEn string    `json:"description_en,omitempty"`
	DescriptionTh string    `json:"description_th,omitempty"`
	MaxAdults     int       `json:"max_adults"`
	MaxChildren   int       `json:"max_children"`
	RoomSize      *float64  `json:"room_size,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
