package domain

// OptionScope separates the hotel amenity catalog from the room
// feature catalog.
type OptionScope string

const (
	ScopeHotel OptionScope = "hotel"
	ScopeRoom  OptionScope = "room"
)

func (s OptionScope) Valid() bool { return s == ScopeHotel || s == ScopeRoom }

// Option is one catalog entry, linkable to any entity of its scope.
type Option struct {
	ID       string      `json:"id"`
	Scope    OptionScope `json:"scope"`
	NameEn   string      `json:"name_en"`
	NameTh   string      `json:"name_th"`
	Category string      `json:"category,omitempty"`
	IsActive bool        `json:"is_active"`
}
