package domain

// WeekPrices holds one nightly price per weekday. Field order follows
// the wire format, Sunday first.
type WeekPrices struct {
	Sun float64 `json:"price_sun"`
	Mon float64 `json:"price_mon"`
	Tue float64 `json:"price_tue"`
	Wed float64 `json:"price_wed"`
	Thu float64 `json:"price_thu"`
	Fri float64 `json:"price_fri"`
	Sat float64 `json:"price_sat"`
}

// DayPrice pairs a weekday price with its wire field name, so
// validation can point at the offending field.
type DayPrice struct {
	Field string
	Price float64
}

func (w WeekPrices) Days() [7]DayPrice {
	return [7]DayPrice{
		{"price_sun", w.Sun},
		{"price_mon", w.Mon},
		{"price_tue", w.Tue},
		{"price_wed", w.Wed},
		{"price_thu", w.Thu},
		{"price_fri", w.Fri},
		{"price_sat", w.Sat},
	}
}

// BasePrice is the default weekly price card of a room. Exactly one
// per room.
type BasePrice struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	WeekPrices
}

// SeasonPrice replaces the base card for a named date window.
type SeasonPrice struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
	DateRange
	WeekPrices
	IsActive bool `json:"is_active"`
}

// OverridePrice pins a single flat price over a date window. Overrides
// beat seasons, seasons beat the base card.
type OverridePrice struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
	DateRange
	Price       float64 `json:"price"`
	IsPromotion bool    `json:"is_promotion"`
	IsActive    bool    `json:"is_active"`
	Note        string  `json:"note,omitempty"`
}

func (s SeasonPrice) Named() NamedRange   { return NamedRange{Name: s.Name, DateRange: s.DateRange} }
func (o OverridePrice) Named() NamedRange { return NamedRange{Name: o.Name, DateRange: o.DateRange} }
