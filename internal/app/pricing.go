package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/boatbie14/funch-hotel-backend-v2/internal/domain"
)

const (
	tierNameMin = 2
	tierNameMax = 100
	tierNoteMax = 500
)

// PricingInput is the pricing slice of a room payload: one mandatory
// base card plus optional seasonal and override tiers.
type PricingInput struct {
	Base      domain.WeekPrices
	Seasons   []domain.SeasonPrice
	Overrides []domain.OverridePrice
}

// ValidatePricing checks every tier's shape, then the no-overlap
// invariants: seasonal tiers may never share a day, and active override
// tiers may never share a day. Persisted tiers of the same room take
// part in the overlap checks; pass nil for a brand-new room.
func ValidatePricing(in PricingInput, existingSeasons []domain.SeasonPrice, existingOverrides []domain.OverridePrice) error {
	if err := validateWeekPrices("base_price", in.Base); err != nil {
		return err
	}

	for i, s := range in.Seasons {
		prefix := fmt.Sprintf("season_base_prices[%d]", i)
		if err := validateTierName(prefix, s.Name); err != nil {
			return err
		}
		if err := validateRange(prefix, s.DateRange); err != nil {
			return err
		}
		if err := validateWeekPrices(prefix, s.WeekPrices); err != nil {
			return err
		}
	}

	for i, o := range in.Overrides {
		prefix := fmt.Sprintf("override_prices[%d]", i)
		if err := validateTierName(prefix, o.Name); err != nil {
			return err
		}
		if err := validateRange(prefix, o.DateRange); err != nil {
			return err
		}
		if !validPrice(o.Price) || o.Price <= 0 {
			return domain.NewValidationError(prefix+".price", "price must be greater than 0 with at most 2 decimal places")
		}
		if utf8.RuneCountInString(o.Note) > tierNoteMax {
			return domain.NewValidationError(prefix+".note", fmt.Sprintf("note must be at most %d characters", tierNoteMax))
		}
	}

	ranges := make([]domain.NamedRange, 0, len(existingSeasons)+len(in.Seasons))
	for _, s := range existingSeasons {
		ranges = append(ranges, s.Named())
	}
	for _, s := range in.Seasons {
		ranges = append(ranges, s.Named())
	}
	if a, b, found := domain.FindFirstOverlap(ranges); found {
		return &domain.ConflictError{
			Code:    domain.CodeSeasonOverlap,
			Message: fmt.Sprintf("season %q overlaps season %q", a.Name, b.Name),
			Details: domain.OverlapDetails{First: a, Second: b},
		}
	}

	// Inactive overrides are exempt: they may overlap anything.
	active := make([]domain.NamedRange, 0, len(existingOverrides)+len(in.Overrides))
	for _, o := range existingOverrides {
		if o.IsActive {
			active = append(active, o.Named())
		}
	}
	for _, o := range in.Overrides {
		if o.IsActive {
			active = append(active, o.Named())
		}
	}
	if a, b, found := domain.FindFirstOverlap(active); found {
		return &domain.ConflictError{
			Code:    domain.CodeOverrideOverlap,
			Message: fmt.Sprintf("override %q overlaps override %q", a.Name, b.Name),
			Details: domain.OverlapDetails{First: a, Second: b},
		}
	}
	return nil
}

func validateWeekPrices(prefix string, w domain.WeekPrices) error {
	for _, dp := range w.Days() {
		if !validPrice(dp.Price) || dp.Price < 0 {
			return domain.NewValidationError(prefix+"."+dp.Field, "price must be at least 0 with at most 2 decimal places")
		}
	}
	return nil
}

func validateTierName(prefix, name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < tierNameMin || n > tierNameMax {
		return domain.NewValidationError(prefix+".name", fmt.Sprintf("name must be %d-%d characters", tierNameMin, tierNameMax))
	}
	return nil
}

func validateRange(prefix string, r domain.DateRange) error {
	if !r.Valid() {
		return domain.NewValidationError(prefix+".end_date", "end_date must be on or after start_date")
	}
	return nil
}

// validPrice rejects non-finite values and more than 2 decimal places.
// The decimal check renders the float without scientific notation and
// counts digits after the point.
func validPrice(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s)-i-1 <= 2
	}
	return true
}
