package domain

import (
	"errors"
	"fmt"
)

// Error codes surfaced in API responses. Handlers map the typed errors
// below onto these; nothing else should invent codes ad hoc.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidOptionID  = "INVALID_OPTION_ID"
	CodeDuplicateLang    = "DUPLICATE_LANGUAGE"
	CodeDuplicateImage   = "DUPLICATE_IMAGE_URL"
	CodeCoverRequired    = "COVER_REQUIRED"
	CodeMultipleCovers   = "MULTIPLE_COVERS"
	CodeInvalidContent   = "INVALID_CONTENT_TYPE"
	CodeInvalidSlug      = "INVALID_SLUG"
	CodeReservedSlug     = "RESERVED_SLUG"
	CodeSeasonOverlap    = "SEASON_OVERLAP"
	CodeOverrideOverlap  = "OVERRIDE_OVERLAP"
	CodeRoomExists       = "ROOM_EXISTS"
	CodeHotelExists      = "HOTEL_EXISTS"
	CodeCountryExists    = "COUNTRY_EXISTS"
	CodeCityExists       = "CITY_EXISTS"
	CodePageExists       = "PAGE_EXISTS"
	CodeSlugExists       = "SLUG_EXISTS"
	CodeDuplicateEntry   = "DUPLICATE_ENTRY"
	CodeHotelNotFound    = "HOTEL_NOT_FOUND"
	CodeRoomNotFound     = "ROOM_NOT_FOUND"
	CodeCityNotFound     = "CITY_NOT_FOUND"
	CodeCountryNotFound  = "COUNTRY_NOT_FOUND"
	CodePageNotFound     = "PAGE_NOT_FOUND"
	CodeEntityNotFound   = "ENTITY_NOT_FOUND"
	CodeSeoBatchFailed   = "SEO_BATCH_FAILED"
	CodeImageBatchFailed = "IMAGE_BATCH_FAILED"
	CodeStoreError       = "STORE_ERROR"
)

// ErrNotFound is the sentinel stores return when a row does not exist.
// Services wrap it into a NotFoundError with a concrete code.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a request before any write happens.
type ValidationError struct {
	Code    string
	Field   string
	Message string
	Details any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Code: CodeValidation, Field: field, Message: message}
}

// ConflictError reports a uniqueness or overlap violation.
type ConflictError struct {
	Code    string
	Message string
	Details any
}

func (e *ConflictError) Error() string { return e.Message }

// OverlapDetails names the two price-tier windows that collide.
type OverlapDetails struct {
	First  NamedRange `json:"first"`
	Second NamedRange `json:"second"`
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StoreError wraps an infrastructure failure. The wrapped error stays
// in logs; clients only ever see the generic code.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// ConstraintKind classifies database constraint violations so services
// can translate them without importing driver packages.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
)

// ConstraintError is returned by stores when an insert or update trips
// a schema constraint.
type ConstraintError struct {
	Kind    ConstraintKind
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %s: %s", e.Kind, e.Message)
}

// ConstraintOfKind unwraps err looking for a ConstraintError of the
// given kind.
func ConstraintOfKind(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == kind
}

func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var nf *NotFoundError
	return errors.As(err, &nf)
}
