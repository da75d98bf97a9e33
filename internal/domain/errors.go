package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// NotFoundError is a NotFound failure carrying the entity kind and id,
// e.g. "Offer with id 7 does not exist". It matches ErrNotFound under
// errors.Is so callers can branch without parsing the message.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidOfferError reports a product carrying a missing or unresolvable
// offer reference. OfferID is "null" when no id was supplied at all.
type InvalidOfferError struct {
	OfferID string
}

func (e *InvalidOfferError) Error() string {
	return fmt.Sprintf("Offer with id %s does not exist", e.OfferID)
}
