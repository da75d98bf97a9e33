package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Entity: "Offer", ID: 7}
	if err.Error() != "Offer with id 7 does not exist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("NotFoundError must match ErrNotFound")
	}
	wrapped := fmt.Errorf("update: %w", err)
	var nf *NotFoundError
	if !errors.As(wrapped, &nf) || nf.ID != 7 {
		t.Fatalf("expected NotFoundError through wrapping, got %v", wrapped)
	}
}

func TestInvalidOfferErrorMessage(t *testing.T) {
	if got := (&InvalidOfferError{OfferID: "null"}).Error(); got != "Offer with id null does not exist" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&InvalidOfferError{OfferID: "999"}).Error(); got != "Offer with id 999 does not exist" {
		t.Fatalf("unexpected message %q", got)
	}
}
