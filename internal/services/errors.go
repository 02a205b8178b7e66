// Package services defines the business logic for the painting catalog.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; the
// handler layer translates them into the API failure kinds that drive the
// HTTP response.
package services

import "errors"

var (
	// ErrPaintingNotFound indicates that the requested painting does not
	// exist or has been removed from the catalog.
	ErrPaintingNotFound = errors.New("painting not found")

	// ErrTitleRequired is returned when a create request carries no title in
	// either language.
	ErrTitleRequired = errors.New("title is required")

	// ErrDescriptionRequired is returned when a create request carries no
	// description in either language.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrInvalidPrice is returned when the price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("width and height must be positive")

	// ErrNoFields is returned when an update request changes nothing.
	ErrNoFields = errors.New("at least one field is required")
)
