package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product ID is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidCoordinates is returned for non-finite or out-of-range coordinates
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogUnavailable is returned when the product catalog cannot be reached
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrPricingUnavailable is returned when the pricing store cannot be reached
	ErrPricingUnavailable = errors.New("pricing store unavailable")
)
