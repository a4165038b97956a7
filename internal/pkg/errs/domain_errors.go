package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrServiceNotFound    = errors.New("service not found")
	ErrCatalogUnavailable = errors.New("service catalog unavailable")

	// Booking errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrSubmissionFailed    = errors.New("appointment submission failed")
	ErrSlotUnavailable     = errors.New("time slot unavailable")
	ErrInvalidBookingDate  = errors.New("invalid booking date")
	ErrPriceMismatch       = errors.New("total price does not match catalog price")
	ErrDuplicateBooking    = errors.New("duplicate booking request")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
