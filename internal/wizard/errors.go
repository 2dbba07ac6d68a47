package wizard

import "errors"

var (
	ErrUnknownSession = errors.New("wizard session not found")
	ErrWrongStep      = errors.New("operation not allowed in current step")
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownFormat  = errors.New("unknown format")

	// ErrSubmitFailed covers every write-side failure during submission.
	// The user sees a generic retry prompt and stays in checkout.
	ErrSubmitFailed = errors.New("order submission failed")
)

// ValidationError carries a translation key for the user-facing alert.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string {
	return e.Key
}

var (
	ErrNotImage      = &ValidationError{Key: "order.file-error"}
	ErrPhotoTooLarge = &ValidationError{Key: "order.file-size-error"}
	ErrMissingFields = &ValidationError{Key: "order.required-error"}
	ErrBadDelivery   = &ValidationError{Key: "order.required-error"}
)
