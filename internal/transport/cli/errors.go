package cli

import (
	"errors"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
)

const (
	levelError   = "Error"
	levelWarning = "Warning"
)

// describeError converts errors to the line shown to the user.
func describeError(err error) (level, msg string) {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		return levelWarning, "Order is empty"

	case errors.Is(err, domain.ErrProductNotFound):
		return levelError, "Product not found"

	case errors.Is(err, domain.ErrStorage):
		return levelError, "storage unavailable: " + err.Error()

	default:
		return levelError, err.Error()
	}
}
