package errors

import (
	"context"
	"errors"
	"net"
)

// MapRequestError maps transport errors from a backend call to AppError instances.
// It handles:
// - context.Canceled → Canceled
// - context.DeadlineExceeded and net timeouts → Timeout
// - AppError values are returned unchanged
// - anything else → Backend.
func MapRequestError(err error, op string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeCanceled, op+" canceled")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeTimeout, op+" timed out")
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Wrap(err, ErrCodeTimeout, op+" timed out")
	}

	return Wrap(err, ErrCodeBackend, op+" failed")
}
