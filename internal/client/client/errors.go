package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cineia/internal/common"
)

// APIError is returned when the backend answers with success=false.
// It matches common.ErrNotFound.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request (status %d)", e.Status)
	}
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == common.ErrNotFound
}

// mapError folds transport failures into common.ErrNetwork. Backend
// rejections and caller cancellation pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, common.ErrNetwork) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrNetwork, err)
}
