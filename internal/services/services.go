package services

import (
	"time"

	"github.com/vytor/jeeprep/internal/errors"
)

// Observer receives submission outcomes, typically Prometheus counters.
type Observer interface {
	ObserveSubmission(correct bool)
	ObserveCache(hit bool)
}

type nopObserver struct{}

func (nopObserver) ObserveSubmission(bool) {}
func (nopObserver) ObserveCache(bool)      {}

// Clock returns the current time. Tests replace it to pin "today".
type Clock func() time.Time

// storageError maps a repository failure into an AppError, keeping not-found distinct.
func storageError(op, resource string, id any, err error) error {
	if errors.IsNotFound(err) {
		return errors.NewNotFoundError(resource, id)
	}
	return errors.NewStorageError(op, err)
}
