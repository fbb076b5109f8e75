package jobs

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDependency is returned when a job runs without a service it needs.
	ErrMissingDependency = errors.New("missing job dependency")

	// ErrUnknownJob is returned for a job name that is not in the catalog.
	ErrUnknownJob = errors.New("unknown job")
)

func missing(job, dep string) error {
	return fmt.Errorf("%s: %w: %s", job, ErrMissingDependency, dep)
}
