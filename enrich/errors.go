package enrich

import "errors"

var (
	// ErrProfileNotFound indicates the LinkedIn scrape returned nothing.
	ErrProfileNotFound = errors.New("linkedin profile not found")

	// ErrUserNotFound indicates the GitHub user does not exist or could not be fetched.
	ErrUserNotFound = errors.New("github user not found")
)
