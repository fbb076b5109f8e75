package derive

import "errors"

var (
	// ErrNoCompletion is returned when the model call failed or returned nothing.
	ErrNoCompletion = errors.New("no completion returned")
	// ErrMalformedResponse is returned when a structured answer does not parse.
	ErrMalformedResponse = errors.New("malformed model response")
)
