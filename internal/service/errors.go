package service

import "errors"

// Failure categories for the listing core. Mutations roll back and return
// one of these (wrapped with detail); handlers translate them to HTTP
// status codes with errors.Is.
var (
	// ErrNotFound: the requested venue, artist or show id has no row.
	ErrNotFound = errors.New("not found")

	// ErrValidation: a required input field is missing or malformed,
	// including unparseable start times.
	ErrValidation = errors.New("invalid input")

	// ErrReferential: a show points at a missing artist/venue, or a venue
	// delete was attempted while shows still reference it.
	ErrReferential = errors.New("referential integrity violation")

	// ErrPersistence: the store rejected the write for any other reason.
	ErrPersistence = errors.New("persistence failure")
)
