package services

import "errors"

var (
	// ErrMalformedRow marks a row whose field count differs from the header.
	ErrMalformedRow = errors.New("row field count does not match header")
	// ErrUnparsableRating marks a rating that is not a number.
	ErrUnparsableRating = errors.New("rating is not a number")
	// ErrUnparsableReviewCount marks a review count that is not an integer.
	ErrUnparsableReviewCount = errors.New("review count is not an integer")
	// ErrEmptyCategory is returned when an average is requested for a group
	// that has no usable records.
	ErrEmptyCategory = errors.New("category has no matching records")
)
