package catalog

import "errors"

var (
	// ErrContentNotFound indicates the content or title is not in the catalog.
	ErrContentNotFound = errors.New("content not found")

	// ErrAccessDenied indicates a user without a subscription asked for
	// subscription-only content.
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicate indicates the seed supplied two items with the same title.
	ErrDuplicate = errors.New("duplicate title")
)
