package rank

import "errors"

var (
	// ErrTableRequired is returned when Rank is called without a table.
	ErrTableRequired = errors.New("matcher table required")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")
)
