package wordcount

import "errors"

var (
	ErrInvalidResultCount = errors.New("number of results must be a positive integer")
	ErrUnknownTieBreak    = errors.New("unknown tie-break order")
)
