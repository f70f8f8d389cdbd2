package runner

import "errors"

// Runner errors.
var (
	// ErrScratchpadFinalized indicates a unit was appended after a final answer.
	ErrScratchpadFinalized = errors.New("runner: scratchpad already holds a final answer")
)
