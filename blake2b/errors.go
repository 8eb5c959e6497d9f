package blake2b

import "errors"

// Library errors. The hashing path never panics on user input; every
// invalid Params value surfaces one of these at State-construction time,
// and a finalized State rejects further writes with ErrUpdateAfterFinalize.
var (
	ErrParameterOutOfRange = errors.New("blake2b: parameter out of range")
	ErrUpdateAfterFinalize = errors.New("blake2b: update called on a finalized state")
)
