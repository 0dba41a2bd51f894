package host

import "errors"

// ErrHostFinalized is returned (or panicked, for stage declarations) when a
// Host is used after Run or Handler consumed it. The Accumulating phase is
// single-use; there is no way back from Finalizing.
var ErrHostFinalized = errors.New("host: already finalized")
