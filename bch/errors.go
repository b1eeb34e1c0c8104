package bch

import "errors"

// ErrBchDecodingFailure is returned when Decode cannot find a valid
// correction: the error-locator polynomial exceeds the correction
// capacity, or its roots don't account for every error it claims.
var ErrBchDecodingFailure = errors.New("bch decoding failure")
