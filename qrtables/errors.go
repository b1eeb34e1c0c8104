package qrtables

import "errors"

// ErrUnsupportedVersion is returned for a version outside [MinVersion, MaxVersion].
var ErrUnsupportedVersion = errors.New("unsupported qr version")
