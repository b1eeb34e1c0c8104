package qrdecoder

import (
	"errors"
	"fmt"
)

var (
	// ErrFormatUnrecoverable is returned when neither format-information
	// copy survives BCH correction.
	ErrFormatUnrecoverable = errors.New("format information unrecoverable")
	// ErrFormatsDisagree is returned when both format-information copies
	// decode successfully but to different values.
	ErrFormatsDisagree = errors.New("format information copies disagree")
	// ErrUnsupportedSegmentMode is returned when a segment's mode
	// indicator names a mode this decoder doesn't implement (Kanji, ECI,
	// FNC1, structured append, or a reserved value).
	ErrUnsupportedSegmentMode = errors.New("unsupported segment mode")
	// ErrBitstreamUnderflow is returned when a segment declares more
	// characters than remain in the bitstream, or when the bitstream ends
	// inside a character-count indicator.
	ErrBitstreamUnderflow = errors.New("bitstream underflow")
	// ErrCharsetOverflow is returned when a decoded numeric or
	// alphanumeric group's value is above the largest valid value for that
	// group (999, 99 or 9 for numeric; 45*45-1 or 44 for alphanumeric).
	ErrCharsetOverflow = errors.New("charset overflow")
)

// InvalidMatrixError reports a malformed input matrix, with the
// offending row/column when one is identifiable.
type InvalidMatrixError struct {
	Reason   string
	Row, Col int
	HasCoord bool
}

func (e *InvalidMatrixError) Error() string {
	if e.HasCoord {
		return fmt.Sprintf("invalid qr matrix: %s (row %d, col %d)", e.Reason, e.Row, e.Col)
	}
	return fmt.Sprintf("invalid qr matrix: %s", e.Reason)
}

// Is allows errors.Is(err, ErrInvalidMatrix) to match any *InvalidMatrixError.
func (e *InvalidMatrixError) Is(target error) bool {
	return target == ErrInvalidMatrix
}

// ErrInvalidMatrix is the sentinel matched by every *InvalidMatrixError.
var ErrInvalidMatrix = errors.New("invalid qr matrix")
