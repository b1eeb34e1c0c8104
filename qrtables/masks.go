package qrtables

// SegmentMode is the 4-bit mode indicator that precedes a data segment.
type SegmentMode int

const (
	Terminator         SegmentMode = 0b0000
	Numeric            SegmentMode = 0b0001
	Alphanumeric       SegmentMode = 0b0010
	StructuredAppend   SegmentMode = 0b0011
	EightBitByte       SegmentMode = 0b0100
	FNC1FirstPosition  SegmentMode = 0b0101
	ECI                SegmentMode = 0b0111
	Kanji              SegmentMode = 0b1000
	FNC1SecondPosition SegmentMode = 0b1001
)

// MaskFunc reports whether mask pattern p inverts the module at (row, col).
type MaskFunc func(row, col int) bool

// Masks holds the eight fixed QR data-masking patterns, indexed by
// pattern id [0,7].
var Masks = [8]MaskFunc{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i*j)%3+(i+j)%2)%2 == 0 },
}
