// Package qrdecoder turns a square QR module matrix into its decoded text
// payload: version determination, function-pattern masking, BCH-protected
// format recovery, unmasking, zig-zag codeword unfolding, block
// de-interleaving, and segment decoding for the numeric, alphanumeric,
// and 8-bit-byte modes. Data blocks are taken as already error-free;
// Reed-Solomon correction over them is not performed here.
package qrdecoder

import (
	"fmt"

	"github.com/corvidlabs/qrdecode/qrtables"
)

// Result carries the decoded payload plus the symbol metadata recovered
// along the way, for diagnostics.
type Result struct {
	Text        string
	Version     int
	ECLevel     qrtables.ECLevel
	MaskPattern int
}

// Decoder runs the QR decoding pipeline against an already-loaded module
// matrix. It holds no state between calls; a single instance may be
// reused, and is safe for concurrent use on distinct Symbols. Decode
// modifies the Symbol it is given in place (it stores the function mask
// and unmasks the matrix), so decoding the same Symbol a second time does
// not give the same result.
type Decoder struct {
	// Verbose, when true, prints the symbol's version and size and the
	// decoded format information to stdout. Diagnostic only: it never
	// affects the decoded result.
	Verbose bool
}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode runs the full pipeline against sym: version was already fixed
// at load time, so this computes alignment centres, the function-pattern
// mask, the format information, unmasks the data, de-interleaves blocks,
// and decodes segments.
func (d *Decoder) Decode(sym *Symbol) (*Result, error) {
	if d.Verbose {
		fmt.Printf("decoding version %d symbol (%dx%d)\n", sym.version, sym.size, sym.size)
	}

	sym.computeFunctionMask()

	if err := sym.decodeFormat(); err != nil {
		return nil, err
	}
	if d.Verbose {
		fmt.Printf("format: ec_level=%v mask_pattern=%d\n", sym.ecLevel, sym.maskPattern)
	}

	sym.unmask()

	if err := sym.deinterleaveBlocks(); err != nil {
		return nil, err
	}

	text, err := sym.decodeSegments()
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:        text,
		Version:     sym.version,
		ECLevel:     sym.ecLevel,
		MaskPattern: sym.maskPattern,
	}, nil
}

// DecodeRows is a convenience wrapper combining LoadRows and Decode.
func (d *Decoder) DecodeRows(rows []string) (*Result, error) {
	sym, err := LoadRows(rows)
	if err != nil {
		return nil, err
	}
	return d.Decode(sym)
}

// DecodeFile is a convenience wrapper combining LoadFile and Decode.
func (d *Decoder) DecodeFile(path string) (*Result, error) {
	sym, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return d.Decode(sym)
}
