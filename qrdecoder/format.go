package qrdecoder

import (
	"fmt"

	"github.com/corvidlabs/qrdecode/bch"
	"github.com/corvidlabs/qrdecode/qrtables"
)

// qrFormatBCH is the BCH(15,5) code, over GF(16), every QR format word is
// protected by.
var qrFormatBCH = mustFormatBCH()

func mustFormatBCH() *bch.Bch {
	b, err := bch.New(4, 5, 3, 0)
	if err != nil {
		panic(err)
	}
	return b
}

// unfoldFormats reads the two redundant 15-bit format-information copies:
// the NW copy (row 8, then column 8) and the SWNE copy (column 8 going up
// from the bottom, then row 8 going right from the left).
func (s *Symbol) unfoldFormats() (nw, swne int) {
	fs := qrtables.FinderSize
	size := s.size

	for i := 0; i < fs; i++ {
		if i != qrtables.TimingLine {
			nw = (nw << 1) | s.matrix[fs][i]
		}
		if i != fs-1 {
			swne = (swne << 1) | s.matrix[size-1-i][fs]
		}
	}

	for i := fs; i >= 0; i-- {
		if i != qrtables.TimingLine {
			nw = (nw << 1) | s.matrix[i][fs]
		}
		if i > 0 {
			swne = (swne << 1) | s.matrix[fs][size-i]
		}
	}

	return nw, swne
}

type decodedFormat struct {
	value       int
	ecLevel     qrtables.ECLevel
	maskPattern int
}

// decodeFormat unmasks and BCH-corrects both format copies, then picks
// the authoritative one: if both decode they must agree, if only one
// decodes it's adopted silently, if neither decodes the format is
// unrecoverable.
func (s *Symbol) decodeFormat() error {
	nw, swne := s.unfoldFormats()

	var valid []decodedFormat
	for _, raw := range []int{nw, swne} {
		masked := raw ^ qrtables.FormatMask
		_, corrected, err := qrFormatBCH.Decode(masked)
		if err != nil {
			continue
		}

		formatData := corrected >> qrtables.FormatECBitLen
		ecBits := formatData >> qrtables.FormatDataMaskBitLen
		maskPattern := formatData & 0b111

		ecLevel, ok := qrtables.ECLevelFromFormatBits(ecBits)
		if !ok {
			continue
		}

		valid = append(valid, decodedFormat{value: corrected, ecLevel: ecLevel, maskPattern: maskPattern})
	}

	if len(valid) == 0 {
		return fmt.Errorf("qrdecoder: %w", ErrFormatUnrecoverable)
	}
	if len(valid) == 2 && valid[0].value != valid[1].value {
		return fmt.Errorf("qrdecoder: %w", ErrFormatsDisagree)
	}

	s.ecLevel = valid[0].ecLevel
	s.maskPattern = valid[0].maskPattern
	return nil
}
