package qrdecoder

import (
	"fmt"
	"strings"

	"github.com/corvidlabs/qrdecode/qrtables"
)

// bitReader reads an MSB-first bitstream out of a byte slice.
type bitReader struct {
	bytes  []byte
	bitPos int
}

func (r *bitReader) remaining() int {
	return len(r.bytes)*8 - r.bitPos
}

// readBits consumes the next n bits, most-significant first.
func (r *bitReader) readBits(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		byteIdx := r.bitPos / 8
		bitIdx := 7 - r.bitPos%8
		bit := (r.bytes[byteIdx] >> uint(bitIdx)) & 1
		v = v<<1 | int(bit)
		r.bitPos++
	}
	return v
}

// decodeSegments concatenates every block's data codewords into one
// bitstream, then repeatedly decodes segments until a terminator (or
// bitstream exhaustion, an implicit terminator) is reached.
func (s *Symbol) decodeSegments() (string, error) {
	var data []byte
	for _, b := range s.blocks {
		data = append(data, b.data...)
	}

	r := &bitReader{bytes: data}
	var out strings.Builder

	for {
		if r.remaining() < 4 {
			break
		}
		mode := qrtables.SegmentMode(r.readBits(4))
		if mode == qrtables.Terminator {
			break
		}

		countBits := qrtables.CharCountBitLen(s.version, mode)
		if r.remaining() < countBits {
			return "", fmt.Errorf("qrdecoder: %w: char count indicator", ErrBitstreamUnderflow)
		}
		count := r.readBits(countBits)

		var segment string
		var err error
		switch mode {
		case qrtables.Numeric:
			segment, err = decodeNumericSegment(r, count)
		case qrtables.Alphanumeric:
			segment, err = decodeAlphanumericSegment(r, count)
		case qrtables.EightBitByte:
			segment, err = decodeEightBitByteSegment(r, count)
		default:
			return "", fmt.Errorf("qrdecoder: %w: mode %04b", ErrUnsupportedSegmentMode, int(mode))
		}
		if err != nil {
			return "", err
		}
		out.WriteString(segment)
	}

	return out.String(), nil
}

func decodeNumericSegment(r *bitReader, count int) (string, error) {
	const (
		tripleBits, tripleMax = 10, 999
		doubleBits, doubleMax = 7, 99
		singleBits, singleMax = 4, 9
	)

	rest := count % 3
	needed := tripleBits * (count / 3)
	switch rest {
	case 2:
		needed += doubleBits
	case 1:
		needed += singleBits
	}
	if needed > r.remaining() {
		return "", fmt.Errorf("qrdecoder: %w: numeric segment", ErrBitstreamUnderflow)
	}

	var out strings.Builder
	for i := 0; i < count-rest; i += 3 {
		v := r.readBits(tripleBits)
		if v > tripleMax {
			return "", fmt.Errorf("qrdecoder: %w: numeric triple %d", ErrCharsetOverflow, v)
		}
		fmt.Fprintf(&out, "%03d", v)
	}
	switch rest {
	case 2:
		v := r.readBits(doubleBits)
		if v > doubleMax {
			return "", fmt.Errorf("qrdecoder: %w: numeric pair %d", ErrCharsetOverflow, v)
		}
		fmt.Fprintf(&out, "%02d", v)
	case 1:
		v := r.readBits(singleBits)
		if v > singleMax {
			return "", fmt.Errorf("qrdecoder: %w: numeric digit %d", ErrCharsetOverflow, v)
		}
		fmt.Fprintf(&out, "%d", v)
	}
	return out.String(), nil
}

func decodeAlphanumericSegment(r *bitReader, count int) (string, error) {
	const (
		pairBits, pairMax     = 11, 45*45 - 1
		singleBits, singleMax = 6, 44
		charsetLen            = 45
	)

	needed := pairBits*(count/2) + (count%2)*singleBits
	if needed > r.remaining() {
		return "", fmt.Errorf("qrdecoder: %w: alphanumeric segment", ErrBitstreamUnderflow)
	}

	var out strings.Builder
	for i := 0; i < count-count%2; i += 2 {
		v := r.readBits(pairBits)
		if v > pairMax {
			return "", fmt.Errorf("qrdecoder: %w: alphanumeric pair %d", ErrCharsetOverflow, v)
		}
		out.WriteByte(qrtables.AlphanumCharset[v/charsetLen])
		out.WriteByte(qrtables.AlphanumCharset[v%charsetLen])
	}
	if count%2 == 1 {
		v := r.readBits(singleBits)
		if v > singleMax {
			return "", fmt.Errorf("qrdecoder: %w: alphanumeric char %d", ErrCharsetOverflow, v)
		}
		out.WriteByte(qrtables.AlphanumCharset[v])
	}
	return out.String(), nil
}

func decodeEightBitByteSegment(r *bitReader, count int) (string, error) {
	needed := 8 * count
	if needed > r.remaining() {
		return "", fmt.Errorf("qrdecoder: %w: 8-bit byte segment", ErrBitstreamUnderflow)
	}

	raw := make([]byte, count)
	for i := 0; i < count; i++ {
		raw[i] = byte(r.readBits(8))
	}
	return string(raw), nil
}
