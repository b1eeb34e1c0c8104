package qrdecoder

import (
	"bufio"
	"fmt"
	"os"

	"github.com/corvidlabs/qrdecode/qrtables"
)

// block holds one de-interleaved (data, error-correction) codeword pair.
type block struct {
	data []byte
	ec   []byte
}

// Symbol is the in-flight decoding state: the raw matrix plus everything
// derived from it as the pipeline progresses.
type Symbol struct {
	size    int
	version int
	matrix  [][]int
	fnMask  [][]bool

	ecLevel     qrtables.ECLevel
	maskPattern int

	blocks []block
}

// LoadRows builds a Symbol from row strings, each exactly size characters
// of '0' or '1'. Fails with *InvalidMatrixError on any deviation.
func LoadRows(rows []string) (*Symbol, error) {
	height := len(rows)
	if height == 0 {
		return nil, &InvalidMatrixError{Reason: "matrix is empty"}
	}

	matrix := make([][]int, height)
	for r, row := range rows {
		if len(row) != height {
			return nil, &InvalidMatrixError{Reason: "qr matrix needs to be square", Row: r, HasCoord: true}
		}

		matrix[r] = make([]int, height)
		for c, ch := range row {
			var v int
			switch ch {
			case '0':
				v = 0
			case '1':
				v = 1
			default:
				return nil, &InvalidMatrixError{Reason: "qr module values should be 0 or 1", Row: r, Col: c, HasCoord: true}
			}
			matrix[r][c] = v
		}
	}

	version, ok := qrtables.VersionFromSize(height)
	if !ok {
		return nil, &InvalidMatrixError{Reason: fmt.Sprintf("size %d is not a valid qr symbol size", height)}
	}

	return &Symbol{size: height, version: version, matrix: matrix}, nil
}

// LoadFile reads a QR matrix from a text file, one row per line.
func LoadFile(path string) (*Symbol, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qrdecoder: %w", err)
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("qrdecoder: %w", err)
	}

	return LoadRows(rows)
}
