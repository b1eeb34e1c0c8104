package qrref

import "github.com/corvidlabs/qrdecode/qrtables"

// canvas is the module matrix under construction plus the function-pattern
// map that keeps data placement away from reserved modules. The reserved
// regions are drawn to match the decoder's function mask exactly; any
// mismatch would shift the zig-zag stream by a module and garble every
// codeword after it.
type canvas struct {
	size       int
	version    int
	modules    [][]bool
	isFunction [][]bool
}

func newCanvas(version int) *canvas {
	size := qrtables.Size(version)
	cv := &canvas{size: size, version: version}
	cv.modules = make([][]bool, size)
	cv.isFunction = make([][]bool, size)
	for i := range cv.modules {
		cv.modules[i] = make([]bool, size)
		cv.isFunction[i] = make([]bool, size)
	}

	cv.drawFinderBlocks()
	cv.drawTiming()
	cv.drawAlignment()
	cv.drawVersionInfo()

	// Dark module. Its slot is already reserved by the SW finder block.
	cv.modules[size-8][8] = true

	return cv
}

// finderDark reports the pixel of the 7x7 finder pattern at local (i, j):
// a dark ring with a dark 3x3 core.
func finderDark(i, j int) bool {
	return i == 0 || i == 6 || j == 0 || j == 6 || (i >= 2 && i <= 4 && j >= 2 && j <= 4)
}

// drawFinderBlocks reserves the three corner regions: each covers the 7x7
// finder, its light separator, and the adjacent format strip, giving the
// same 9x9 / 9x8 / 8x9 footprints the decoder masks off.
func (cv *canvas) drawFinderBlocks() {
	size := cv.size
	for i := 0; i <= qrtables.FinderSize; i++ {
		for j := 0; j <= qrtables.FinderSize; j++ {
			// NW corner.
			cv.isFunction[i][j] = true
			cv.modules[i][j] = i < 7 && j < 7 && finderDark(i, j)

			if j < qrtables.FinderSize {
				jm := size - qrtables.FinderSize + j
				// NE corner.
				cv.isFunction[i][jm] = true
				cv.modules[i][jm] = i < 7 && jm >= size-7 && finderDark(i, jm-(size-7))
				// SW corner.
				cv.isFunction[jm][i] = true
				cv.modules[jm][i] = jm >= size-7 && i < 7 && finderDark(jm-(size-7), i)
			}
		}
	}
}

func (cv *canvas) drawTiming() {
	for i := qrtables.FinderSize; i < cv.size-qrtables.FinderSize; i++ {
		dark := i%2 == 0
		cv.isFunction[qrtables.TimingLine][i] = true
		cv.modules[qrtables.TimingLine][i] = dark
		cv.isFunction[i][qrtables.TimingLine] = true
		cv.modules[i][qrtables.TimingLine] = dark
	}
}

// drawAlignment draws every 5x5 alignment pattern: dark border, light
// inner ring, dark centre. Patterns centred on the timing lines overlap
// them with identical module values.
func (cv *canvas) drawAlignment() {
	for _, centre := range qrtables.AlignmentCentres(cv.version) {
		row, col := centre[0], centre[1]
		for di := -2; di <= 2; di++ {
			for dj := -2; dj <= 2; dj++ {
				dist := di
				if dist < 0 {
					dist = -dist
				}
				if dj > dist {
					dist = dj
				} else if -dj > dist {
					dist = -dj
				}
				cv.isFunction[row+di][col+dj] = true
				cv.modules[row+di][col+dj] = dist != 1
			}
		}
	}
}

func (cv *canvas) drawVersionInfo() {
	if cv.version < qrtables.VersionBlockStartsAtVersion {
		return
	}
	bits := versionInfoBits(cv.version)
	for i := 0; i < 18; i++ {
		dark := bits>>uint(i)&1 == 1
		row, col := i/3, cv.size-11+i%3
		cv.isFunction[row][col] = true
		cv.modules[row][col] = dark
		cv.isFunction[col][row] = true
		cv.modules[col][row] = dark
	}
}

// placeData walks the data modules in the zig-zag order (column pairs from
// the right edge, alternating direction, vertical timing column skipped)
// and writes the codeword bits XORed with the mask pattern. Modules past
// the end of the codewords are remainder bits, placed as masked zeros.
func (cv *canvas) placeData(codewords []byte, maskPattern int) {
	maskFn := qrtables.Masks[maskPattern]
	idx, total := 0, len(codewords)*8

	goUp := true
	for nominalColumn := cv.size - 1; nominalColumn > 0; nominalColumn -= 2 {
		columnRight := nominalColumn
		if columnRight <= qrtables.TimingLine {
			columnRight--
		}

		rowStart, rowEnd, rowStep := cv.size-1, -1, -1
		if !goUp {
			rowStart, rowEnd, rowStep = 0, cv.size, 1
		}

		for row := rowStart; row != rowEnd; row += rowStep {
			for i := 0; i < 2; i++ {
				col := columnRight - i
				if cv.isFunction[row][col] {
					continue
				}
				bit := false
				if idx < total {
					bit = codewords[idx/8]>>uint(7-idx%8)&1 == 1
					idx++
				}
				cv.modules[row][col] = bit != maskFn(row, col)
			}
		}

		goUp = !goUp
	}
}

// drawFormat writes both masked 15-bit format copies. Bit 14 (the first
// EC-level bit) lands at (8,0) and at (size-1,8); bit 0 at (0,8) and at
// (8,size-1).
func (cv *canvas) drawFormat(level qrtables.ECLevel, maskPattern int) {
	bits := FormatInfoBits(level, maskPattern)
	size := cv.size
	bit := func(i int) bool { return bits>>uint(i)&1 == 1 }

	// NW copy.
	for i := 0; i <= 5; i++ {
		cv.modules[i][8] = bit(i)
	}
	cv.modules[7][8] = bit(6)
	cv.modules[8][8] = bit(7)
	cv.modules[8][7] = bit(8)
	for i := 9; i < 15; i++ {
		cv.modules[8][14-i] = bit(i)
	}

	// SWNE copy.
	for i := 0; i < 8; i++ {
		cv.modules[8][size-1-i] = bit(i)
	}
	for i := 8; i < 15; i++ {
		cv.modules[size-15+i][8] = bit(i)
	}
}

// rows renders the matrix as the decoder's on-disk format: one string per
// row, '1' for dark.
func (cv *canvas) rows() []string {
	out := make([]string, cv.size)
	for r, row := range cv.modules {
		b := make([]byte, cv.size)
		for c, dark := range row {
			if dark {
				b[c] = '1'
			} else {
				b[c] = '0'
			}
		}
		out[r] = string(b)
	}
	return out
}
