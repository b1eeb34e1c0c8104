package qrdecoder

import "github.com/corvidlabs/qrdecode/qrtables"

// unfoldModuleStream walks the data modules in the QR zig-zag order and
// returns the resulting codeword bytes. Column pairs are visited from the
// right edge leftward, alternating vertical direction each pair; within a
// pair the right member is read before the left; the vertical timing
// column is skipped by shifting the pair one column left.
func (s *Symbol) unfoldModuleStream() []byte {
	var bytes []byte

	goUp := true
	bitPos := 7
	var cur byte

	for nominalColumn := s.size - 1; nominalColumn > 0; nominalColumn -= 2 {
		columnRight := nominalColumn
		if columnRight <= qrtables.TimingLine {
			columnRight--
		}

		rowStart, rowEnd, rowStep := s.size-1, -1, -1
		if !goUp {
			rowStart, rowEnd, rowStep = 0, s.size, 1
		}

		for row := rowStart; row != rowEnd; row += rowStep {
			for i := 0; i < 2; i++ {
				col := columnRight - i
				if s.fnMask[row][col] {
					continue
				}

				if s.matrix[row][col] != 0 {
					cur |= 1 << uint(bitPos)
				}
				bitPos--
				if bitPos == -1 {
					bytes = append(bytes, cur)
					cur = 0
					bitPos = 7
				}
			}
		}

		goUp = !goUp
	}

	return bytes
}
