package qrdecoder

import "github.com/corvidlabs/qrdecode/qrtables"

// computeFunctionMask marks every module that belongs to a function
// pattern (finder+separator, timing, alignment, version blocks, and the
// dark module, which the SW finder block already covers) and therefore
// must not be unmasked or read as data.
func (s *Symbol) computeFunctionMask() {
	size := s.size
	fs := qrtables.FinderSize

	mask := make([][]bool, size)
	for i := range mask {
		mask[i] = make([]bool, size)
	}

	// Finder patterns (NW, NE, SW) plus their separators, mirrored via
	// negative-index arithmetic rewritten as size-relative offsets.
	for i := 0; i <= fs; i++ {
		for j := 0; j < fs; j++ {
			jMirror := size - fs + j
			mask[i][j] = true
			mask[i][jMirror] = true
			mask[jMirror][i] = true
		}
		mask[i][fs] = true
	}

	// Timing patterns.
	for i := fs; i < size-fs; i++ {
		mask[qrtables.TimingLine][i] = true
		mask[i][qrtables.TimingLine] = true
	}

	if s.version < qrtables.AlignmentStartsAtVersion {
		s.fnMask = mask
		return
	}

	for _, centre := range qrtables.AlignmentCentres(s.version) {
		row, col := centre[0], centre[1]
		for i := row - 2; i <= row+2; i++ {
			for j := col - 2; j <= col+2; j++ {
				mask[i][j] = true
			}
		}
	}

	if s.version < qrtables.VersionBlockStartsAtVersion {
		s.fnMask = mask
		return
	}

	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			jMirror := size - fs - 3 + j
			mask[jMirror][i] = true
			mask[i][jMirror] = true
		}
	}

	s.fnMask = mask
}
