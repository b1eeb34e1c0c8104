package qrdecoder

import "github.com/corvidlabs/qrdecode/qrtables"

// unmask XORs every non-function module with the decoded mask pattern's
// predicate. Function-pattern modules (including the format strips
// themselves) are left untouched.
func (s *Symbol) unmask() {
	maskFn := qrtables.Masks[s.maskPattern]
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			if s.fnMask[row][col] {
				continue
			}
			if maskFn(row, col) {
				s.matrix[row][col] ^= 1
			}
		}
	}
}
