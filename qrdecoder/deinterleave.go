package qrdecoder

import (
	"fmt"

	"github.com/corvidlabs/qrdecode/qrtables"
)

// deinterleaveBlocks splits the zig-zag codeword stream into per-block
// data and error-correction buffers, undoing the QR interleaving layout
// "B0D0 B1D0 B2D0 B0D1 B1D1 B2D1 ... B0E0 B1E0 ..." column by column, data
// words before error words, shorter blocks finishing early.
func (s *Symbol) deinterleaveBlocks() error {
	groups, err := qrtables.ECBlocks(s.version, s.ecLevel)
	if err != nil {
		return fmt.Errorf("qrdecoder: %w", err)
	}

	stream := s.unfoldModuleStream()
	pos := 0
	next := func() byte {
		b := stream[pos]
		pos++
		return b
	}

	var blocks []block
	maxK, maxEC := 0, 0
	for _, g := range groups {
		for i := 0; i < g.Count; i++ {
			blocks = append(blocks, block{data: make([]byte, g.K), ec: make([]byte, g.N-g.K)})
		}
		if g.K > maxK {
			maxK = g.K
		}
		if g.N-g.K > maxEC {
			maxEC = g.N - g.K
		}
	}

	fill := func(wordIdx int, isError bool) {
		blockIdx := 0
		for _, g := range groups {
			groupLen := g.K
			if isError {
				groupLen = g.N - g.K
			}
			if wordIdx == groupLen {
				blockIdx += g.Count
				continue
			}
			for i := 0; i < g.Count; i++ {
				if isError {
					blocks[blockIdx].ec[wordIdx] = next()
				} else {
					blocks[blockIdx].data[wordIdx] = next()
				}
				blockIdx++
			}
		}
	}

	for wordIdx := 0; wordIdx < maxK; wordIdx++ {
		fill(wordIdx, false)
	}
	for wordIdx := 0; wordIdx < maxEC; wordIdx++ {
		fill(wordIdx, true)
	}

	s.blocks = blocks
	return nil
}
