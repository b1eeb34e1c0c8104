package qrtables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeAndVersionRoundTrip(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		size := Size(v)
		got, ok := VersionFromSize(size)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}

	_, ok := VersionFromSize(22)
	assert.False(t, ok)
}

func TestECLevelFormatBits(t *testing.T) {
	cases := map[ECLevel]int{Low: 0b01, Medium: 0b00, Quartile: 0b11, High: 0b10}
	for level, bits := range cases {
		assert.Equal(t, bits, level.FormatBits())
		got, ok := ECLevelFromFormatBits(bits)
		require.True(t, ok)
		assert.Equal(t, level, got)
	}
}

func TestECBlocks_Version1(t *testing.T) {
	groups, err := ECBlocks(1, Medium)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, BlockGroup{Count: 1, N: 26, K: 16, T: 5}, groups[0])
}

func TestECBlocks_MultiGroupVersion(t *testing.T) {
	// Version 5, Quartile has two groups per the published table: 2 blocks
	// of (n=33,k=15) and 2 blocks of (n=34,k=16).
	groups, err := ECBlocks(5, Quartile)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 15, groups[0].K)
	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, 16, groups[1].K)

	total := 0
	for _, g := range groups {
		total += g.Count * g.K
	}
	assert.Equal(t, 2*15+2*16, total)
}

func TestECBlocks_UnsupportedVersion(t *testing.T) {
	_, err := ECBlocks(41, Low)
	require.Error(t, err)
}

func TestAlignmentPatterns(t *testing.T) {
	assert.Empty(t, AlignmentPatterns(1))
	assert.Equal(t, []int{6, 18}, AlignmentPatterns(2))
	assert.Equal(t, []int{6, 22, 38}, AlignmentPatterns(7))
}

func TestAlignmentCentres_ExcludesFinderCorners(t *testing.T) {
	centres := AlignmentCentres(2)
	require.Len(t, centres, 1)
	assert.Equal(t, [2]int{18, 18}, centres[0])
}

func TestCharCountBitLen(t *testing.T) {
	assert.Equal(t, 10, CharCountBitLen(1, Numeric))
	assert.Equal(t, 9, CharCountBitLen(9, Alphanumeric))
	assert.Equal(t, 16, CharCountBitLen(10, EightBitByte))
	assert.Equal(t, 14, CharCountBitLen(27, Numeric))
}

func TestMasks_MatchFormulas(t *testing.T) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			assert.Equal(t, (i+j)%2 == 0, Masks[0](i, j))
			assert.Equal(t, i%2 == 0, Masks[1](i, j))
			assert.Equal(t, j%3 == 0, Masks[2](i, j))
			assert.Equal(t, (i+j)%3 == 0, Masks[3](i, j))
		}
	}
}
