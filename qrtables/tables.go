// Package qrtables holds the static, version-indexed data a QR decoder
// needs: error-correction block partitioning, alignment-pattern centres,
// character-count bit widths, the alphanumeric charset, and the format
// masking constants. None of it depends on galoisfield or bch; it is pure
// tabular data plus the small formulas that generate it.
package qrtables

import "fmt"

const (
	MinVersion = 1
	MaxVersion = 40

	// FinderSize is the side length of a finder pattern plus its separator.
	FinderSize = 8
	// TimingLine is the row/column index of the timing patterns.
	TimingLine = 6

	FormatDataECBitLen   = 2
	FormatDataMaskBitLen = 3
	FormatECBitLen       = 10
	FormatMask           = 0x5412 // 0b101010000010010

	AlignmentStartsAtVersion    = 2
	VersionBlockStartsAtVersion = 7

	AlphanumCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
)

// ECLevel is one of the four QR error-correction classes.
type ECLevel int

const (
	Low ECLevel = iota
	Medium
	Quartile
	High
)

// String returns the single-letter QR error-correction level name.
func (l ECLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// FormatBits returns the two-bit encoding used inside the format word:
// L=01, M=00, Q=11, H=10.
func (l ECLevel) FormatBits() int {
	switch l {
	case Low:
		return 0b01
	case Medium:
		return 0b00
	case Quartile:
		return 0b11
	case High:
		return 0b10
	default:
		panic(fmt.Sprintf("qrtables: unknown ec level %d", l))
	}
}

// ECLevelFromFormatBits inverts FormatBits. All four 2-bit values are
// assigned, so ok is false only for inputs outside [0, 3].
func ECLevelFromFormatBits(bits int) (ECLevel, bool) {
	switch bits {
	case 0b01:
		return Low, true
	case 0b00:
		return Medium, true
	case 0b11:
		return Quartile, true
	case 0b10:
		return High, true
	default:
		return 0, false
	}
}

// Size returns the side length in modules for a QR version.
func Size(version int) int {
	return 21 + 4*(version-1)
}

// VersionFromSize inverts Size, failing if size isn't of the form
// 21 + 4*(v-1) for v in [1,40].
func VersionFromSize(size int) (int, bool) {
	if size < Size(MinVersion) || size > Size(MaxVersion) {
		return 0, false
	}
	if (size-21)%4 != 0 {
		return 0, false
	}
	version := (size-21)/4 + 1
	return version, true
}

// eccCodewordsPerBlock and numECBlocks reproduce, verbatim, the public
// per-version/per-level QR Code Model 2 tables (total EC codewords per
// block, and total number of blocks). Index 0 is unused padding.
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

var numECBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// numRawDataModules returns the number of bit-carrying modules (data plus
// EC, remainder bits included) for a version, after every function
// pattern is excluded.
func numRawDataModules(version int) int {
	v := version
	result := (16*v+128)*v + 64
	if v >= 2 {
		numAlign := v/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// BlockGroup describes one run of identically-shaped blocks within a
// version/level's interleaving layout.
type BlockGroup struct {
	Count int // number of blocks in this group
	N     int // total codewords per block
	K     int // data codewords per block
	T     int // error-correction capacity per block (bytes correctable)
}

// ECBlocks returns the ordered block-group layout for (version, level):
// how many blocks of what total/data codeword length make up the symbol,
// in the order they're laid out before interleaving. The final group's
// blocks are always the longest (or equal to the others).
func ECBlocks(version int, level ECLevel) ([]BlockGroup, error) {
	if version < MinVersion || version > MaxVersion {
		return nil, fmt.Errorf("qrtables: %w: version %d", ErrUnsupportedVersion, version)
	}

	totalBlocks := numECBlocks[level][version]
	eccPerBlock := eccCodewordsPerBlock[level][version]
	rawCodewords := numRawDataModules(version) / 8
	totalDataCodewords := rawCodewords - eccPerBlock*totalBlocks

	shortDataLen := totalDataCodewords / totalBlocks
	numLongBlocks := totalDataCodewords % totalBlocks
	numShortBlocks := totalBlocks - numLongBlocks

	t := eccPerBlock / 2

	var groups []BlockGroup
	if numShortBlocks > 0 {
		groups = append(groups, BlockGroup{
			Count: numShortBlocks,
			N:     shortDataLen + eccPerBlock,
			K:     shortDataLen,
			T:     t,
		})
	}
	if numLongBlocks > 0 {
		groups = append(groups, BlockGroup{
			Count: numLongBlocks,
			N:     shortDataLen + 1 + eccPerBlock,
			K:     shortDataLen + 1,
			T:     t,
		})
	}
	return groups, nil
}

// AlignmentPatterns returns the ascending list of alignment-pattern
// centre coordinates (shared by both axes) for a version. Version 1 has
// none.
func AlignmentPatterns(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}

	size := Size(version)
	result := make([]int, numAlign)
	for i := 0; i < numAlign-1; i++ {
		result[i] = size - 7 - i*step
	}
	result[numAlign-1] = 6

	inverted := make([]int, numAlign)
	for i, v := range result {
		inverted[numAlign-1-i] = v
	}
	return inverted
}

// AlignmentCentres returns the set of (row, col) alignment-pattern
// centres for a version: the Cartesian product of AlignmentPatterns with
// itself, minus the three corners that collide with finder patterns.
func AlignmentCentres(version int) [][2]int {
	positions := AlignmentPatterns(version)
	if len(positions) == 0 {
		return nil
	}

	first, last := positions[0], positions[len(positions)-1]
	var centres [][2]int
	for _, r := range positions {
		for _, c := range positions {
			if r == first && c == first {
				continue
			}
			if r == first && c == last {
				continue
			}
			if r == last && c == first {
				continue
			}
			centres = append(centres, [2]int{r, c})
		}
	}
	return centres
}

// CharCountBits holds the bit widths of the character-count indicator
// per segment mode, for a range of versions.
type CharCountBits struct {
	Numeric, Alphanumeric, EightBit, Kanji int
}

// CharCountBitLen returns the character-count indicator width for a
// (version, mode) pair.
func CharCountBitLen(version int, mode SegmentMode) int {
	var bits CharCountBits
	switch {
	case version <= 9:
		bits = CharCountBits{10, 9, 8, 8}
	case version <= 26:
		bits = CharCountBits{12, 11, 16, 10}
	default:
		bits = CharCountBits{14, 13, 16, 12}
	}

	switch mode {
	case Numeric:
		return bits.Numeric
	case Alphanumeric:
		return bits.Alphanumeric
	case EightBitByte:
		return bits.EightBit
	case Kanji:
		return bits.Kanji
	default:
		return 0
	}
}
