package bch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyndrome_QRFormatExample(t *testing.T) {
	b, err := New(4, 5, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Syndrome(1, 0b001111010110010))
	assert.Equal(t, 1, b.Syndrome(1, 0b001111010110011))
}

func TestSyndrome_HornerAndSumAgree(t *testing.T) {
	b, err := New(5, 21, 2, 0b11101101001)
	require.NoError(t, err)

	for r := 0; r < 1<<10; r++ {
		for j := 1; j <= 4; j++ {
			require.Equal(t, b.SyndromeSum(j, r), b.SyndromeHorner(j, r), "r=%d j=%d", r, j)
		}
	}
}

func TestSyndromes_GF16BookExample(t *testing.T) {
	b, err := New(4, 5, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{15, 10, 8, 8, 0, 12}, b.Syndromes(0b100001010))
}

func TestSyndromes_GF32BookExample(t *testing.T) {
	b, err := New(5, 21, 2, 0b11101101001)
	require.NoError(t, err)

	const C = 0b11101101110100010101111001
	const R = 0b11101100110100010101101001

	assert.Equal(t, []int{0, 0, 0, 0}, b.Syndromes(C))
	assert.Equal(t, []int{19, 8, 1, 10}, b.Syndromes(R))
}

func TestBerlekampMassey_GF32BookExample(t *testing.T) {
	b, err := New(5, 21, 2, 0b11101101001)
	require.NoError(t, err)

	const R = 0b11101100110100010101101001
	sigma := b.BerlekampMassey(b.Syndromes(R))
	assert.Equal(t, []int{1, 19, 21}, []int(sigma))
}

var qrCodeFormats = []int{
	0b111011111000100, 0b111001011110011, 0b111110110101010, 0b111100010011101,
	0b110011000101111, 0b110001100011000, 0b110110001000001, 0b110100101110110,
	0b101010000010010, 0b101000100100101, 0b101111001111100, 0b101101101001011,
	0b100010111111001, 0b100000011001110, 0b100111110010111, 0b100101010100000,
	0b011010101011111, 0b011000001101000, 0b011111100110001, 0b011101000000110,
	0b010010010110100, 0b010000110000011, 0b010111011011010, 0b010101111101101,
	0b001011010001001, 0b001001110111110, 0b001110011100111, 0b001100111010000,
	0b000011101100010, 0b000001001010101, 0b000110100001100, 0b000100000111011,
}

const qrFormatMask = 0b101010000010010

func qrBch(t *testing.T) *Bch {
	t.Helper()
	b, err := New(4, 5, 3, 0)
	require.NoError(t, err)
	return b
}

func TestDecode_AllValidQRFormats(t *testing.T) {
	b := qrBch(t)

	for _, raw := range qrCodeFormats {
		format := raw ^ qrFormatMask
		corrected, result, err := b.Decode(format)
		require.NoError(t, err)
		assert.False(t, corrected)
		assert.Equal(t, format, result)
	}
}

func TestDecode_SingleBitFlip(t *testing.T) {
	b := qrBch(t)

	for _, raw := range qrCodeFormats {
		format := raw ^ qrFormatMask
		for bit := 0; bit < 15; bit++ {
			corrected, result, err := b.Decode(format ^ (1 << uint(bit)))
			require.NoError(t, err)
			assert.True(t, corrected)
			assert.Equal(t, format, result)
		}
	}
}

func TestDecode_TwoBitFlip(t *testing.T) {
	b := qrBch(t)

	var errs []int
	for i := 0; i < 14; i++ {
		for j := i + 1; j < 15; j++ {
			errs = append(errs, 1<<uint(i)|1<<uint(j))
		}
	}

	for _, raw := range qrCodeFormats {
		format := raw ^ qrFormatMask
		for _, e := range errs {
			corrected, result, err := b.Decode(format ^ e)
			require.NoError(t, err)
			assert.True(t, corrected)
			assert.Equal(t, format, result)
		}
	}
}

func TestDecode_ThreeBitFlip(t *testing.T) {
	b := qrBch(t)

	var errs []int
	for i := 0; i < 13; i++ {
		for j := i + 1; j < 14; j++ {
			for k := j + 1; k < 15; k++ {
				errs = append(errs, 1<<uint(i)|1<<uint(j)|1<<uint(k))
			}
		}
	}

	for _, raw := range qrCodeFormats {
		format := raw ^ qrFormatMask
		for _, e := range errs {
			corrected, result, err := b.Decode(format ^ e)
			require.NoError(t, err, "format %015b error %015b", format, e)
			assert.True(t, corrected)
			assert.Equal(t, format, result)
		}
	}
}

func TestDecode_TooManyErrorsFails(t *testing.T) {
	b := qrBch(t)

	for _, raw := range qrCodeFormats {
		format := raw ^ qrFormatMask
		_, _, err := b.Decode(format ^ 0b11110000000)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrBchDecodingFailure))
	}
}

func BenchmarkDecode(b *testing.B) {
	bch := qrBch(&testing.T{})
	format := qrCodeFormats[0] ^ qrFormatMask
	corrupted := format ^ 0b101
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bch.Decode(corrupted)
	}
}
