package galoisfield

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsOutOfRangeM(t *testing.T) {
	_, err := New(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldParameterOutOfRange))

	_, err = New(13)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldParameterOutOfRange))
}

func TestGF16_Tables(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9}, f.logToVector)
	assert.Equal(t, []int{-1, 0, 1, 4, 2, 8, 5, 10, 3, 14, 9, 7, 6, 13, 11, 12}, f.vectorToLog)
}

func TestTables_PermutationAndInverse(t *testing.T) {
	for m := MinM; m <= MaxM; m++ {
		f, err := New(m)
		require.NoError(t, err)

		seen := make(map[int]bool, f.n)
		for i := 0; i < f.n; i++ {
			v := f.logToVector[i]
			assert.False(t, seen[v], "m=%d: value %d repeated at exponent %d", m, v, i)
			seen[v] = true
			assert.Equal(t, i, f.vectorToLog[v], "m=%d: vectorToLog not inverse of logToVector at %d", m, i)
		}
		assert.Equal(t, f.n, len(seen))
	}
}

func TestFieldLaws(t *testing.T) {
	for m := MinM; m <= MaxM; m++ {
		f, err := New(m)
		require.NoError(t, err)

		for x := 0; x < 1<<m; x++ {
			assert.Equal(t, 0, f.Mul(x, 0), "m=%d x=%d", m, x)
			assert.Equal(t, x, f.Mul(x, 1), "m=%d x=%d", m, x)
			assert.Equal(t, 1, f.Pow(x, 0), "m=%d x=%d", m, x)
			if x != 0 {
				inv, err := f.Inverse(x)
				require.NoError(t, err)
				assert.Equal(t, 1, f.Mul(x, inv), "m=%d x=%d", m, x)
			}
		}
		assert.Equal(t, 0, f.Pow(0, 1))
		assert.Equal(t, 0, f.Pow(0, 5))
	}
}

func TestDivideAndInverse_ByZero(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	_, err = f.Div(5, 0)
	assert.True(t, errors.Is(err, ErrDivideByZero))

	_, err = f.Inverse(0)
	assert.True(t, errors.Is(err, ErrDivideByZero))

	v, err := f.Div(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestGF16_Multiplication(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	assert.Equal(t, 10, f.Mul(13, 14))
}

func TestGF256_Arithmetic(t *testing.T) {
	f, err := New(8)
	require.NoError(t, err)

	assert.Equal(t, 195, f.Mul(137, 42))

	div, err := f.Div(137, 195)
	require.NoError(t, err)
	assert.Equal(t, 31, div)

	inv, err := f.Inverse(195)
	require.NoError(t, err)
	assert.Equal(t, 53, inv)
}

func TestPoly_AddMulEval(t *testing.T) {
	f, err := New(8)
	require.NoError(t, err)

	p := Poly{1, 0, 1} // 1 + x^2
	q := Poly{1, 1}    // 1 + x

	sum := f.PolyAdd(p, q)
	assert.Equal(t, Poly{0, 1, 1}, sum)

	prod := f.PolyMul(p, q)
	require.Len(t, prod, len(p)+len(q)-1)
	assert.Equal(t, f.PolyEval(prod, 3), f.Mul(f.PolyEval(p, 3), f.PolyEval(q, 3)))

	scaled := f.PolyScale(p, 2)
	for i, c := range p {
		assert.Equal(t, f.Mul(c, 2), scaled[i])
	}
}

func BenchmarkGF256Mul(b *testing.B) {
	f, _ := New(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Mul(137, 42)
	}
}
