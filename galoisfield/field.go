// Package galoisfield implements arithmetic over the binary Galois fields
// GF(2^m) for m in [3, 12], the algebraic foundation the BCH decoder and
// the QR format-information recovery are built on.
package galoisfield

import (
	"fmt"
	"sync"
)

// primitivePoly holds, for GF(2^(idx+minM)), the degree-m irreducible
// polynomial used to reduce the field, as an (m+1)-bit number including
// the high (x^m) bit; buildField strips that bit when it derives alpha^m.
var primitivePoly = [...]int{
	0b1011,
	0b10011,
	0b100101,
	0b1000011,
	0b10001001,
	0b100011101,
	0b1000010001,
	0b10000001001,
	0b100000000101,
	0b1000001010011,
}

const (
	// MinM is the smallest supported field exponent.
	MinM = 3
	// MaxM is the largest supported field exponent.
	MaxM = MinM + len(primitivePoly) - 1
)

// Field represents GF(2^m): the exponent m, the code length n = 2^m-1,
// and the dual exponent/logarithm tables used for all arithmetic.
type Field struct {
	m int
	n int

	// logToVector[i] is the vector (bit pattern) form of alpha^i, i in [0, n).
	logToVector []int
	// vectorToLog[v] is the exponent i such that alpha^i = v, v in [1, n].
	// vectorToLog[0] is a sentinel and must never be read.
	vectorToLog []int
}

var tableCache sync.Map // m -> *Field

// New returns the field GF(2^m), building (and caching) its tables on
// first use. Table construction is a pure function of m, so concurrent
// first callers racing to build the same table is harmless.
func New(m int) (*Field, error) {
	if m < MinM || m > MaxM {
		return nil, fmt.Errorf("galoisfield: %w: m=%d (supported range [%d,%d])", ErrFieldParameterOutOfRange, m, MinM, MaxM)
	}

	if cached, ok := tableCache.Load(m); ok {
		return cached.(*Field), nil
	}

	f := buildField(m)
	actual, _ := tableCache.LoadOrStore(m, f)
	return actual.(*Field), nil
}

func buildField(m int) *Field {
	n := 1<<m - 1
	poly := primitivePoly[m-MinM]

	logToVector := make([]int, n)
	for i := 0; i < m; i++ {
		logToVector[i] = 1 << i
	}
	logToVector[m] = (1 << m) ^ poly

	for i := m + 1; i < n; i++ {
		vector := logToVector[i-1] << 1
		if vector&(1<<m) != 0 {
			vector ^= 1 << m
			vector ^= logToVector[m]
		}
		logToVector[i] = vector
	}

	vectorToLog := make([]int, 1<<m)
	for i := range vectorToLog {
		vectorToLog[i] = -1
	}
	for exponent, vector := range logToVector {
		vectorToLog[vector] = exponent
	}

	return &Field{m: m, n: n, logToVector: logToVector, vectorToLog: vectorToLog}
}

// M returns the field exponent.
func (f *Field) M() int { return f.m }

// N returns the code length 2^m - 1.
func (f *Field) N() int { return f.n }

// Exp returns alpha^i, i taken modulo n.
func (f *Field) Exp(i int) int {
	i %= f.n
	if i < 0 {
		i += f.n
	}
	return f.logToVector[i]
}

// Log returns the exponent i such that alpha^i = v. v must be nonzero.
func (f *Field) Log(v int) int {
	return f.vectorToLog[v]
}

// Add returns x XOR y, the field's addition (and subtraction).
func (f *Field) Add(x, y int) int { return x ^ y }

// Sub is an alias of Add: in characteristic 2, subtraction is XOR.
func (f *Field) Sub(x, y int) int { return x ^ y }

// Mul returns x*y in the field.
func (f *Field) Mul(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	exponent := (f.vectorToLog[x] + f.vectorToLog[y]) % f.n
	return f.logToVector[exponent]
}

// Div returns x/y in the field. Fails with ErrDivideByZero when y is 0.
func (f *Field) Div(x, y int) (int, error) {
	if y == 0 {
		return 0, fmt.Errorf("galoisfield: %w", ErrDivideByZero)
	}
	if x == 0 {
		return 0, nil
	}
	exponent := (f.vectorToLog[x] + f.n - f.vectorToLog[y]) % f.n
	return f.logToVector[exponent], nil
}

// Pow returns x^e. x^0 is 1 for every x, including 0; 0^e is 0 for e >= 1.
// e must be non-negative.
func (f *Field) Pow(x, e int) int {
	if e == 0 {
		return 1
	}
	if x == 0 {
		return 0
	}
	exponent := (f.vectorToLog[x] * e) % f.n
	if exponent < 0 {
		exponent += f.n
	}
	return f.logToVector[exponent]
}

// Inverse returns x^-1. Fails with ErrDivideByZero when x is 0.
func (f *Field) Inverse(x int) (int, error) {
	if x == 0 {
		return 0, fmt.Errorf("galoisfield: %w", ErrDivideByZero)
	}
	exponent := (f.n - f.vectorToLog[x]) % f.n
	return f.logToVector[exponent], nil
}
