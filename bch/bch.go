// Package bch implements a primitive, narrow-sense binary BCH(n, k, t)
// decoder: syndrome computation, Berlekamp-Massey error-locator
// construction, root search, and bit correction. It is used by qrdecoder
// exclusively to recover the QR 15-bit format word, BCH(15,5) with t=3
// over GF(16); nothing here assumes that specific configuration, though.
package bch

import (
	"fmt"

	"github.com/corvidlabs/qrdecode/galoisfield"
)

// Bch holds the parameters of a primitive narrow-sense BCH code. k and the
// generator g are carried for completeness; only m and t affect decoding.
type Bch struct {
	M, K, T int
	G       int

	field *galoisfield.Field
}

// New builds a BCH(2^m-1, k, t) decoder over GF(2^m).
func New(m, k, t, g int) (*Bch, error) {
	field, err := galoisfield.New(m)
	if err != nil {
		return nil, fmt.Errorf("bch: %w", err)
	}
	return &Bch{M: m, K: k, T: t, G: g, field: field}, nil
}

// N returns the code length 2^m - 1.
func (b *Bch) N() int { return b.field.N() }

// bits returns the index of every set bit of r, LSB first.
func bits(r int) []int {
	var out []int
	for i := 0; r>>uint(i) != 0; i++ {
		if r&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// SyndromeHorner evaluates R(alpha^j) by Horner's method over the explicit
// coefficient list of r (bit i is the x^i coefficient).
func (b *Bch) SyndromeHorner(j, r int) int {
	return b.field.PolyEval(codewordPoly(r, b.field.N()), b.field.Exp(j))
}

// SyndromeSum evaluates R(alpha^j) as the sum (XOR) of alpha^(i*j mod n)
// over every set bit position i of r.
func (b *Bch) SyndromeSum(j, r int) int {
	n := b.field.N()
	sum := 0
	for _, i := range bits(r) {
		sum ^= b.field.Exp((i * j) % n)
	}
	return sum
}

// Syndrome returns R(alpha^j) evaluated in the field. The two strategies
// SyndromeHorner and SyndromeSum always agree; this is the primary form.
func (b *Bch) Syndrome(j, r int) int {
	return b.field.PolyEval(codewordPoly(r, b.field.N()), b.field.Exp(j))
}

func codewordPoly(r, n int) galoisfield.Poly {
	p := make(galoisfield.Poly, n+1)
	for i := range p {
		if r&(1<<uint(i)) != 0 {
			p[i] = 1
		}
	}
	return p
}

// Syndromes returns [S_1, ..., S_2t] for the received word r.
func (b *Bch) Syndromes(r int) []int {
	s := make([]int, 2*b.T)
	for j := 1; j <= 2*b.T; j++ {
		s[j-1] = b.Syndrome(j, r)
	}
	return s
}

// allZero reports whether every syndrome is zero.
func allZero(s []int) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// BerlekampMassey computes the error-locator polynomial sigma of minimal
// degree consistent with the syndrome sequence S = [S_1, ..., S_2t].
func (b *Bch) BerlekampMassey(s []int) galoisfield.Poly {
	f := b.field

	sigma := galoisfield.Poly{1}
	sigmaOld := galoisfield.Poly{1}
	discOld := 1
	L := 0
	l := 1

	for j := 1; j <= len(s); j++ {
		d := s[j-1]
		for i := 1; i <= L && i < len(sigma); i++ {
			d ^= f.Mul(sigma[i], s[j-i-1])
		}

		if d == 0 {
			l++
			continue
		}

		backup := append(galoisfield.Poly(nil), sigma...)

		cInv, _ := f.Inverse(discOld)
		c := f.Mul(d, cInv)

		shifted := make(galoisfield.Poly, l+len(sigmaOld))
		for i, coeff := range sigmaOld {
			shifted[l+i] = f.Mul(c, coeff)
		}
		sigma = f.PolyAdd(sigma, shifted)

		if 2*L >= j {
			l++
		} else {
			L = j - L
			sigmaOld = backup
			discOld = d
			l = 1
		}
	}

	return sigma
}

// degree returns the degree of p, ignoring trailing zero coefficients.
func degree(p galoisfield.Poly) int {
	d := len(p) - 1
	for d > 0 && p[d] == 0 {
		d--
	}
	return d
}

// RootSearch returns every beta in [1, n] (vector form) with sigma(beta) = 0.
func (b *Bch) RootSearch(sigma galoisfield.Poly) []int {
	var roots []int
	for beta := 1; beta <= b.field.N(); beta++ {
		if b.field.PolyEval(sigma, beta) == 0 {
			roots = append(roots, beta)
		}
	}
	return roots
}

// Decode attempts to correct r. If every syndrome is zero, r is already a
// codeword and is returned unchanged. Otherwise the error-locator
// polynomial is built, its roots converted to bit positions, and those
// bits flipped. Fails with ErrBchDecodingFailure when the error pattern
// exceeds the code's correction capacity or is otherwise inconsistent.
func (b *Bch) Decode(r int) (corrected bool, result int, err error) {
	s := b.Syndromes(r)
	if allZero(s) {
		return false, r, nil
	}

	sigma := b.BerlekampMassey(s)
	deg := degree(sigma)
	if deg > b.T {
		return false, 0, fmt.Errorf("bch: %w: error-locator degree %d exceeds t=%d", ErrBchDecodingFailure, deg, b.T)
	}

	roots := b.RootSearch(sigma)
	if len(roots) != deg {
		return false, 0, fmt.Errorf("bch: %w: found %d distinct roots, expected degree %d", ErrBchDecodingFailure, len(roots), deg)
	}

	word := r
	for _, beta := range roots {
		e := (b.field.N() - b.field.Log(beta)) % b.field.N()
		if e < 0 || e >= b.field.N() {
			return false, 0, fmt.Errorf("bch: %w: error position %d out of range", ErrBchDecodingFailure, e)
		}
		word ^= 1 << uint(e)
	}

	return true, word, nil
}
