package galoisfield

// A Poly is a polynomial over GF(2^m): an ordered, low-degree-first slice
// of coefficients. Coefficient i is the coefficient of x^i.
type Poly []int

// PolyScale multiplies every coefficient of p by the constant s.
func (f *Field) PolyScale(p Poly, s int) Poly {
	res := make(Poly, len(p))
	for i, c := range p {
		res[i] = f.Mul(c, s)
	}
	return res
}

// PolyAdd adds two polynomials coefficient-wise (XOR). The result has
// length max(len(p), len(q)).
func (f *Field) PolyAdd(p, q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	res := make(Poly, n)
	copy(res, p)
	for i, c := range q {
		res[i] ^= c
	}
	return res
}

// PolyMul multiplies two polynomials by convolution. The result has
// length len(p)+len(q)-1.
func (f *Field) PolyMul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	res := make(Poly, len(p)+len(q)-1)
	for dp, cp := range p {
		if cp == 0 {
			continue
		}
		for dq, cq := range q {
			res[dp+dq] ^= f.Mul(cp, cq)
		}
	}
	return res
}

// PolyEval evaluates p at x using Horner's method from the highest degree
// down to the constant term.
func (f *Field) PolyEval(p Poly, x int) int {
	res := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		res = f.Mul(res, x) ^ p[i]
	}
	return res
}
