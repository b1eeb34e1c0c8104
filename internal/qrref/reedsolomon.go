package qrref

import (
	"fmt"

	"github.com/corvidlabs/qrdecode/galoisfield"
)

// rsField returns the GF(256) instance every QR Reed-Solomon computation
// runs over.
func rsField() (*galoisfield.Field, error) {
	return galoisfield.New(8)
}

// rsDivisor returns the Reed-Solomon generator polynomial
// (x - alpha^0)(x - alpha^1)...(x - alpha^(degree-1)) as its degree
// trailing coefficients, highest degree first. The leading coefficient is
// always 1 and is left implicit.
func rsDivisor(degree int) ([]int, error) {
	f, err := rsField()
	if err != nil {
		return nil, err
	}
	if degree < 1 || degree > f.N() {
		return nil, fmt.Errorf("qrref: reed-solomon degree %d out of range", degree)
	}

	result := make([]int, degree)
	result[degree-1] = 1

	// Multiply the running product by (x - alpha^i), dropping the leading
	// term, which stays 1 throughout.
	root := 1
	for i := 0; i < degree; i++ {
		for j := range result {
			result[j] = f.Mul(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = f.Mul(root, 2)
	}
	return result, nil
}

// rsRemainder computes the error-correction codewords for data: the
// remainder of data * x^len(divisor) divided by the generator, via the
// usual shift-register polynomial division.
func rsRemainder(data []byte, divisor []int) []byte {
	f, err := rsField()
	if err != nil {
		panic(err)
	}

	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := int(b) ^ int(result[0])
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i, coef := range divisor {
			result[i] ^= byte(f.Mul(coef, factor))
		}
	}
	return result
}
