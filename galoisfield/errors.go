package galoisfield

import "errors"

// ErrFieldParameterOutOfRange is returned when a field is constructed with
// an exponent m outside the supported range [MinM, MaxM].
var ErrFieldParameterOutOfRange = errors.New("field parameter out of range")

// ErrDivideByZero is returned by Div and Inverse when the divisor is zero.
var ErrDivideByZero = errors.New("divide by zero")
