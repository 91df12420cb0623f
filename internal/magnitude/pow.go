//go:build !gmp

package magnitude

import "math/big"

// powerOfTwo returns 2^n using math/big. A left shift of the unit value is a
// single allocation of n+1 bits, so even exponents in the millions stay cheap.
func powerOfTwo(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}
