//go:build gmp

package magnitude

import (
	"math/big"

	"github.com/ncw/gmp"
)

// powerOfTwo returns 2^n using the GMP-backed integer type, converting the
// result back to math/big for the rest of the engine. GMP's limb handling is
// measurably faster once exponents reach the tens of millions; below that the
// conversion cost dominates and the pure-Go build is the better choice.
func powerOfTwo(n uint) *big.Int {
	one := gmp.NewInt(1)
	shifted := new(gmp.Int).Lsh(one, n)
	return new(big.Int).SetBytes(shifted.Bytes())
}
