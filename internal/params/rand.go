package params

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// IntSource draws uniform integers in [0, n). The production source must not
// be predictable by an external observer, which rules out seedable PRNGs.
type IntSource interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// IntN returns a uniform integer in [0, n).
func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
