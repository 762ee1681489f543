package filter

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Unbounded is the limit count meaning "no ceiling".
const Unbounded = -1

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// Count evaluates the limit against a roster of the given size. Accepted
// forms are a non-negative integer, "all", "half", "quarter" and "num/den";
// fractions round up. Counts too large for an int saturate to the roster
// size. Anything else is Unbounded. Count never returns a value below
// Unbounded.
func (l Limit) Count(rosterSize int) int {
	v := strings.ToLower(strings.TrimSpace(l.Value))
	switch v {
	case "all":
		return rosterSize
	case "half":
		return ceilFraction(rosterSize, one, two)
	case "quarter":
		return ceilFraction(rosterSize, one, four)
	}

	if num, den, ok := strings.Cut(v, "/"); ok {
		n, okNum := new(big.Int).SetString(strings.TrimSpace(num), 10)
		d, okDen := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !okNum || !okDen || n.Sign() < 0 || d.Sign() <= 0 {
			return Unbounded
		}
		return ceilFraction(rosterSize, n, d)
	}

	n, err := strconv.Atoi(v)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(v, "-") {
		return rosterSize
	}
	if err != nil || n < 0 {
		return Unbounded
	}
	return n
}

// ceilFraction is ceil(size*num/den), clamped to size.
func ceilFraction(size int, num, den *big.Int) int {
	if num.Cmp(den) >= 0 {
		return size
	}
	q := new(big.Int).Mul(big.NewInt(int64(size)), num)
	q.Add(q, den)
	q.Sub(q, one)
	q.Quo(q, den)
	return int(q.Int64())
}
