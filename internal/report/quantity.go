package report

import (
	"math"
	"strconv"
)

// Quantity is an accumulated product quantity. Whole values render without a
// fractional part.
type Quantity float64

func (q Quantity) String() string {
	f := float64(q)
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// plus adds qty, saturating at the largest finite float instead of overflowing
// to infinity.
func (q Quantity) plus(qty float64) Quantity {
	sum := float64(q) + qty
	switch {
	case math.IsInf(sum, 1):
		sum = math.MaxFloat64
	case math.IsInf(sum, -1):
		sum = -math.MaxFloat64
	}
	return Quantity(sum)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.String()), nil
}
