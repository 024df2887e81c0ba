package maplib

import "fmt"

// Cost is an exact non-negative rational movement cost. The zero value is 0.
// Costs are always kept in lowest terms with a positive denominator, so two
// equal costs compare equal with == and can be used as map values or keys.
type Cost struct {
	num  int64
	den1 int64 // denominator minus one, so the zero value is 0/1
}

// CostOf returns the integer cost n.
func CostOf(n int64) Cost {
	return Cost{num: n}
}

// NewCost returns num/den in lowest terms. It panics if den is zero.
func NewCost(num, den int64) Cost {
	if den == 0 {
		panic("maplib: cost with zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	return Cost{num: num / g, den1: den/g - 1}
}

// Num returns the numerator in lowest terms.
func (c Cost) Num() int64 { return c.num }

// Den returns the denominator in lowest terms (always positive).
func (c Cost) Den() int64 { return c.den1 + 1 }

// Add returns c + o.
func (c Cost) Add(o Cost) Cost {
	a, b := c.Den(), o.Den()
	if a == b {
		return NewCost(c.num+o.num, a)
	}
	return NewCost(c.num*b+o.num*a, a*b)
}

// Cmp returns -1, 0 or +1 depending on whether c < o, c == o or c > o.
func (c Cost) Cmp(o Cost) int {
	l := c.num * o.Den()
	r := o.num * c.Den()
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Less reports whether c < o.
func (c Cost) Less(o Cost) bool { return c.Cmp(o) < 0 }

// LessEq reports whether c <= o.
func (c Cost) LessEq(o Cost) bool { return c.Cmp(o) <= 0 }

// IsZero reports whether c == 0.
func (c Cost) IsZero() bool { return c.num == 0 }

// Float64 approximates c. Only for display; never compare with it.
func (c Cost) Float64() float64 {
	return float64(c.num) / float64(c.Den())
}

// String formats c as "3" or "5/2".
func (c Cost) String() string {
	if c.Den() == 1 {
		return fmt.Sprintf("%d", c.num)
	}
	return fmt.Sprintf("%d/%d", c.num, c.Den())
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
