package appointment

import "errors"

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an integer amount of euro cents. Prices never go through floats.
type Money struct {
	cents int
}

func NewMoney(cents int) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int {
	return m.cents
}

func (m Money) Euros() float64 {
	return float64(m.cents) / 100.0
}
