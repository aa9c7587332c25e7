package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the source of randomness for selection and side-effect rolls.
// Injecting it keeps every roll reproducible under test.
type Roller interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int

	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// Between returns a uniform value in [lo, hi) drawn from r.
// When hi <= lo the result is lo.
func Between(r Roller, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance reports whether an event with probability p happens. A roll is always
// drawn; probabilities of 1 or more succeed regardless of it.
func Chance(r Roller, p float64) bool {
	roll := r.Float64()
	if p >= 1.0 {
		return true
	}
	return roll < p
}
