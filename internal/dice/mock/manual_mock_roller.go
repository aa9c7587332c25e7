package mockdice

import (
	"fmt"
	"sync"
)

// ManualMockRoller implements dice.Roller with predetermined results.
// Running out of results panics so a test can't silently read zeros.
type ManualMockRoller struct {
	mu         sync.Mutex
	ints       []int
	floats     []float64
	intIndex   int
	floatIndex int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetInts sets the results returned by Intn, in order
func (m *ManualMockRoller) SetInts(ints ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = ints
	m.intIndex = 0
}

// SetFloats sets the results returned by Float64, in order
func (m *ManualMockRoller) SetFloats(floats ...float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.floatIndex = 0
}

// Remaining returns how many predetermined ints and floats have not been used
func (m *ManualMockRoller) Remaining() (ints, floats int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ints) - m.intIndex, len(m.floats) - m.floatIndex
}

// Intn implements dice.Roller.Intn
func (m *ManualMockRoller) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.intIndex >= len(m.ints) {
		panic(fmt.Sprintf("no more predetermined ints available (used %d of %d)", m.intIndex, len(m.ints)))
	}
	v := m.ints[m.intIndex]
	m.intIndex++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("predetermined int %d out of range [0, %d)", v, n))
	}
	return v
}

// Float64 implements dice.Roller.Float64
func (m *ManualMockRoller) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.floatIndex >= len(m.floats) {
		panic(fmt.Sprintf("no more predetermined floats available (used %d of %d)", m.floatIndex, len(m.floats)))
	}
	v := m.floats[m.floatIndex]
	m.floatIndex++
	return v
}
