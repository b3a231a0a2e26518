package sketch

import (
	"fmt"
	"math"
	"math/bits"
)

// two32 is the size of the 32-bit hash space.
const two32 = float64(1 << 32)

// HyperLogLog is a non-thread-safe cardinality estimator over 32-bit
// hashes with 2^p one-byte registers.
type HyperLogLog struct {
	registers []uint8 // Max observed rho per register
	p         uint8   // Precision (index bits)
	m         uint32  // Number of registers, 2^p
	alpha     float64 // Bias-correction constant for p
	hasher    Hasher
}

// NewHyperLogLog creates a HyperLogLog with 2^p registers using
// DefaultHasher.
func NewHyperLogLog(p uint8) (*HyperLogLog, error) {
	return NewHyperLogLogWithHasher(DefaultHasher, p)
}

// NewHyperLogLogWithHasher creates a HyperLogLog with 2^p registers that
// hashes with h. p must be in [MinPrecision, MaxPrecision].
func NewHyperLogLogWithHasher(h Hasher, p uint8) (*HyperLogLog, error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if p < MinPrecision || p > MaxPrecision {
		return nil, fmt.Errorf("%w: got %d, valid range: %d-%d", ErrInvalidPrecision, p, MinPrecision, MaxPrecision)
	}

	m := uint32(1) << p

	return &HyperLogLog{
		registers: make([]uint8, m),
		p:         p,
		m:         m,
		alpha:     Alpha(p),
		hasher:    h,
	}, nil
}

// Add adds data to the estimate.
func (h *HyperLogLog) Add(data []byte) {
	h.AddHash(uint32(h.hasher.Hash(data, 0)))
}

// AddString adds a string to the estimate without allocating.
func (h *HyperLogLog) AddString(s string) {
	h.Add(stringBytes(s))
}

// AddHash adds a pre-computed 32-bit hash to the estimate.
//
// The low p bits select the register. The run of leading zeros is taken
// over the remaining 32-p high bits; the sentinel at bit p-1 bounds it
// when they are all zero, so rho is at most 33-p.
func (h *HyperLogLog) AddHash(x uint32) {
	idx := x & (h.m - 1)
	w := x | 1<<(h.p-1)
	rho := uint8(1 + bits.LeadingZeros32(w))
	if rho > h.registers[idx] {
		h.registers[idx] = rho
	}
}

// Count returns the estimated number of distinct items added so far. It
// is recomputed from the registers on every call.
func (h *HyperLogLog) Count() float64 {
	var sum float64
	var zeros uint32
	for _, r := range h.registers {
		sum += 1 / float64(uint64(1)<<r)
		if r == 0 {
			zeros++
		}
	}

	m := float64(h.m)
	est := h.alpha * m * m / sum

	switch {
	case est <= 2.5*m && zeros != 0:
		// Small range: linear counting over the empty registers.
		return m * math.Log(m/float64(zeros))
	case est > two32/30:
		// Large range: 32-bit hash collisions.
		if est >= two32 {
			return math.Inf(1)
		}
		return -two32 * math.Log(1-est/two32)
	default:
		return est
	}
}

// Merge folds other into h so that h estimates the union of both
// streams. Both must hash with the same Hasher. other is not modified.
func (h *HyperLogLog) Merge(other *HyperLogLog) error {
	if h.p != other.p {
		return fmt.Errorf("%w: p=%d/%d", ErrPrecisionMismatch, h.p, other.p)
	}

	for i, r := range other.registers {
		h.registers[i] = max(h.registers[i], r)
	}
	return nil
}

// Precision returns the number of register index bits.
func (h *HyperLogLog) Precision() uint8 {
	return h.p
}

// RegisterCount returns the number of registers, 2^p.
func (h *HyperLogLog) RegisterCount() int {
	return int(h.m)
}

// Alpha returns the bias-correction constant in use.
func (h *HyperLogLog) Alpha() float64 {
	return h.alpha
}
