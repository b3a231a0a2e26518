package sketch

import "math"

const (
	// wordBits is the number of bits per storage word of a BloomFilter.
	wordBits = 64
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

const (
	// MinPrecision is the smallest supported HyperLogLog precision.
	MinPrecision = 4
	// MaxPrecision is the largest supported HyperLogLog precision.
	MaxPrecision = 16
)

// OptimalParams calculates bloom filter parameters for n expected items at
// false positive rate epsilon. Returns the number of bits (rounded up to a
// whole number of 64-bit words) and the number of hash probes, derived
// from the rounded bit count.
//
// n must be non-zero and epsilon must lie in (0, 1); NewBloomFilter
// enforces both.
func OptimalParams(n uint64, epsilon float64) (m uint64, k uint32) {
	// m = ceil(-n * ln(epsilon) / ln(2)^2)
	bits := math.Ceil(-float64(n) * math.Log(epsilon) / ln2Squared)
	m = uint64(bits)
	m = (m + wordBits - 1) / wordBits * wordBits
	if m == 0 {
		m = wordBits
	}

	// k = ceil((m/n) * ln(2))
	k = uint32(math.Ceil(float64(m) / float64(n) * ln2))
	k = max(k, 1)

	return m, k
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// with m bits and k probes after n items were added.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint64, k uint32, n uint64) float64 {
	if m == 0 || n == 0 {
		return 0
	}

	mf := float64(m)
	nf := float64(n)
	kf := float64(k)

	return math.Pow(1-math.Exp(-kf*nf/mf), kf)
}

// Alpha returns the HyperLogLog bias-correction constant for precision p.
// p is clamped to [MinPrecision, MaxPrecision].
func Alpha(p uint8) float64 {
	p = max(p, MinPrecision)
	p = min(p, MaxPrecision)

	switch p {
	case 4:
		return 0.673
	case 5:
		return 0.697
	case 6:
		return 0.709
	default:
		return 0.7213 / (1 + 1.079/float64(uint32(1)<<p))
	}
}
