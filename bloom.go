package sketch

import (
	"fmt"
	"math"
	"math/bits"
)

// BloomFilter is a non-thread-safe bloom filter over a flat bit array.
//
// Each item is hashed twice and the k probe positions are derived by
// double hashing: probe i lands on bit (h1 + i*h2) mod m. Bits are only
// ever set, never cleared.
type BloomFilter struct {
	words   []uint64 // m bits, 64 per word
	m       uint64   // Number of bits
	k       uint32   // Number of hash probes
	epsilon float64  // Target false positive rate
	hasher  Hasher
	count   uint64 // Number of items added
}

// NewBloomFilter creates a bloom filter sized for n expected items at a
// false positive rate of epsilon, using DefaultHasher.
func NewBloomFilter(n uint64, epsilon float64) (*BloomFilter, error) {
	return NewBloomFilterWithHasher(DefaultHasher, n, epsilon)
}

// NewBloomFilterWithHasher creates a bloom filter sized for n expected
// items at a false positive rate of epsilon that hashes with h.
func NewBloomFilterWithHasher(h Hasher, n uint64, epsilon float64) (*BloomFilter, error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if n == 0 {
		return nil, ErrZeroItems
	}
	if math.IsNaN(epsilon) || epsilon <= 0 || epsilon >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFalsePositiveRate, epsilon)
	}

	m, k := OptimalParams(n, epsilon)

	return &BloomFilter{
		words:   make([]uint64, m/wordBits),
		m:       m,
		k:       k,
		epsilon: epsilon,
		hasher:  h,
	}, nil
}

// probes returns the double hashing base and step for data. The step is
// forced odd so it never collapses to zero and cycles the full range
// when m is a power of two.
func (f *BloomFilter) probes(data []byte) (h1, h2 uint64) {
	h1 = f.hasher.Hash(data, 0)
	h2 = f.hasher.Hash(data, 1) | 1
	return h1, h2
}

// Add adds data to the bloom filter.
func (f *BloomFilter) Add(data []byte) {
	h1, h2 := f.probes(data)
	f.addWithHash(h1, h2)
}

// AddString adds a string to the bloom filter without allocating.
func (f *BloomFilter) AddString(s string) {
	f.Add(stringBytes(s))
}

func (f *BloomFilter) addWithHash(h1, h2 uint64) {
	for i := uint64(0); i < uint64(f.k); i++ {
		bitPos := (h1 + i*h2) % f.m
		f.words[bitPos/wordBits] |= 1 << (bitPos % wordBits)
	}

	f.count++
}

// Contains checks if data might be in the bloom filter.
// Returns true if the data might be present (with false positive probability),
// or false if the data is definitely not present.
func (f *BloomFilter) Contains(data []byte) bool {
	h1, h2 := f.probes(data)
	return f.containsWithHash(h1, h2)
}

// ContainsString checks if a string might be in the bloom filter without
// allocating.
func (f *BloomFilter) ContainsString(s string) bool {
	return f.Contains(stringBytes(s))
}

func (f *BloomFilter) containsWithHash(h1, h2 uint64) bool {
	for i := uint64(0); i < uint64(f.k); i++ {
		bitPos := (h1 + i*h2) % f.m
		if f.words[bitPos/wordBits]&(1<<(bitPos%wordBits)) == 0 {
			return false
		}
	}

	return true
}

// ContainsAndAdd reports whether data might have been present, then adds
// it. Data is hashed once for both steps.
func (f *BloomFilter) ContainsAndAdd(data []byte) bool {
	h1, h2 := f.probes(data)
	present := f.containsWithHash(h1, h2)
	f.addWithHash(h1, h2)
	return present
}

// ContainsAndAddString is ContainsAndAdd for string keys.
func (f *BloomFilter) ContainsAndAddString(s string) bool {
	return f.ContainsAndAdd(stringBytes(s))
}

// Size returns the size of the bit array in bits.
func (f *BloomFilter) Size() uint64 {
	return f.m
}

// HashCount returns the number of hash probes per item.
func (f *BloomFilter) HashCount() uint32 {
	return f.k
}

// Epsilon returns the false positive rate the filter was sized for.
func (f *BloomFilter) Epsilon() float64 {
	return f.epsilon
}

// Count returns the number of Add calls, duplicates included.
func (f *BloomFilter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *BloomFilter) EstimatedFillRatio() float64 {
	var setBits uint64
	for _, word := range f.words {
		setBits += uint64(bits.OnesCount64(word))
	}
	return float64(setBits) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the number of items added.
func (f *BloomFilter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}
