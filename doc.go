// Package sketch provides two probabilistic summaries of a stream of
// items: a bloom filter for approximate set membership and a HyperLogLog
// for approximate distinct counting.
//
// # Bloom Filter
//
// A [BloomFilter] tests whether an element is a member of a set. False
// positive matches are possible, but false negatives are not: if the
// filter says an element is not present, it definitely is not.
//
// Use [NewBloomFilter] with your expected number of items and desired
// false positive rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := sketch.NewBloomFilter(1_000_000, 0.01)
//
// The filter size and probe count are derived as
//
//	m = ceil(-n * ln(p) / (ln(2))²)   rounded up to a multiple of 64
//	k = ceil((m / n) * ln(2))
//
// Each item is hashed twice and the k probe positions are derived from
// the two hashes by double hashing (h1 + i*h2 mod m), which gives k
// independent positions for the cost of two hash computations.
//
// # HyperLogLog
//
// A [HyperLogLog] estimates how many distinct items it has seen using 2^p
// one-byte registers. The relative standard error is about 1.04/sqrt(2^p):
//
//	// 16 KiB of registers, ~0.8% standard error
//	h, err := sketch.NewHyperLogLog(14)
//
// Estimates in the small range fall back to linear counting over the empty
// registers, and estimates near the 32-bit hash space are corrected for
// collisions. Two estimators of equal precision can be combined with
// [HyperLogLog.Merge].
//
// # Hashing
//
// Both structures take a [Hasher]. The default, [XXH3], is deterministic,
// so results are reproducible across runs. [XXHash] and [Murmur3] are
// provided as alternatives, and [Seeded] or [RandomSeeded] derive
// independent hash families from any of them.
//
// # Thread Safety
//
// Neither type is thread-safe. Concurrent Contains or Count calls are
// fine, but Add must be serialized by the caller and must not run
// alongside reads.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - HyperLogLog: http://algo.inria.fr/flajolet/Publications/FlFuGaMe07.pdf
package sketch
