package sketch

import (
	"math/rand/v2"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher maps data to a 64-bit hash. Varying seed must yield an
// independent hash of the same data, and the result for a given
// (data, seed) pair must be deterministic.
//
// Implementations must not retain or modify data.
type Hasher interface {
	Hash(data []byte, seed uint64) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(data []byte, seed uint64) uint64

// Hash calls f(data, seed).
func (f HasherFunc) Hash(data []byte, seed uint64) uint64 {
	return f(data, seed)
}

// XXH3 hashes with xxh3. It is the default Hasher.
type XXH3 struct{}

// Hash implements Hasher.
func (XXH3) Hash(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxh3.Hash(data)
	}
	return xxh3.HashSeed(data, seed)
}

// XXHash hashes with xxHash64.
type XXHash struct{}

// Hash implements Hasher.
func (XXHash) Hash(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(data)
	}
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64()
}

// Murmur3 hashes with the 64-bit half of MurmurHash3 x64_128.
// Only 32 bits of seed are significant, so the upper half is folded
// into the lower.
type Murmur3 struct{}

// Hash implements Hasher.
func (Murmur3) Hash(data []byte, seed uint64) uint64 {
	return murmur3.Sum64WithSeed(data, uint32(seed)^uint32(seed>>32))
}

// DefaultHasher is used by the constructors that do not take a Hasher.
var DefaultHasher Hasher = XXH3{}

// splitmix64 finalizer constants (Vigna, 2014).
const (
	mixMul1 = 0xbf58476d1ce4e5b9
	mixMul2 = 0x94d049bb133111eb
)

// mix64 applies the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * mixMul1
	x = (x ^ (x >> 27)) * mixMul2
	return x ^ (x >> 31)
}

type seeded struct {
	h    Hasher
	base uint64
}

func (s seeded) Hash(data []byte, seed uint64) uint64 {
	return s.h.Hash(data, mix64(s.base^seed))
}

// Seeded returns a Hasher that mixes base into every seed passed to h.
// Two structures built with different bases hash the same item to
// unrelated positions.
func Seeded(h Hasher, base uint64) Hasher {
	return seeded{h: h, base: base}
}

// RandomSeeded is Seeded with a base drawn from the process RNG. Results
// are not reproducible across runs.
func RandomSeeded(h Hasher) Hasher {
	return Seeded(h, rand.Uint64())
}

// stringBytes returns the bytes of s without copying. The result must
// not be modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
