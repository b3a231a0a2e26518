package sketch_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/jcalabro/sketch"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	// Create a filter for 10,000 items with 1% false positive rate
	f, err := sketch.NewBloomFilter(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	f.Add([]byte("apple"))
	f.Add([]byte("banana"))
	f.Add([]byte("cherry"))

	fmt.Println("apple:", f.Contains([]byte("apple")))
	fmt.Println("banana:", f.Contains([]byte("banana")))

	// Output:
	// apple: true
	// banana: true
}

// This example shows how the filter is sized from its parameters.
func ExampleNewBloomFilter() {
	f, err := sketch.NewBloomFilter(20, 0.05)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Size: %d, eps: %v, hc: %d\n", f.Size(), f.Epsilon(), f.HashCount())

	// Output:
	// Size: 128, eps: 0.05, hc: 5
}

// This example shows how to use string keys without allocation overhead.
func ExampleBloomFilter_AddString() {
	f, err := sketch.NewBloomFilter(10_000, 0.01)
	if err != nil {
		panic(err)
	}

	// AddString and ContainsString avoid allocating when you have string keys
	f.AddString("user:12345")
	f.AddString("user:67890")

	fmt.Println("user:12345 exists:", f.ContainsString("user:12345"))

	// Output:
	// user:12345 exists: true
}

// This example demonstrates deduplication with ContainsAndAdd.
func ExampleBloomFilter_ContainsAndAdd() {
	f, err := sketch.NewBloomFilter(1000, 0.001)
	if err != nil {
		panic(err)
	}

	events := []string{"evt-1", "evt-2", "evt-1", "evt-2"}
	for _, e := range events {
		if f.ContainsAndAddString(e) {
			fmt.Println("seen:", e)
		}
	}

	// Output:
	// seen: evt-1
	// seen: evt-2
}

// This example shows how a zero item count is rejected.
func ExampleNewBloomFilter_errors() {
	_, err := sketch.NewBloomFilter(0, 0.01)
	fmt.Println(errors.Is(err, sketch.ErrZeroItems))

	_, err = sketch.NewBloomFilter(100, 1.5)
	fmt.Println(err)

	// Output:
	// true
	// sketch: false positive rate must be in (0, 1): got 1.5
}

// This example estimates the number of distinct visitors.
func ExampleHyperLogLog() {
	h, err := sketch.NewHyperLogLog(14)
	if err != nil {
		panic(err)
	}

	for _, user := range []string{"alice", "bob", "carol", "alice", "bob"} {
		h.AddString(user)
	}

	fmt.Printf("distinct: %.0f\n", h.Count())

	// Output:
	// distinct: 3
}

// This example merges per-shard estimators into a total.
func ExampleHyperLogLog_Merge() {
	total, _ := sketch.NewHyperLogLog(14)

	for shard := range 4 {
		h, _ := sketch.NewHyperLogLog(14)
		for i := range 10 {
			h.AddString(fmt.Sprintf("shard-%d-user-%d", shard, i))
		}
		if err := total.Merge(h); err != nil {
			panic(err)
		}
	}

	// Estimates are approximate; report to the nearest ten.
	fmt.Printf("distinct: ~%.0f\n", math.Round(total.Count()/10)*10)

	// Output:
	// distinct: ~40
}

// This example injects a seeded hasher for an independent hash family.
func ExampleNewHyperLogLogWithHasher() {
	h, err := sketch.NewHyperLogLogWithHasher(sketch.Seeded(sketch.Murmur3{}, 2024), 12)
	if err != nil {
		panic(err)
	}

	h.AddString("x")
	h.AddString("x")

	fmt.Println("registers:", h.RegisterCount())
	fmt.Printf("distinct: %.0f\n", h.Count())

	// Output:
	// registers: 4096
	// distinct: 1
}
