package testutil

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
// Uses a single backing array; each vector is capacity-limited.
func (r *RNG) UniformRangeVectors(num, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)
	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()*2 - 1
		}
		vectors[i] = vec
	}
	return vectors
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// Vocabulary returns n distinct lower-case words, shortest first.
func (r *RNG) Vocabulary(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for length := 1; len(words) < n; length++ {
		// Try a bounded number of draws per length before growing.
		for tries := 0; tries < 4*n && len(words) < n; tries++ {
			var sb strings.Builder
			for range length {
				sb.WriteByte(letters[r.rand.Intn(len(letters))])
			}
			w := sb.String()
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s; s=1.0 gives standard Zipf.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(zipfCDF(n, s))
}

func zipfCDF(n int, s float64) []float64 {
	cdf := make([]float64, max(n, 1))
	var sum float64
	for k := range cdf {
		sum += 1.0 / math.Pow(float64(k+1), s)
		cdf[k] = sum
	}
	return cdf
}

// zipfLocked samples by inverse transform (caller must hold lock).
func (r *RNG) zipfLocked(cdf []float64) int {
	u := r.rand.Float64() * cdf[len(cdf)-1]
	return min(sort.SearchFloat64s(cdf, u), len(cdf)-1)
}

// ZipfCorpus draws words from vocab with Zipf skew s and lays them out
// wordsPerLine to a line, separated by single spaces.
func (r *RNG) ZipfCorpus(vocab []string, words, wordsPerLine int, s float64) string {
	cdf := zipfCDF(len(vocab), s)

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	for i := range words {
		switch {
		case i == 0:
		case wordsPerLine > 0 && i%wordsPerLine == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(vocab[r.zipfLocked(cdf)])
	}
	sb.WriteByte('\n')
	return sb.String()
}
