package polygen

import (
	"sort"

	"golang.org/x/exp/rand"
)

// sampleBudgets splits total into count positive integer parts, one degree
// budget per monomial. It draws count-1 distinct cut points from {1..total-1},
// sorts them and takes consecutive differences, which yields a near-uniform
// random composition. Duplicated cut points would create a zero-length part,
// hence the distinctness requirement.
func sampleBudgets(total, count int, rng *rand.Rand) ([]int, error) {
	if count < 1 || total < count {
		return nil, &BudgetError{Total: total, Count: count}
	}
	if count == 1 {
		return []int{total}, nil
	}

	cuts := sampleDistinct(count-1, total-1, rng)
	sort.Ints(cuts)

	parts := make([]int, count)
	prev := 0
	for i, c := range cuts {
		parts[i] = c - prev
		prev = c
	}
	parts[count-1] = total - prev
	return parts, nil
}

// sampleDistinct draws k distinct integers uniformly from {1..max}, k <= max.
// Sparse requests use rejection against a seen-set; dense requests (k over
// half the range) switch to a partial Fisher-Yates shuffle so the rejection
// loop cannot crawl.
func sampleDistinct(k, max int, rng *rand.Rand) []int {
	if k > max/2 {
		pool := make([]int, max)
		for i := range pool {
			pool[i] = i + 1
		}
		for i := 0; i < k; i++ {
			j := i + rng.Intn(max-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		return pool[:k:k]
	}

	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		v := 1 + rng.Intn(max)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
