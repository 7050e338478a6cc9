package tweezers

import (
	"fmt"
	"sort"
	"sync"
)

// Outcome tells which path the single-ray force took.
type Outcome uint8

const (
	Hit        Outcome = iota // ray entered the sphere, force computed
	Miss                      // ray missed (or grazed) the sphere, zero force
	Degenerate                // force was NaN and was clamped to zero
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Degenerate:
		return "degenerate"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

type RayLog struct {
	Outcome Outcome
	Count   int
	Last    Ray // most recent ray with this outcome
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[Outcome]*RayLog
}

var cache = &RayLogCache{
	rays: make(map[Outcome]*RayLog),
}

func logRay(outcome Outcome, ray Ray) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	rl, ok := cache.rays[outcome]
	if !ok {
		rl = &RayLog{Outcome: outcome}
		cache.rays[outcome] = rl
	}
	rl.Count++
	rl.Last = ray
}

// rayCounts returns a snapshot of per-outcome counters.
func rayCounts() map[Outcome]int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	out := make(map[Outcome]int, len(cache.rays))
	for k, v := range cache.rays {
		out[k] = v.Count
	}
	return out
}

func raysStats() {
	counts := rayCounts()
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Printf("Ray outcome %s: %d rays\n", Outcome(k), counts[Outcome(k)])
	}
}
