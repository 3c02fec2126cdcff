package pack

// Resolve picks the candidate whose declared keys best cover the given keys.
// Each candidate scores |declared ∩ given| / |declared|; a candidate
// declaring no keys scores 0. The running best is replaced on >=, so among
// equal scores the later candidate wins, and with no given keys the last
// candidate is chosen. It returns -1 only when there are no candidates.
func Resolve(candidates [][]string, keys []string) int {
	given := make(map[string]bool, len(keys))
	for _, k := range keys {
		given[k] = true
	}
	best, bestScore := -1, -1.0
	for i, declared := range candidates {
		score := 0.0
		if len(declared) > 0 {
			n := 0
			for _, k := range declared {
				if given[k] {
					n++
				}
			}
			score = float64(n) / float64(len(declared))
		}
		if score >= bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
