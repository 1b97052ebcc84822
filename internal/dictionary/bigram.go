package dictionary

// =====================
// Биграммы и кэш языковой стоимости
// =====================

// BigramCache memoizes the improbability of a node within one traversal
// session. Single writer, single reader, never shared between sessions.
type BigramCache map[int]int16

// MaxProb is the top of the unigram/bigram weight scale.
const MaxProb = 255

// Improbability converts the node's best probability (bigram continuation
// from prevID when present, unigram otherwise) into a 0..255 penalty.
// Результат кладётся в кэш по ID узла; повторный вызов — только чтение.
func Improbability(d *Dict, n *Node, prevID int, cache BigramCache) float32 {
	if v, ok := cache[n.ID]; ok {
		return float32(v)
	}
	prob := int(n.Prob)
	if prevID >= 0 {
		if m, ok := d.bigrams[prevID]; ok {
			if bp, ok := m[n.ID]; ok && int(bp) > prob {
				prob = int(bp)
			}
		}
	}
	improb := int16(MaxProb - prob)
	cache[n.ID] = improb
	return float32(improb)
}
