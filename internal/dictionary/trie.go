package dictionary

// =====================
// Префиксное дерево словаря
// =====================

// Node is a single trie node. Terminal nodes carry the finished word and its
// unigram weight so the traversal never has to rebuild either.
type Node struct {
	Char     rune
	Children map[rune]*Node
	Terminal bool
	Prob     uint8  // вес слова 0..255, заполняется только на терминале
	Word     string // заполняется только на терминале
	ID       int
}

// Dict holds the trie plus the bigram table keyed by terminal node ids.
type Dict struct {
	Root      *Node
	nodeCount int
	wordCount int
	bigrams   map[int]map[int]uint8
	terminals map[string]int
}

func New() *Dict {
	d := &Dict{
		bigrams:   make(map[int]map[int]uint8),
		terminals: make(map[string]int),
	}
	d.Root = d.newNode(0)
	return d
}

func (d *Dict) newNode(ch rune) *Node {
	n := &Node{Char: ch, Children: make(map[rune]*Node), ID: d.nodeCount}
	d.nodeCount++
	return n
}

// Insert adds a word with a unigram weight. Re-inserting keeps the larger
// weight, so custom words can only boost an existing entry.
func (d *Dict) Insert(word string, prob uint8) {
	n := d.Root
	for _, ch := range word {
		child, ok := n.Children[ch]
		if !ok {
			child = d.newNode(ch)
			n.Children[ch] = child
		}
		n = child
	}
	if !n.Terminal {
		n.Terminal = true
		d.wordCount++
	}
	if prob > n.Prob {
		n.Prob = prob
	}
	n.Word = word
	d.terminals[word] = n.ID
}

// Remove unmarks a terminal. Узлы не вырезаем: дерево живёт всю сессию,
// а повторная вставка того же слова дешевле чистки поддерева.
func (d *Dict) Remove(word string) bool {
	n, ok := d.Lookup(word)
	if !ok || !n.Terminal {
		return false
	}
	n.Terminal = false
	n.Prob = 0
	n.Word = ""
	d.wordCount--
	delete(d.terminals, word)
	return true
}

// Lookup walks the trie and returns the node for the exact word.
func (d *Dict) Lookup(word string) (*Node, bool) {
	n := d.Root
	for _, ch := range word {
		child, ok := n.Children[ch]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// TerminalID returns the node id of a finished word, or -1.
func (d *Dict) TerminalID(word string) int {
	if id, ok := d.terminals[word]; ok {
		return id
	}
	return -1
}

func (d *Dict) Len() int { return d.wordCount }

// AddBigram registers prev->next continuation weight. Both words must be
// terminals already.
func (d *Dict) AddBigram(prev, next string, prob uint8) bool {
	prevID, ok := d.terminals[prev]
	if !ok {
		return false
	}
	nextID, ok := d.terminals[next]
	if !ok {
		return false
	}
	m, ok := d.bigrams[prevID]
	if !ok {
		m = make(map[int]uint8)
		d.bigrams[prevID] = m
	}
	if prob > m[nextID] {
		m[nextID] = prob
	}
	return true
}

// WordEntry is one word with its weight, used by the binary writer.
type WordEntry struct {
	Word string
	Prob uint8
}

// Words returns every terminal in the dictionary. Порядок не определён,
// вызывающий сортирует сам при необходимости.
func (d *Dict) Words() []WordEntry {
	out := make([]WordEntry, 0, d.wordCount)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Terminal {
			out = append(out, WordEntry{Word: n.Word, Prob: n.Prob})
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

// BigramEntry is one prev->next pair with its weight.
type BigramEntry struct {
	Prev, Next string
	Prob       uint8
}

// Bigrams returns the bigram table as word pairs.
func (d *Dict) Bigrams() []BigramEntry {
	byID := make(map[int]string, len(d.terminals))
	for w, id := range d.terminals {
		byID[id] = w
	}
	var out []BigramEntry
	for prevID, m := range d.bigrams {
		for nextID, prob := range m {
			prev, ok := byID[prevID]
			if !ok {
				continue
			}
			next, ok := byID[nextID]
			if !ok {
				continue
			}
			out = append(out, BigramEntry{Prev: prev, Next: next, Prob: prob})
		}
	}
	return out
}
