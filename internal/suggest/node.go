package suggest

import "suggest/internal/dictionary"

// =====================
// Узел фронтира поиска
// =====================

// InputState is an explicit cursor override. Only the Match cost computation
// produces one, when the typed key stands for more than one dictionary
// character and the plain "advance by one" rule would desynchronize the
// cursor from the trie depth.
type InputState struct {
	InputIndex int
}

// Node is one candidate partial match on the search frontier. It accumulates
// cost as the traversal descends; the dispatcher is the only mutator and
// always calls the cursor update before the cost update.
type Node struct {
	dic        *dictionary.Node
	inputIndex int

	word   []rune // буквы текущего слова по пути в дереве
	prefix string // завершённые слова, включая разделители

	prevTerminalID int // терминал предыдущего слова для биграмм, -1 если нет
	clusterSize    int // >1, когда одна клавиша дала несколько букв пути
	wordCount      int

	spatialDistance    float32
	languageDistance   float32
	compoundDistance   float32
	normalizedDistance float32

	editCount      int
	proximityCount int
	transpositions int
	completions    int
}

func newRootNode(dic *dictionary.Node, prevTerminalID int) *Node {
	return &Node{dic: dic, prevTerminalID: prevTerminalID, wordCount: 1}
}

// spawn copies the node one trie step down. Курсор и стоимости не трогаем:
// это дело диспетчера.
func (n *Node) spawn(child *dictionary.Node) *Node {
	c := *n
	c.dic = child
	c.clusterSize = 0
	c.word = append(append([]rune(nil), n.word...), child.Char)
	return &c
}

// spawnWord restarts the path at the trie root for a following word.
func (n *Node) spawnWord(root *dictionary.Node) *Node {
	c := *n
	c.dic = root
	c.clusterSize = 0
	c.prefix = n.prefix + string(n.word) + " "
	c.word = nil
	c.prevTerminalID = n.dic.ID
	c.wordCount++
	return &c
}

// ForwardInput advances the input cursor by count characters starting at
// startOffset from the cursor; transposed marks the consumed pair as swapped.
func (n *Node) ForwardInput(startOffset, count int, transposed bool) {
	n.inputIndex += startOffset + count
	if transposed {
		n.transpositions++
	}
}

// ApplyInputState repositions the cursor absolutely, replacing the
// count-based rule entirely.
func (n *Node) ApplyInputState(st *InputState) {
	n.inputIndex = st.InputIndex
}

// AddCost folds one correction's cost into the running totals. Последний шаг
// диспетчеризации: после него узел снова принадлежит внешнему поиску.
func (n *Node) AddCost(spatial, language float32, normalize bool, inputSize int, isEdit, isProximity bool) {
	n.spatialDistance += spatial
	n.languageDistance += language
	if isEdit {
		n.editCount++
	}
	if isProximity {
		n.proximityCount++
	}
	n.compoundDistance = n.spatialDistance + n.languageDistance
	if normalize {
		covered := n.inputIndex
		if covered < 1 {
			covered = 1
		}
		n.normalizedDistance = n.compoundDistance * float32(inputSize) / float32(covered)
	} else {
		n.normalizedDistance = n.compoundDistance
	}
}

func (n *Node) InputIndex() int             { return n.inputIndex }
func (n *Node) Char() rune                  { return n.dic.Char }
func (n *Node) Terminal() bool              { return n.dic.Terminal }
func (n *Node) SpatialDistance() float32    { return n.spatialDistance }
func (n *Node) LanguageDistance() float32   { return n.languageDistance }
func (n *Node) CompoundDistance() float32   { return n.compoundDistance }
func (n *Node) NormalizedDistance() float32 { return n.normalizedDistance }
func (n *Node) EditCount() int              { return n.editCount }
func (n *Node) ProximityCount() int         { return n.proximityCount }
func (n *Node) Transpositions() int         { return n.transpositions }

// Text returns the full multi-word candidate accumulated so far.
func (n *Node) Text() string { return n.prefix + string(n.word) }
