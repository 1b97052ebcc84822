package suggest

import (
	"sort"
	"strings"

	"suggest/internal/customdict"
	"suggest/internal/dictionary"
	"suggest/pkg/options"
)

// =====================
// Лучевой поиск по словарю
// =====================

// Engine ranks dictionary words against partially typed input. One Engine is
// safe for sequential use; каждая выдача работает на своей сессии.
type Engine struct {
	cfg       Config
	dict      *dictionary.Dict
	layout    *Layout
	weighting Weighting
	recorder  Recorder

	customWords map[string]bool
	store       *customdict.CustomDict
}

const customWordProb = dictionary.MaxProb

// NewEngine builds an engine over a loaded dictionary. The custom-word store
// may be nil; when present its words are folded into the trie with a boosted
// weight, like any user-taught vocabulary.
func NewEngine(cfg Config, dict *dictionary.Dict, store *customdict.CustomDict, opts ...options.Options) (*Engine, error) {
	so := options.DefaultSearch
	for _, o := range opts {
		o.Apply(&so)
	}
	cfg.BeamWidth = so.BeamWidth
	cfg.MaxSuggestions = so.MaxSuggestions
	cfg.MaxEdits = so.MaxEdits
	cfg.MaxWords = so.MaxWords
	cfg.MaxCompletionDepth = so.MaxCompletionDepth

	layout := NewLayout(so.Layout)
	e := &Engine{
		cfg:         cfg,
		dict:        dict,
		layout:      layout,
		weighting:   NewTypingWeighting(cfg, layout),
		recorder:    nopRecorder{},
		customWords: make(map[string]bool),
		store:       store,
	}
	if err := e.loadCustomWords(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetRecorder swaps the diagnostics hook; nil restores the no-op.
func (e *Engine) SetRecorder(r Recorder) {
	if r == nil {
		e.recorder = nopRecorder{}
		return
	}
	e.recorder = r
}

// Suggest returns ranked candidates for the typed input. prevWord, if known,
// feeds the bigram table.
func (e *Engine) Suggest(input, prevWord string) []Suggestion {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	s := newSession(e.dict, e.layout, e.recorder, trimmed, prevWord)

	best := make(map[string]float32)
	active := []*Node{newRootNode(e.dict.Root, s.prevTerminalID)}
	for len(active) > 0 {
		if len(active) > e.cfg.BeamWidth {
			// добиваем порядок до полного, иначе обрезка луча зависит от
			// порядка обхода map детей
			sort.Slice(active, func(i, j int) bool {
				return betterNode(active[i], active[j])
			})
			active = active[:e.cfg.BeamWidth]
		}
		var next []*Node
		for _, n := range active {
			next = e.expand(s, n, next, best)
		}
		active = next
	}

	out := make([]Suggestion, 0, len(best))
	for word, dist := range best {
		out = append(out, Suggestion{Word: restoreCase(trimmed, word), Distance: dist})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > e.cfg.MaxSuggestions {
		out = out[:e.cfg.MaxSuggestions]
	}
	return out
}

// betterNode orders the beam. Ранжируем по нормализованной дистанции: для
// политик без нормализации она совпадает с суммарной, а нормализующая
// политика иначе молча игнорировалась бы.
func betterNode(a, b *Node) bool {
	if a.normalizedDistance != b.normalizedDistance {
		return a.normalizedDistance < b.normalizedDistance
	}
	if a.dic.ID != b.dic.ID {
		return a.dic.ID < b.dic.ID
	}
	return a.inputIndex < b.inputIndex
}

// expand generates every admissible correction for one frontier node. Каждый
// вариант проходит через AddCostAndForwardInput ровно один раз.
func (e *Engine) expand(s *Session, n *Node, next []*Node, best map[string]float32) []*Node {
	idx := n.inputIndex
	size := s.InputSize()

	if idx >= size {
		if n.dic.Terminal && len(n.word) > 0 {
			term := *n
			term.clusterSize = 0
			AddCostAndForwardInput(e.weighting, CTTerminal, s, n, &term, s.cache)
			text := term.Text()
			if d, ok := best[text]; !ok || term.normalizedDistance < d {
				best[text] = term.normalizedDistance
			}
		}
		if n.completions < e.cfg.MaxCompletionDepth {
			for _, child := range n.dic.Children {
				c := n.spawn(child)
				c.completions++
				AddCostAndForwardInput(e.weighting, CTCompletion, s, n, c, s.cache)
				next = append(next, c)
			}
		}
		return next
	}

	typed := s.InputAt(idx)

	// граница слов: пропущенный или криво нажатый пробел
	if n.dic.Terminal && len(n.word) > 0 && n.wordCount < e.cfg.MaxWords {
		if s.layout.NearSpace(typed) {
			w := n.spawnWord(e.dict.Root)
			AddCostAndForwardInput(e.weighting, CTSpaceSubstitution, s, n, w, s.cache)
			next = append(next, w)
		}
		if typed != ' ' {
			w := n.spawnWord(e.dict.Root)
			AddCostAndForwardInput(e.weighting, CTNewWord, s, n, w, s.cache)
			next = append(next, w)
		}
	}
	if typed == ' ' {
		// пробел закрывается только сменой слова
		return next
	}

	cluster, hasCluster := s.layout.Cluster(typed)

	for _, child := range n.dic.Children {
		d := s.layout.KeyDistance(typed, child.Char)
		switch {
		case d == 0 || s.layout.IsNeighbor(typed, child.Char):
			c := n.spawn(child)
			AddCostAndForwardInput(e.weighting, CTMatch, s, n, c, s.cache)
			next = append(next, c)
		case s.layout.IsAdditionalProximity(typed, child.Char) && n.editCount < e.cfg.MaxEdits:
			c := n.spawn(child)
			AddCostAndForwardInput(e.weighting, CTAdditionalProximity, s, n, c, s.cache)
			// сам шаг не двигает курсор: съеденный символ закрывает обход
			c.ForwardInput(0, 1, false)
			next = append(next, c)
		case n.editCount < e.cfg.MaxEdits:
			c := n.spawn(child)
			AddCostAndForwardInput(e.weighting, CTSubstitution, s, n, c, s.cache)
			c.ForwardInput(0, 1, false)
			next = append(next, c)
		}

		// кластерная клавиша: одна буква ввода, две буквы пути
		if hasCluster && child.Char == cluster[0] {
			if g, ok := child.Children[cluster[1]]; ok {
				c := n.spawn(child).spawn(g)
				c.clusterSize = len(cluster)
				AddCostAndForwardInput(e.weighting, CTMatch, s, n, c, s.cache)
				next = append(next, c)
			}
		}

		if n.editCount >= e.cfg.MaxEdits {
			continue
		}
		// пропущенная буква: дерево вперёд, курсор на месте
		o := n.spawn(child)
		AddCostAndForwardInput(e.weighting, CTOmission, s, n, o, s.cache)
		next = append(next, o)

		if idx+1 < size && typed != child.Char && s.InputAt(idx+1) == child.Char {
			// лишний символ перед ожидаемой буквой
			c := n.spawn(child)
			AddCostAndForwardInput(e.weighting, CTInsertion, s, n, c, s.cache)
			next = append(next, c)
			// перестановка соседних символов
			if g, ok := child.Children[typed]; ok {
				tr := n.spawn(child).spawn(g)
				AddCostAndForwardInput(e.weighting, CTTransposition, s, n, tr, s.cache)
				next = append(next, tr)
			}
		}
	}
	return next
}

func (e *Engine) loadCustomWords() error {
	if e.store == nil {
		return nil
	}
	words, err := e.store.All()
	if err != nil {
		return err
	}
	for _, w := range words {
		lw := strings.ToLower(w)
		e.customWords[lw] = true
		e.dict.Insert(lw, customWordProb)
	}
	return nil
}

// AddCustomWord teaches the engine a word and persists it in the store.
func (e *Engine) AddCustomWord(word string) error {
	lw := strings.ToLower(word)
	if e.store != nil {
		if err := e.store.Add(lw); err != nil {
			return err
		}
	}
	e.customWords[lw] = true
	e.dict.Insert(lw, customWordProb)
	return nil
}

// RemoveCustomWord forgets a previously taught word.
func (e *Engine) RemoveCustomWord(word string) error {
	lw := strings.ToLower(word)
	if e.store != nil {
		if err := e.store.Remove(lw); err != nil {
			return err
		}
	}
	if e.customWords[lw] {
		delete(e.customWords, lw)
		e.dict.Remove(lw)
	}
	return nil
}
