package suggest

import "suggest/internal/dictionary"

// =====================
// Политика набора текста
// =====================

// TypingWeighting prices corrections for the keyboard-typing modality:
// spatial costs come from key geometry, language costs from the bigram table.
type TypingWeighting struct {
	cfg    Config
	layout *Layout
}

func NewTypingWeighting(cfg Config, layout *Layout) *TypingWeighting {
	return &TypingWeighting{cfg: cfg, layout: layout}
}

// OmissionCost: пропуск той же буквы (сдвоенная) дешевле пропуска новой.
func (t *TypingWeighting) OmissionCost(parent, node *Node) float32 {
	if parent != nil && parent.dic.Char == node.dic.Char {
		return t.cfg.OmissionCostSameChar
	}
	return t.cfg.OmissionCost
}

func (t *TypingWeighting) AdditionalProximityCost() float32 {
	return t.cfg.AdditionalProximityCost
}

func (t *TypingWeighting) SubstitutionCost() float32 {
	return t.cfg.SubstitutionCost
}

func (t *TypingWeighting) NewWordCost(node *Node) float32 {
	return t.cfg.NewWordCost
}

// NewWordBigramCost prices the word boundary by how improbable the finished
// word is as a continuation of the one before it.
func (t *TypingWeighting) NewWordBigramCost(s *Session, parent *Node, cache BigramCache) float32 {
	if parent == nil || !parent.dic.Terminal {
		return 0
	}
	improb := dictionary.Improbability(s.OffsetDict(), parent.dic, parent.prevTerminalID, cache)
	return improb * t.cfg.BigramWeight
}

// MatchedCost: точное попадание бесплатно, соседняя клавиша — по дистанции.
// Для кластерной клавиши возвращаем явный сдвиг курсора: одна буква ввода
// закрывает несколько букв пути.
func (t *TypingWeighting) MatchedCost(s *Session, node *Node) (float32, *InputState) {
	typed := s.InputAt(node.inputIndex)
	if node.clusterSize > 1 {
		return t.cfg.MatchCost, &InputState{InputIndex: node.inputIndex + 1}
	}
	d := t.layout.KeyDistance(typed, node.dic.Char)
	if d == 0 {
		return t.cfg.MatchCost, nil
	}
	return t.cfg.ProximityCost * d, nil
}

func (t *TypingWeighting) CompletionCost(s *Session, node *Node) float32 {
	return t.cfg.CompletionCost
}

func (t *TypingWeighting) TerminalSpatialCost(s *Session, node *Node) float32 {
	return t.cfg.TerminalCost
}

func (t *TypingWeighting) TerminalLanguageCost(s *Session, node *Node, improbability float32) float32 {
	return improbability * t.cfg.BigramWeight
}

func (t *TypingWeighting) SpaceSubstitutionCost() float32 {
	return t.cfg.SpaceSubstitutionCost
}

// InsertionCost: дубль соседней буквы — типичный случай, он дешевле.
func (t *TypingWeighting) InsertionCost(s *Session, parent, node *Node) float32 {
	cur := s.InputAt(node.inputIndex)
	next := s.InputAt(node.inputIndex + 1)
	if cur != 0 && cur == next {
		return t.cfg.InsertionCostSameChar
	}
	return t.cfg.InsertionCost
}

func (t *TypingWeighting) TranspositionCost(s *Session, parent, node *Node) float32 {
	return t.cfg.TranspositionCost
}

// NeedsToNormalizeCompoundDistance: при наборе дистанции сопоставимы и без
// нормализации (она нужна жестовому вводу).
func (t *TypingWeighting) NeedsToNormalizeCompoundDistance() bool { return false }

// IsProximityNode: совпадение засчитано по соседней клавише, не по центру.
func (t *TypingWeighting) IsProximityNode(s *Session, node *Node) bool {
	if node.clusterSize > 1 {
		return false
	}
	typed := s.InputAt(node.inputIndex)
	return t.layout.IsNeighbor(typed, node.dic.Char)
}
