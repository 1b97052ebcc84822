package suggest

import "suggest/internal/dictionary"

// =====================
// Политика стоимостей и диспетчер
// =====================

// Weighting supplies the numeric cost formulas for one input modality.
// Методы чистые относительно ядра: политика не трогает узел, только считает.
type Weighting interface {
	OmissionCost(parent, node *Node) float32
	AdditionalProximityCost() float32
	SubstitutionCost() float32
	NewWordCost(node *Node) float32
	NewWordBigramCost(s *Session, parent *Node, cache BigramCache) float32
	// MatchedCost returns the spatial cost and, optionally, an explicit
	// cursor override that replaces the count-based advance.
	MatchedCost(s *Session, node *Node) (float32, *InputState)
	CompletionCost(s *Session, node *Node) float32
	TerminalSpatialCost(s *Session, node *Node) float32
	TerminalLanguageCost(s *Session, node *Node, improbability float32) float32
	SpaceSubstitutionCost() float32
	InsertionCost(s *Session, parent, node *Node) float32
	TranspositionCost(s *Session, parent, node *Node) float32
	NeedsToNormalizeCompoundDistance() bool
	IsProximityNode(s *Session, node *Node) bool
}

// AddCostAndForwardInput is the single entry point the traversal calls for
// every candidate expansion: it prices the correction, classifies it,
// advances the node's input cursor and folds the cost into the node.
// Ровно один вызов обновления курсора и ровно один AddCost, в этом порядке.
func AddCostAndForwardInput(w Weighting, ct CorrectionType, s *Session,
	parent, node *Node, cache BigramCache) {
	inputSize := s.InputSize()
	spatial, override := spatialCost(w, ct, s, parent, node)
	language := languageCost(w, ct, s, parent, node, cache)
	edit := isEditCorrection(ct)
	proximity := isProximityCorrection(w, ct, s, node)
	s.recorder.Record(ct, node)
	if override != nil {
		node.ApplyInputState(override)
	} else {
		node.ForwardInput(0, forwardInputCount(ct), ct == CTTransposition)
	}
	node.AddCost(spatial, language, w.NeedsToNormalizeCompoundDistance(),
		inputSize, edit, proximity)
}

// spatialCost routes to the per-operation policy method. Only Match may
// yield a cursor override.
func spatialCost(w Weighting, ct CorrectionType, s *Session, parent, node *Node) (float32, *InputState) {
	switch ct {
	case CTOmission:
		return w.OmissionCost(parent, node), nil
	case CTAdditionalProximity:
		return w.AdditionalProximityCost(), nil
	case CTSubstitution:
		return w.SubstitutionCost(), nil
	case CTNewWord:
		return w.NewWordCost(node), nil
	case CTMatch:
		return w.MatchedCost(s, node)
	case CTCompletion:
		return w.CompletionCost(s, node), nil
	case CTTerminal:
		return w.TerminalSpatialCost(s, node), nil
	case CTSpaceSubstitution:
		return w.SpaceSubstitutionCost(), nil
	case CTInsertion:
		return w.InsertionCost(s, parent, node), nil
	case CTTransposition:
		return w.TranspositionCost(s, parent, node), nil
	default:
		// недостижимо при корректном вызывающем
		return 0, nil
	}
}

func languageCost(w Weighting, ct CorrectionType, s *Session, parent, node *Node, cache BigramCache) float32 {
	switch ct {
	case CTNewWord:
		return w.NewWordBigramCost(s, parent, cache)
	case CTTerminal:
		improbability := dictionary.Improbability(s.OffsetDict(), node.dic, node.prevTerminalID, cache)
		return w.TerminalLanguageCost(s, node, improbability)
	default:
		return 0
	}
}

func isProximityCorrection(w Weighting, ct CorrectionType, s *Session, node *Node) bool {
	switch ct {
	case CTMatch:
		// зависит от геометрии попадания, а не от вида поправки
		return w.IsProximityNode(s, node)
	default:
		return false
	}
}
