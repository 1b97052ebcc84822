package suggest

// =====================
// Таксономия поправок
// =====================

// CorrectionType names the way a trie child can account for the next piece
// of typed input. The set is closed: the traversal never produces anything
// else, and every switch below keeps a defensive default arm anyway.
type CorrectionType int

const (
	CTOmission CorrectionType = iota
	CTAdditionalProximity
	CTSubstitution
	CTNewWord
	CTMatch
	CTCompletion
	CTTerminal
	CTSpaceSubstitution
	CTInsertion
	CTTransposition

	ctCount // служебный: размер таблиц счётчиков
)

var ctNames = [...]string{
	CTOmission:            "omission",
	CTAdditionalProximity: "additional_proximity",
	CTSubstitution:        "substitution",
	CTNewWord:             "new_word",
	CTMatch:               "match",
	CTCompletion:          "completion",
	CTTerminal:            "terminal",
	CTSpaceSubstitution:   "space_substitution",
	CTInsertion:           "insertion",
	CTTransposition:       "transposition",
}

func (ct CorrectionType) String() string {
	if ct >= 0 && int(ct) < len(ctNames) {
		return ctNames[ct]
	}
	return "unknown"
}

// isEditCorrection: вставка, пропуск и перестановка меняют состав ввода.
func isEditCorrection(ct CorrectionType) bool {
	switch ct {
	case CTOmission:
		return true
	case CTAdditionalProximity:
		// спорно, но поведение сохраняем: не правка
		return false
	case CTSubstitution:
		// спорно, но поведение сохраняем: не правка
		return false
	case CTInsertion:
		return true
	case CTTransposition:
		return true
	default:
		return false
	}
}

// forwardInputCount: на сколько символов ввода продвигается курсор.
func forwardInputCount(ct CorrectionType) int {
	switch ct {
	case CTMatch:
		return 1
	case CTSpaceSubstitution:
		return 1
	case CTInsertion:
		return 2
	case CTTransposition:
		return 2
	default:
		return 0
	}
}
