package suggest

import (
	"strings"

	"suggest/internal/dictionary"
)

// =====================
// Сессия обхода
// =====================

// BigramCache is reexported so callers wire the dispatcher without importing
// the dictionary package directly.
type BigramCache = dictionary.BigramCache

// Session carries everything one query needs: the typed input, the
// dictionary handle, keyboard geometry and the per-session bigram cache.
// Сессия живёт в одной горутине; кэш не разделяется между сессиями.
type Session struct {
	input    []rune
	dict     *dictionary.Dict
	layout   *Layout
	recorder Recorder
	cache    BigramCache

	prevTerminalID int
}

func newSession(dict *dictionary.Dict, layout *Layout, recorder Recorder, input, prevWord string) *Session {
	prevID := -1
	if prevWord != "" {
		prevID = dict.TerminalID(strings.ToLower(prevWord))
	}
	return &Session{
		input:          []rune(strings.ToLower(input)),
		dict:           dict,
		layout:         layout,
		recorder:       recorder,
		cache:          make(BigramCache),
		prevTerminalID: prevID,
	}
}

func (s *Session) InputSize() int { return len(s.input) }

// InputAt returns the typed rune at i, or 0 past the end. Запросы за краем
// идут от шагов Completion/Terminal — это штатно.
func (s *Session) InputAt(i int) rune {
	if i < 0 || i >= len(s.input) {
		return 0
	}
	return s.input[i]
}

// OffsetDict is the dictionary handle passed through to the bigram lookup.
func (s *Session) OffsetDict() *dictionary.Dict { return s.dict }

func (s *Session) Cache() BigramCache { return s.cache }
