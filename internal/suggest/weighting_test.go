package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggest/internal/dictionary"
)

// mockWeighting возвращает различимые значения на каждый метод, чтобы
// проверить маршрутизацию стоимостей по видам поправок.
type mockWeighting struct {
	override  *InputState
	proximity bool
	normalize bool
	calls     []string
}

func (m *mockWeighting) OmissionCost(parent, node *Node) float32 {
	m.calls = append(m.calls, "omission")
	return 1.5
}

func (m *mockWeighting) AdditionalProximityCost() float32 {
	m.calls = append(m.calls, "additional_proximity")
	return 0.11
}

func (m *mockWeighting) SubstitutionCost() float32 {
	m.calls = append(m.calls, "substitution")
	return 0.12
}

func (m *mockWeighting) NewWordCost(node *Node) float32 {
	m.calls = append(m.calls, "new_word")
	return 0.13
}

func (m *mockWeighting) NewWordBigramCost(s *Session, parent *Node, cache BigramCache) float32 {
	m.calls = append(m.calls, "new_word_bigram")
	return 0.14
}

func (m *mockWeighting) MatchedCost(s *Session, node *Node) (float32, *InputState) {
	m.calls = append(m.calls, "matched")
	return 0.15, m.override
}

func (m *mockWeighting) CompletionCost(s *Session, node *Node) float32 {
	m.calls = append(m.calls, "completion")
	return 0.16
}

func (m *mockWeighting) TerminalSpatialCost(s *Session, node *Node) float32 {
	m.calls = append(m.calls, "terminal_spatial")
	return 0.17
}

func (m *mockWeighting) TerminalLanguageCost(s *Session, node *Node, improbability float32) float32 {
	m.calls = append(m.calls, "terminal_language")
	return improbability * 10
}

func (m *mockWeighting) SpaceSubstitutionCost() float32 {
	m.calls = append(m.calls, "space_substitution")
	return 0.19
}

func (m *mockWeighting) InsertionCost(s *Session, parent, node *Node) float32 {
	m.calls = append(m.calls, "insertion")
	return 2.0
}

func (m *mockWeighting) TranspositionCost(s *Session, parent, node *Node) float32 {
	m.calls = append(m.calls, "transposition")
	return 3.0
}

func (m *mockWeighting) NeedsToNormalizeCompoundDistance() bool { return m.normalize }

func (m *mockWeighting) IsProximityNode(s *Session, node *Node) bool {
	m.calls = append(m.calls, "is_proximity")
	return m.proximity
}

const testWordProb = 215

func testDict(t *testing.T) *dictionary.Dict {
	t.Helper()
	d := dictionary.New()
	d.Insert("ab", testWordProb)
	return d
}

// testNode спускается по слову от корня; курсор остаётся на нуле.
func testNode(t *testing.T, d *dictionary.Dict, word string) *Node {
	t.Helper()
	n := newRootNode(d.Root, -1)
	cur := d.Root
	for _, ch := range word {
		cur = cur.Children[ch]
		require.NotNil(t, cur)
		n = n.spawn(cur)
	}
	return n
}

func TestDispatchCostSources(t *testing.T) {
	// языковая стоимость терминала: (255 - вес слова) * 10 из mock-политики
	terminalLanguage := float32(dictionary.MaxProb-testWordProb) * 10

	tests := []struct {
		name           string
		ct             CorrectionType
		wantSpatial    float32
		wantLanguage   float32
		wantEdit       int
		wantForward    int
		wantTransposed int
	}{
		{name: "omission", ct: CTOmission, wantSpatial: 1.5, wantEdit: 1},
		{name: "additional proximity", ct: CTAdditionalProximity, wantSpatial: 0.11},
		{name: "substitution", ct: CTSubstitution, wantSpatial: 0.12},
		{name: "new word", ct: CTNewWord, wantSpatial: 0.13, wantLanguage: 0.14},
		{name: "match", ct: CTMatch, wantSpatial: 0.15, wantForward: 1},
		{name: "completion", ct: CTCompletion, wantSpatial: 0.16},
		{name: "terminal", ct: CTTerminal, wantSpatial: 0.17, wantLanguage: terminalLanguage},
		{name: "space substitution", ct: CTSpaceSubstitution, wantSpatial: 0.19, wantForward: 1},
		{name: "insertion", ct: CTInsertion, wantSpatial: 2.0, wantEdit: 1, wantForward: 2},
		{name: "transposition", ct: CTTransposition, wantSpatial: 3.0, wantEdit: 1, wantForward: 2, wantTransposed: 1},
		{name: "unrecognized", ct: CorrectionType(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDict(t)
			w := &mockWeighting{}
			s := newSession(d, NewLayout("qwerty"), nopRecorder{}, "ab", "")
			parent := newRootNode(d.Root, -1)
			node := testNode(t, d, "ab")

			AddCostAndForwardInput(w, tt.ct, s, parent, node, s.Cache())

			assert.Equal(t, tt.wantSpatial, node.SpatialDistance())
			assert.Equal(t, tt.wantLanguage, node.LanguageDistance())
			assert.Equal(t, tt.wantSpatial+tt.wantLanguage, node.CompoundDistance())
			assert.Equal(t, tt.wantEdit, node.EditCount())
			assert.Equal(t, tt.wantForward, node.InputIndex())
			assert.Equal(t, tt.wantTransposed, node.Transpositions())
			assert.Zero(t, node.ProximityCount())
		})
	}
}

func TestDispatchMatchCursorOverride(t *testing.T) {
	d := testDict(t)
	s := newSession(d, NewLayout("qwerty"), nopRecorder{}, "ab", "")
	parent := newRootNode(d.Root, -1)

	// с переопределением: курсор ставится абсолютно, счётный сдвиг не применяется
	w := &mockWeighting{override: &InputState{InputIndex: 5}}
	node := testNode(t, d, "ab")
	AddCostAndForwardInput(w, CTMatch, s, parent, node, s.Cache())
	assert.Equal(t, 5, node.InputIndex())

	// без переопределения: ровно +1 и без перестановки
	w = &mockWeighting{}
	node = testNode(t, d, "ab")
	AddCostAndForwardInput(w, CTMatch, s, parent, node, s.Cache())
	assert.Equal(t, 1, node.InputIndex())
	assert.Zero(t, node.Transpositions())
}

func TestDispatchMatchProximityFromPolicy(t *testing.T) {
	d := testDict(t)
	s := newSession(d, NewLayout("qwerty"), nopRecorder{}, "ab", "")
	parent := newRootNode(d.Root, -1)

	w := &mockWeighting{proximity: true}
	node := testNode(t, d, "ab")
	AddCostAndForwardInput(w, CTMatch, s, parent, node, s.Cache())
	assert.Equal(t, 1, node.ProximityCount())
	assert.Contains(t, w.calls, "is_proximity")

	// для прочих видов запрос к политике не делается
	w = &mockWeighting{proximity: true}
	node = testNode(t, d, "ab")
	AddCostAndForwardInput(w, CTOmission, s, parent, node, s.Cache())
	assert.Zero(t, node.ProximityCount())
	assert.NotContains(t, w.calls, "is_proximity")
}

func TestDispatchTerminalPopulatesCache(t *testing.T) {
	d := testDict(t)
	s := newSession(d, NewLayout("qwerty"), nopRecorder{}, "ab", "")
	parent := newRootNode(d.Root, -1)
	node := testNode(t, d, "ab")

	require.True(t, node.Terminal())
	require.Equal(t, 'b', node.Char())

	require.Empty(t, s.Cache())
	w := &mockWeighting{}
	AddCostAndForwardInput(w, CTTerminal, s, parent, node, s.Cache())

	// результат внешнего поиска прошёл в политику без изменений
	assert.Equal(t, float32(dictionary.MaxProb-testWordProb)*10, node.LanguageDistance())
	cached, ok := s.Cache()[node.dic.ID]
	require.True(t, ok)
	assert.Equal(t, int16(dictionary.MaxProb-testWordProb), cached)
}

func TestDispatchNormalization(t *testing.T) {
	d := testDict(t)
	s := newSession(d, NewLayout("qwerty"), nopRecorder{}, "ab", "")
	parent := newRootNode(d.Root, -1)

	// normalize=false: нормализованная равна суммарной
	w := &mockWeighting{}
	node := testNode(t, d, "ab")
	AddCostAndForwardInput(w, CTMatch, s, parent, node, s.Cache())
	assert.Equal(t, node.CompoundDistance(), node.NormalizedDistance())

	// normalize=true: масштаб по покрытию ввода; Match закрыл 1 из 2 символов
	w = &mockWeighting{normalize: true}
	node = testNode(t, d, "ab")
	AddCostAndForwardInput(w, CTMatch, s, parent, node, s.Cache())
	assert.Equal(t, node.CompoundDistance()*2, node.NormalizedDistance())
}

func TestDispatchDeterminism(t *testing.T) {
	d := testDict(t)
	w := &mockWeighting{}
	s := newSession(d, NewLayout("qwerty"), nopRecorder{}, "ab", "")
	parent := newRootNode(d.Root, -1)

	run := func() (float32, float32, float32, int, int) {
		node := testNode(t, d, "ab")
		AddCostAndForwardInput(w, CTTerminal, s, parent, node, s.Cache())
		return node.SpatialDistance(), node.LanguageDistance(), node.CompoundDistance(), node.EditCount(), node.InputIndex()
	}

	s1, l1, c1, e1, i1 := run()
	s2, l2, c2, e2, i2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, e1, e2)
	assert.Equal(t, i1, i2)
}

func TestDispatchRecordsDiagnostics(t *testing.T) {
	d := testDict(t)
	rec := &CountingRecorder{}
	s := newSession(d, NewLayout("qwerty"), rec, "ab", "")
	parent := newRootNode(d.Root, -1)
	w := &mockWeighting{}

	AddCostAndForwardInput(w, CTMatch, s, parent, testNode(t, d, "ab"), s.Cache())
	AddCostAndForwardInput(w, CTMatch, s, parent, testNode(t, d, "ab"), s.Cache())
	AddCostAndForwardInput(w, CTOmission, s, parent, testNode(t, d, "ab"), s.Cache())
	AddCostAndForwardInput(w, CorrectionType(-7), s, parent, testNode(t, d, "ab"), s.Cache())

	assert.Equal(t, 2, rec.Count(CTMatch))
	assert.Equal(t, 1, rec.Count(CTOmission))
	assert.Equal(t, 1, rec.Count(CorrectionType(-7)))
	assert.Zero(t, rec.Count(CTTerminal))
}

func TestCorrectionTypeString(t *testing.T) {
	assert.Equal(t, "match", CTMatch.String())
	assert.Equal(t, "transposition", CTTransposition.String())
	assert.Equal(t, "unknown", CorrectionType(42).String())
}
