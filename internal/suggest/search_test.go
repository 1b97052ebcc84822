package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggest/internal/dictionary"
	"suggest/pkg/options"
)

func searchDict(t *testing.T) *dictionary.Dict {
	t.Helper()
	d := dictionary.New()
	d.Insert("the", 250)
	d.Insert("hello", 230)
	d.Insert("world", 220)
	d.Insert("there", 210)
	d.Insert("help", 200)
	d.Insert("held", 190)
	d.AddBigram("hello", "world", 240)
	return d
}

func searchEngine(t *testing.T, opts ...options.Options) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig, searchDict(t), nil, opts...)
	require.NoError(t, err)
	return e
}

func words(out []Suggestion) []string {
	res := make([]string, len(out))
	for i, s := range out {
		res[i] = s.Word
	}
	return res
}

func TestSuggestExactWord(t *testing.T) {
	e := searchEngine(t)
	out := e.Suggest("hello", "")
	require.NotEmpty(t, out)
	assert.Equal(t, "hello", out[0].Word)
}

func TestSuggestTypos(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "transposed letters", input: "teh", want: "the"},
		{name: "omitted letter", input: "helo", want: "hello"},
		{name: "extra letter", input: "helllo", want: "hello"},
		{name: "neighbor key", input: "jello", want: "hello"},
		{name: "completion", input: "hel", want: "hello"},
	}

	e := searchEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.Suggest(tt.input, "")
			assert.Contains(t, words(out), tt.want, "input %q", tt.input)
		})
	}
}

func TestSuggestCompletionRanksBoth(t *testing.T) {
	e := searchEngine(t)
	got := words(e.Suggest("hel", ""))
	assert.Contains(t, got, "hello")
	assert.Contains(t, got, "help")
}

func TestSuggestMissingSpace(t *testing.T) {
	e := searchEngine(t)
	got := words(e.Suggest("helloworld", ""))
	assert.Contains(t, got, "hello world")
}

func TestSuggestExplicitSpace(t *testing.T) {
	e := searchEngine(t)
	got := words(e.Suggest("hello world", ""))
	assert.Contains(t, got, "hello world")
}

func TestSuggestBigramPrefersContinuation(t *testing.T) {
	e := searchEngine(t)
	// wprld: опечатка в "world"; биграмма hello->world должна не мешать
	got := words(e.Suggest("wprld", "hello"))
	assert.Contains(t, got, "world")
}

func TestSuggestRestoresCase(t *testing.T) {
	e := searchEngine(t)
	got := words(e.Suggest("Helo", ""))
	assert.Contains(t, got, "Hello")

	got = words(e.Suggest("HELO", ""))
	assert.Contains(t, got, "HELLO")
}

func TestSuggestEmptyInput(t *testing.T) {
	e := searchEngine(t)
	assert.Nil(t, e.Suggest("", ""))
	assert.Nil(t, e.Suggest("   ", ""))
}

func TestSuggestRespectsMaxSuggestions(t *testing.T) {
	e := searchEngine(t, options.WithMaxSuggestions(2))
	out := e.Suggest("hel", "")
	assert.LessOrEqual(t, len(out), 2)
}

func TestSuggestDeterministicOrder(t *testing.T) {
	e := searchEngine(t)
	first := e.Suggest("helo", "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Suggest("helo", ""))
	}
}

func TestBeamOrderUsesNormalizedDistance(t *testing.T) {
	d := searchDict(t)

	// a дешевле по сумме, но закрыл 1 символ ввода из 4
	a := newRootNode(d.Root, -1).spawn(d.Root.Children['h'])
	a.ForwardInput(0, 1, false)
	a.AddCost(1.0, 0, true, 4, false, false)
	require.Equal(t, float32(4.0), a.NormalizedDistance())

	// b дороже по сумме, но закрыл весь ввод
	b := newRootNode(d.Root, -1).spawn(d.Root.Children['t'])
	b.ForwardInput(0, 4, false)
	b.AddCost(2.0, 0, true, 4, false, false)
	require.Equal(t, float32(2.0), b.NormalizedDistance())

	// луч ранжирует по нормализованной, а не по суммарной
	assert.Less(t, a.CompoundDistance(), b.CompoundDistance())
	assert.True(t, betterNode(b, a))
	assert.False(t, betterNode(a, b))
}

func TestCustomWords(t *testing.T) {
	e := searchEngine(t)
	require.NoError(t, e.AddCustomWord("zorblax"))

	out := e.Suggest("zorblax", "")
	require.NotEmpty(t, out)
	assert.Equal(t, "zorblax", out[0].Word)

	require.NoError(t, e.RemoveCustomWord("zorblax"))
	assert.NotContains(t, words(e.Suggest("zorblax", "")), "zorblax")
}

func TestSuggestCountsDispatches(t *testing.T) {
	e := searchEngine(t)
	rec := &CountingRecorder{}
	e.SetRecorder(rec)

	e.Suggest("teh", "")
	assert.Greater(t, rec.Count(CTMatch), 0)
	assert.Greater(t, rec.Count(CTTerminal), 0)
	assert.Greater(t, rec.Count(CTTransposition), 0)
}

func TestClusterKeyMatch(t *testing.T) {
	d := dictionary.New()
	d.Insert("aepfel", 200)
	e, err := NewEngine(DefaultConfig, d, nil)
	require.NoError(t, err)

	// 'ä' — одна клавиша, в словаре 'ae': курсор идёт через переопределение
	got := words(e.Suggest("äpfel", ""))
	assert.Contains(t, got, "aepfel")
}
