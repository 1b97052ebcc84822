package options

// DefaultSearch — консервативные пределы: узкий луч и две правки на слово
// держат горячий путь дешёвым даже на больших словарях.
var DefaultSearch = SearchOptions{
	Layout:             "qwerty",
	BeamWidth:          60,
	MaxSuggestions:     8,
	MaxEdits:           2,
	MaxWords:           3,
	MaxCompletionDepth: 10,
}

type SearchOptions struct {
	Layout             string // имя раскладки клавиатуры
	BeamWidth          int    // ширина луча фронтира
	MaxSuggestions     int
	MaxEdits           int // предел правок на кандидата
	MaxWords           int // предел слов в многословном кандидате
	MaxCompletionDepth int // предел дописываемых букв
}

type Options interface {
	Apply(options *SearchOptions)
}

type FuncConfig struct {
	ops func(options *SearchOptions)
}

func (w FuncConfig) Apply(conf *SearchOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SearchOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithLayout(layout string) Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.Layout = layout
	})
}

func WithBeamWidth(width int) Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.BeamWidth = width
	})
}

func WithMaxSuggestions(n int) Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.MaxSuggestions = n
	})
}

func WithMaxEdits(n int) Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.MaxEdits = n
	})
}

func WithMaxWords(n int) Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.MaxWords = n
	})
}

func WithMaxCompletionDepth(n int) Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.MaxCompletionDepth = n
	})
}

// WithConservativeSearch сужает поиск до одной правки: для слабых устройств.
func WithConservativeSearch() Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.MaxEdits = 1
		options.BeamWidth = 32
	})
}

// WithLenientSearch расширяет поиск: больше правок и широкий луч.
func WithLenientSearch() Options {
	return NewFuncOption(func(options *SearchOptions) {
		options.MaxEdits = 3
		options.BeamWidth = 96
	})
}
