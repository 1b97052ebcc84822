package suggest

import (
	"math"
	"unicode"
)

// =====================
// Геометрия клавиатуры
// =====================

var layoutRows = map[string][]string{
	"qwerty": {
		"qwertyuiop",
		"asdfghjkl",
		"zxcvbnm",
	},
	"ru": {
		"йцукенгшщзхъ",
		"фывапролджэ",
		"ячсмитьбю",
	},
}

// clusterKeys maps single keys that stand for more than one dictionary
// character (немецкие умляуты набираются одной клавишей, в словаре — две буквы).
var clusterKeys = map[rune][]rune{
	'ä': {'a', 'e'},
	'ö': {'o', 'e'},
	'ü': {'u', 'e'},
	'ß': {'s', 's'},
}

// Layout holds key coordinates for one physical layout.
type Layout struct {
	pos    map[rune][2]int
	bottom map[rune]bool // нижний ряд: соседи пробела
}

// NewLayout builds a layout by name; unknown names fall back to qwerty.
func NewLayout(name string) *Layout {
	rows, ok := layoutRows[name]
	if !ok {
		rows = layoutRows["qwerty"]
	}
	l := &Layout{pos: make(map[rune][2]int), bottom: make(map[rune]bool)}
	for r, row := range rows {
		// колонка считается в рунах: range по строке даёт байтовые смещения,
		// и для кириллицы это удваивало бы дистанции
		c := 0
		for _, ch := range row {
			l.pos[ch] = [2]int{r, c}
			if r == len(rows)-1 {
				l.bottom[ch] = true
			}
			c++
		}
	}
	return l
}

// KeyDistance is the euclidean distance between two keys in row/column
// units. Неизвестным клавишам даём большую, но конечную дистанцию.
func (l *Layout) KeyDistance(a, b rune) float32 {
	a = unicode.ToLower(a)
	b = unicode.ToLower(b)
	if a == b {
		return 0
	}
	pa, oka := l.pos[a]
	pb, okb := l.pos[b]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return float32(math.Sqrt(dr*dr + dc*dc))
}

// IsNeighbor reports a first-ring hit: the off-center press of an adjacent key.
func (l *Layout) IsNeighbor(a, b rune) bool {
	d := l.KeyDistance(a, b)
	return d > 0 && d <= 1.0
}

// IsAdditionalProximity reports a second-ring hit.
func (l *Layout) IsAdditionalProximity(a, b rune) bool {
	d := l.KeyDistance(a, b)
	return d > 1.0 && d <= 2.0
}

// NearSpace reports keys close enough to the spacebar to be a mistyped
// space. Сам пробел тоже считается.
func (l *Layout) NearSpace(r rune) bool {
	if r == ' ' {
		return true
	}
	return l.bottom[unicode.ToLower(r)]
}

// Cluster returns the dictionary expansion of a multi-character key.
func (l *Layout) Cluster(r rune) ([]rune, bool) {
	exp, ok := clusterKeys[unicode.ToLower(r)]
	return exp, ok
}
