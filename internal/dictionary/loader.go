package dictionary

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// =====================
// Загрузка словарей из текстовых списков
// =====================

// probFromCount squashes a raw corpus count onto the 0..255 weight scale.
// Логарифм: разница между 10 и 100 важнее, чем между 1e8 и 1e9.
func probFromCount(count float64) uint8 {
	if count < 1 {
		count = 1
	}
	p := math.Log1p(count) * (MaxProb / math.Log1p(1e9))
	if p > MaxProb {
		p = MaxProb
	}
	return uint8(p)
}

// LoadFrequencies reads a "word count" list into the trie.
func LoadFrequencies(d *Dict, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия словаря: %v", err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		d.Insert(word, probFromCount(count))
	}
	return s.Err()
}

// LoadBigrams reads a "prev next count" list. Words missing from the unigram
// list are skipped: биграмма без обоих терминалов бесполезна для поиска.
func LoadBigrams(d *Dict, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия биграмм: %v", err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		count, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			continue
		}
		d.AddBigram(strings.ToLower(parts[0]), strings.ToLower(parts[1]), probFromCount(count))
	}
	return s.Err()
}
