package main

import (
	"flag"
	"log"

	"suggest/internal/dictionary"
)

// dictc собирает бинарный образ словаря из текстовых частотных списков.
func main() {
	unigrams := flag.String("unigrams", "", "частотный список: слово количество")
	bigrams := flag.String("bigrams", "", "список биграмм: слово слово количество (опционально)")
	out := flag.String("out", "dict.bin", "путь бинарного образа")
	flag.Parse()

	if *unigrams == "" {
		log.Fatal("флаг -unigrams обязателен")
	}

	dict := dictionary.New()
	if err := dictionary.LoadFrequencies(dict, *unigrams); err != nil {
		log.Fatalf("ошибка чтения частот: %v", err)
	}
	if *bigrams != "" {
		if err := dictionary.LoadBigrams(dict, *bigrams); err != nil {
			log.Fatalf("ошибка чтения биграмм: %v", err)
		}
	}
	if err := dictionary.SaveBinary(dict, *out); err != nil {
		log.Fatalf("ошибка записи образа: %v", err)
	}
	log.Printf("записано %d слов в %s", dict.Len(), *out)
}
