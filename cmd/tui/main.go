package main

import (
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"suggest/internal/dictionary"
	sg "suggest/internal/suggest"
	"suggest/internal/tui"
	"suggest/pkg/options"
)

// Интерактивная проверка подсказок: набор в живую, кандидаты на каждый
// символ. Redis здесь не нужен — словарь только основной.
func main() {
	dictionaryPath := getenv("DICTIONARY_PATH", "en.txt")
	var dict *dictionary.Dict
	var err error
	if strings.HasSuffix(dictionaryPath, ".bin") {
		dict, err = dictionary.LoadBinary(dictionaryPath)
	} else {
		dict = dictionary.New()
		err = dictionary.LoadFrequencies(dict, dictionaryPath)
	}
	if err != nil {
		log.Fatalf("dictionary error: %v", err)
	}

	engine, err := sg.NewEngine(sg.DefaultConfig, dict, nil,
		options.WithLayout(getenv("KEYBOARD_LAYOUT", "qwerty")),
	)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	model := tui.InitModel(engine.Suggest, getenv("BORDER_COLOR", "63"))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
