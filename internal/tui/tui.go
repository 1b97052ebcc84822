package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sg "suggest/internal/suggest"
)

const maxShown = 8

// SuggestFunc отдаёт кандидатов для текущего слова с учётом предыдущего.
type SuggestFunc func(word, prev string) []sg.Suggestion

type viewModel struct {
	input       textinput.Model
	suggest     SuggestFunc
	suggestions []sg.Suggestion

	border   lipgloss.Style
	hint     lipgloss.Style
	distance lipgloss.Style
	width    int
}

func InitModel(suggest SuggestFunc, borderColor string) *viewModel {
	ti := textinput.New()
	ti.Placeholder = "Start typing..."
	ti.Focus()
	ti.Width = 40

	return &viewModel{
		input:    ti,
		suggest:  suggest,
		border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(borderColor)),
		hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		distance: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (vm *viewModel) Init() tea.Cmd {
	return textinput.Blink
}

func (vm *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width = msg.Width
		vm.input.Width = max(msg.Width-8, 10)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return vm, tea.Quit
		case "tab":
			// принять первый кандидат
			if len(vm.suggestions) > 0 {
				words := strings.Fields(vm.input.Value())
				if len(words) > 0 {
					words[len(words)-1] = vm.suggestions[0].Word
					vm.input.SetValue(strings.Join(words, " ") + " ")
					vm.input.CursorEnd()
					vm.suggestions = nil
				}
				return vm, nil
			}
		}
	}

	var cmd tea.Cmd
	vm.input, cmd = vm.input.Update(msg)
	vm.refresh()
	return vm, cmd
}

// refresh пересчитывает кандидатов по последнему слову в поле ввода.
func (vm *viewModel) refresh() {
	text := vm.input.Value()
	if strings.HasSuffix(text, " ") || strings.TrimSpace(text) == "" {
		vm.suggestions = nil
		return
	}
	words := strings.Fields(text)
	word := words[len(words)-1]
	prev := ""
	if len(words) > 1 {
		prev = words[len(words)-2]
	}
	out := vm.suggest(word, prev)
	if len(out) > maxShown {
		out = out[:maxShown]
	}
	vm.suggestions = out
}

func (vm *viewModel) View() string {
	var b strings.Builder
	b.WriteString(vm.border.Render(vm.input.View()))
	b.WriteString("\n")
	for i, s := range vm.suggestions {
		line := fmt.Sprintf(" %d. %s %s", i+1, s.Word, vm.distance.Render(fmt.Sprintf("(%.2f)", s.Distance)))
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(vm.hint.Render("tab — принять первый кандидат, esc — выход"))
	return b.String()
}
