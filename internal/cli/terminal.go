package cli

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordlearn/internal/utils"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

var (
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	scoreStyle = lipgloss.NewStyle().Faint(true)
)

// renderWords lists the completions on one line, most confident first
func renderWords(fragment string, suggestions []suggest.Suggestion) string {
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = wordStyle.Render(s.Word)
	}
	return fmt.Sprintf("Possible words to complete `%s` (in order of confidence) are: %s",
		fragment, strings.Join(words, ", "))
}

// renderScores lists one completion per line with its probability and count
func renderScores(fragment string, suggestions []suggest.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d words to complete `%s`:", len(suggestions), fragment)
	for i, s := range suggestions {
		score := fmt.Sprintf("(%6s, seen %s)", utils.FormatProbability(s.Probability), utils.FormatWithCommas(s.Frequency))
		fmt.Fprintf(&b, "\n%2d. %-24s %s", i+1, wordStyle.Render(s.Word), scoreStyle.Render(score))
	}
	return b.String()
}
