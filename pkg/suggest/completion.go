package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Suggestion is a ranked completion candidate.
type Suggestion struct {
	Word        string
	Frequency   int
	Probability float64
}

// Completer is a weighted prefix trie. It learns words from passages and
// ranks completions by how often each word was seen.
type Completer struct {
	root *node
}

func NewCompleter() *Completer {
	return &Completer{root: newNode()}
}

// Train strips punctuation from text, splits it on single spaces and
// inserts each lowercased token. Consecutive spaces produce empty tokens,
// which count towards the empty word at the root. Empty text is a no-op.
func (c *Completer) Train(text string) {
	if text == "" {
		return
	}
	text = StripPunctuation(text)
	tokens := strings.Split(text, " ")
	for _, token := range tokens {
		c.root.insert(token)
	}
	log.Debugf("Trained on %d tokens", len(tokens))
}

// Complete returns every learned word starting with prefix, most probable
// first. prefix is matched as-is against the lowercased keys. The result is
// empty, never nil, when nothing matches.
func (c *Completer) Complete(prefix string) []string {
	suggestions := c.Suggest(prefix, 0)
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	return words
}

// Suggest is Complete with the weights kept. Probability is the word's count
// divided by the sum of the counts of all candidates for this prefix, so it
// is computed before limit is applied.
func (c *Completer) Suggest(prefix string, limit int) []Suggestion {
	start := c.root.descend(prefix)
	if start == nil {
		return []Suggestion{}
	}

	candidates := make(map[string]int)
	total := 0
	start.walk(make([]rune, 0, 16), func(path []rune, n *node) {
		if n.count == 0 {
			return
		}
		candidates[prefix+string(path)] = n.count
		total += n.count
	})
	if total == 0 {
		return []Suggestion{}
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for word, freq := range candidates {
		suggestions = append(suggestions, Suggestion{
			Word:        word,
			Frequency:   freq,
			Probability: float64(freq) / float64(total),
		})
	}

	// ties fall back to lexical order so output is reproducible
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Probability != suggestions[j].Probability {
			return suggestions[i].Probability > suggestions[j].Probability
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"totalWords":   0,
		"uniqueWords":  0,
		"nodes":        0,
		"maxFrequency": 0,
		"maxDepth":     0,
	}

	c.root.walk(make([]rune, 0, 16), func(path []rune, n *node) {
		stats["nodes"]++
		if len(path) > stats["maxDepth"] {
			stats["maxDepth"] = len(path)
		}
		if n.count == 0 {
			return
		}
		stats["uniqueWords"]++
		stats["totalWords"] += n.count
		if n.count > stats["maxFrequency"] {
			stats["maxFrequency"] = n.count
		}
	})
	return stats
}
