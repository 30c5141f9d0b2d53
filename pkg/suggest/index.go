package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index snapshots the learned vocabulary into a patricia trie mapping each
// word to its count. The snapshot shares nothing with the completer, so it
// stays valid (and stale) after further training. The empty word is skipped.
func (c *Completer) Index() *patricia.Trie {
	idx := patricia.NewTrie()
	c.root.walk(make([]rune, 0, 16), func(path []rune, n *node) {
		if n.count == 0 || len(path) == 0 {
			return
		}
		idx.Insert(patricia.Prefix(string(path)), n.count)
	})
	return idx
}

// SearchIndex lists the words of an Index snapshot under prefix whose count
// is at least minFreq, ordered by count.
func SearchIndex(idx *patricia.Trie, prefix string, minFreq int) []Suggestion {
	if idx == nil {
		return []Suggestion{}
	}

	suggestions := []Suggestion{}
	total := 0

	err := idx.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		freq := 1
		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		if freq < minFreq {
			return nil
		}
		total += freq
		suggestions = append(suggestions, Suggestion{
			Word:      string(p),
			Frequency: freq,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
		return []Suggestion{}
	}

	for i := range suggestions {
		suggestions[i].Probability = float64(suggestions[i].Frequency) / float64(total)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Frequency > suggestions[j].Frequency
	})
	return suggestions
}
