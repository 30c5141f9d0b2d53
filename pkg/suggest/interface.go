// Package suggest is the core, providing the weighted trie that learns word frequencies and ranks prefix completions.
package suggest

// ICompleter defines the interface the hosts (menu CLI, IPC server) use.
// Implementations are not safe for concurrent use; callers serialize access.
type ICompleter interface {
	// Train learns every word of a passage
	Train(text string)

	// Complete returns known words starting with prefix, most probable first
	Complete(prefix string) []string

	// Suggest returns ranked suggestions with their weights, limit <= 0 means all
	Suggest(prefix string, limit int) []Suggestion

	// Stats returns statistics about the learned vocabulary
	Stats() map[string]int
}
