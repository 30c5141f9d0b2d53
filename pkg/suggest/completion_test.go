package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteContainsTrainedWord(t *testing.T) {
	c := NewCompleter()
	c.Train("Hello this is a test of the autocomplete functionality")

	assert.Contains(t, c.Complete("au"), "autocomplete")
}

func TestCompletePassage(t *testing.T) {
	c := NewCompleter()
	c.Train("The third thing that I need to tell you is that " +
		"this thing does not think thoroughly.")

	thi := c.Complete("thi")
	require.NotEmpty(t, thi)
	assert.Equal(t, "thing", thi[0])
	assert.ElementsMatch(t, []string{"thing", "think", "third", "this"}, thi)

	assert.Equal(t, []string{"need"}, c.Complete("nee"))

	assert.ElementsMatch(t,
		[]string{"that", "thing", "think", "this", "third", "the", "thoroughly"},
		c.Complete("th"))
}

func TestCompleteHighestWeightFirst(t *testing.T) {
	c := NewCompleter()
	c.Train("test test testing tester test testing test " +
		"testing tea team tear tee tent term terse")

	results := c.Complete("te")
	require.NotEmpty(t, results)
	assert.Equal(t, "test", results[0])
	assert.Equal(t, "testing", results[1])
	assert.Len(t, results, 10)
}

func TestCompleteCaseFolding(t *testing.T) {
	c := NewCompleter()
	c.Train("Test TEst TESt TEST TesTing Testers Testing Tested Tests")

	results := c.Complete("te")
	assert.Contains(t, results, "test")
	assert.NotContains(t, results, "te")
	assert.NotContains(t, results, "tEsT")
	for _, word := range results {
		assert.Equal(t, strings.ToLower(word), word)
	}

	// keys are lowercase, prefixes are not folded
	assert.Empty(t, c.Complete("Te"))
}

func TestCompleteCaseFoldIdempotent(t *testing.T) {
	upper := NewCompleter()
	upper.Train("Test")
	lower := NewCompleter()
	lower.Train("test")

	assert.Equal(t, lower.Suggest("te", 0), upper.Suggest("te", 0))
	assert.Equal(t, lower.Stats(), upper.Stats())
}

func TestCompleteStripsPunctuation(t *testing.T) {
	c := NewCompleter()
	c.Train("Hello, this is a test. Just a test? Yes just a test! " +
		"One, two, test, test. Tessa, Tesla, Testing, testers, tes")

	results := c.Complete("tes")
	require.NotEmpty(t, results)
	for _, word := range results {
		assert.False(t, strings.ContainsAny(word, Punctuation), "punctuation in %q", word)
	}
	assert.Equal(t, "test", results[0])
}

func TestCompletePunctuationInvariance(t *testing.T) {
	text := "Hello, this is a test. Just a test? Yes-just a (test)!"

	raw := NewCompleter()
	raw.Train(text)
	stripped := NewCompleter()
	stripped.Train(StripPunctuation(text))

	for _, prefix := range []string{"", "t", "te", "j", "yes", "h"} {
		assert.Equal(t, stripped.Suggest(prefix, 0), raw.Suggest(prefix, 0), "prefix %q", prefix)
	}
}

func TestCompleteNoResults(t *testing.T) {
	c := NewCompleter()
	c.Train("This is a passage about nothing. Some words will not be" +
		"in this passage.")

	results := c.Complete("xyz")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCompleteInvalidInput(t *testing.T) {
	c := NewCompleter()
	c.Train("")
	assert.Empty(t, c.Complete("word"))
	assert.Empty(t, c.Complete("anything"))

	c.Train("Sometimes a user will make a mistake and will " +
		"ask to auto get_words two words at once")
	assert.Empty(t, c.Complete("two words"))
	assert.NotEmpty(t, c.Complete("wil"))
}

func TestCompleteIncludesExactMatch(t *testing.T) {
	c := NewCompleter()
	c.Train("test testing testing")

	assert.Equal(t, []string{"testing", "test"}, c.Complete("test"))
	assert.Equal(t, []string{"testing"}, c.Complete("testing"))
}

func TestCompleteEmptyTokens(t *testing.T) {
	c := NewCompleter()
	c.Train("a  b")

	assert.Equal(t, 1, c.root.count)
	assert.ElementsMatch(t, []string{"", "a", "b"}, c.Complete(""))
	assert.Equal(t, []string{"a"}, c.Complete("a"))
}

func TestSuggestProbabilities(t *testing.T) {
	c := NewCompleter()
	c.Train("tea tea tea team tear tear")

	suggestions := c.Suggest("te", 0)
	require.Len(t, suggestions, 3)

	testCases := []struct {
		word string
		freq int
		prob float64
	}{
		{"tea", 3, 0.5},
		{"tear", 2, 2.0 / 6.0},
		{"team", 1, 1.0 / 6.0},
	}

	sum := 0.0
	for i, tc := range testCases {
		assert.Equal(t, tc.word, suggestions[i].Word)
		assert.Equal(t, tc.freq, suggestions[i].Frequency)
		assert.InDelta(t, tc.prob, suggestions[i].Probability, 1e-9)
		assert.Greater(t, suggestions[i].Probability, 0.0)
		assert.LessOrEqual(t, suggestions[i].Probability, 1.0)
		sum += suggestions[i].Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSuggestLimit(t *testing.T) {
	c := NewCompleter()
	c.Train("tea tea tea team tear tear")

	limited := c.Suggest("te", 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "tea", limited[0].Word)
	// probabilities stay relative to every candidate, not just the kept ones
	assert.InDelta(t, 0.5, limited[0].Probability, 1e-9)

	assert.Len(t, c.Suggest("te", 0), 3)
	assert.Len(t, c.Suggest("te", -1), 3)
}

func TestTrainAccumulates(t *testing.T) {
	passage := "the cat and the hat and the bat"
	c := NewCompleter()
	c.Train(passage)
	before := c.Suggest("", 0)

	c.Train(passage)
	after := c.Suggest("", 0)

	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Word, after[i].Word)
		assert.Equal(t, before[i].Frequency*2, after[i].Frequency)
		assert.InDelta(t, before[i].Probability, after[i].Probability, 1e-9)
	}
}

func TestCompleteReturnsCopies(t *testing.T) {
	c := NewCompleter()
	c.Train("alpha alps")

	first := c.Complete("al")
	first[0] = "mutated"
	assert.NotContains(t, c.Complete("al"), "mutated")
}

func TestStats(t *testing.T) {
	c := NewCompleter()
	stats := c.Stats()
	assert.Equal(t, 0, stats["totalWords"])
	assert.Equal(t, 1, stats["nodes"])

	c.Train("to too too tool")
	stats = c.Stats()
	assert.Equal(t, 4, stats["totalWords"])
	assert.Equal(t, 3, stats["uniqueWords"])
	assert.Equal(t, 5, stats["nodes"])
	assert.Equal(t, 2, stats["maxFrequency"])
	assert.Equal(t, 4, stats["maxDepth"])
}

func TestCompleterImplementsInterface(t *testing.T) {
	var _ ICompleter = NewCompleter()
}
