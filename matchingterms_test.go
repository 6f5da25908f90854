package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryPositionRangeWidth(t *testing.T) {
	r := QueryPositionRange{Start: 2, End: 4}
	assert.Equal(t, 3, r.Width())

	single := QueryPositionRange{Start: 0, End: 0}
	assert.Equal(t, 1, single.Width())
}

func TestNewMatchingWordsOrdersExactBeforePrefix(t *testing.T) {
	located := []LocatedQueryTerm{
		{
			WordDerivations: []string{"world"},
			IsPrefix:         true,
			OriginalWord:     "world",
			Positions:        QueryPositionRange{Start: 0, End: 0},
		},
		{
			WordDerivations: []string{"the"},
			Positions:       QueryPositionRange{Start: 1, End: 1},
		},
	}

	mw := NewMatchingWords(located)
	require.Len(t, mw.words, 2)
	assert.Equal(t, TermWord, mw.words[0].Kind)
	assert.Equal(t, TermPrefix, mw.words[1].Kind)
}

func TestNewMatchingWordsBuildsPhraseEntries(t *testing.T) {
	located := []LocatedQueryTerm{
		{
			PhraseDerivations: [][]PhraseSlot{
				{{Word: "split"}, {Word: "the"}, {Word: "world"}},
			},
			OriginalWord: "split the world",
			Positions:    QueryPositionRange{Start: 0, End: 2},
		},
	}

	mw := NewMatchingWords(located)
	require.Len(t, mw.phrases, 1)
	assert.Len(t, mw.phrases[0].PhraseSlots, 3)
	assert.False(t, mw.Empty())
}

func TestMatchingWordsEmpty(t *testing.T) {
	var mw *MatchingWords
	assert.True(t, mw.Empty())

	mw = NewMatchingWords(nil)
	assert.True(t, mw.Empty())
}
