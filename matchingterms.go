package highlight

import "sort"

// QueryPositionRange identifies which user-query word(s) a matching term
// originated from; used for uniqueness scoring in the best-interval selector.
type QueryPositionRange struct {
	Start uint16
	End   uint16
}

// Width returns the number of query positions spanned, inclusive.
func (r QueryPositionRange) Width() int {
	return int(r.End-r.Start) + 1
}

// PhraseSlot is one word of a phrase matching term: either a required
// interned word, or a stopword placeholder (Stopword == true, Word ignored)
// that matches any token flagged as a stopword.
type PhraseSlot struct {
	Word     string
	Stopword bool
}

// MatchingTermKind discriminates the MatchingTerm tagged union.
type MatchingTermKind int

const (
	TermWord MatchingTermKind = iota
	TermPrefix
	TermPhrase
)

// MatchingTerm is a single compiled element of the query: a set of exact
// words, a prefix, or an ordered phrase. Exactly one of the Word* fields or
// PhraseSlots is meaningful, selected by Kind.
type MatchingTerm struct {
	Kind MatchingTermKind
	QPos QueryPositionRange

	// TermWord / TermPrefix
	Words              []string
	OriginalCharCount  int // only meaningful for TermPrefix

	// TermPhrase
	PhraseSlots []PhraseSlot
}

// MatchingWords is the immutable, per-query table of matching terms: phrases
// to try first at every cursor position, then single words/prefixes ordered
// so exact matches are preferred over prefixes. Safe to share read-only
// across threads; a Builder holds one per compiled query.
type MatchingWords struct {
	phrases []MatchingTerm // Kind == TermPhrase
	words   []MatchingTerm // Kind == TermWord or TermPrefix, pre-sorted
}

// LocatedQueryTerm is one external query-compiler output: a query term's
// word/phrase derivations, held directly in the struct.
type LocatedQueryTerm struct {
	WordDerivations   []string
	PhraseDerivations [][]PhraseSlot
	IsPrefix          bool
	OriginalWord      string
	Positions         QueryPositionRange
}

// NewMatchingWords builds the matching-term table from a list of located
// query terms (spec.md §4.B). For each term, its phrase derivations become
// phrase entries and its word derivations become a single word/prefix
// entry, all tagged with the term's query-position range.
func NewMatchingWords(located []LocatedQueryTerm) *MatchingWords {
	mw := &MatchingWords{}

	for _, term := range located {
		for _, slots := range term.PhraseDerivations {
			mw.phrases = append(mw.phrases, MatchingTerm{
				Kind:        TermPhrase,
				QPos:        term.Positions,
				PhraseSlots: slots,
			})
		}

		if len(term.WordDerivations) == 0 {
			continue
		}

		kind := TermWord
		charCount := 0
		if term.IsPrefix {
			kind = TermPrefix
			charCount = len([]rune(term.OriginalWord))
		}

		mw.words = append(mw.words, MatchingTerm{
			Kind:              kind,
			QPos:              term.Positions,
			Words:             term.WordDerivations,
			OriginalCharCount: charCount,
		})
	}

	// Non-prefix entries precede prefix entries; ties broken by descending
	// query-range width, so exact matches are tried before prefixes whenever
	// both could apply to the same token.
	sort.SliceStable(mw.words, func(i, j int) bool {
		a, b := mw.words[i], mw.words[j]
		aPrefix := a.Kind == TermPrefix
		bPrefix := b.Kind == TermPrefix
		if aPrefix != bPrefix {
			return !aPrefix
		}
		return a.QPos.Width() > b.QPos.Width()
	})

	return mw
}

// Empty reports whether the table has no phrases and no words.
func (mw *MatchingWords) Empty() bool {
	return mw == nil || (len(mw.phrases) == 0 && len(mw.words) == 0)
}
