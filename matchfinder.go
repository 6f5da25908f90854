package highlight

// MatchKind discriminates a MatchSpan as a single-word (or prefix) hit, or
// a multi-word phrase hit.
type MatchKind int

const (
	MatchWord MatchKind = iota
	MatchPhrase
)

// MatchSpan is an identified span over the token sequence where a matching
// term was found (spec.md §3's "Match"). Named MatchSpan rather than Match
// to avoid colliding with the host engine's BM25/proximity result type.
type MatchSpan struct {
	Kind MatchKind

	FirstTokenIdx int
	LastTokenIdx  int

	FirstWordIdx int
	LastWordIdx  int

	ByteLen   int
	CharCount int

	QPos QueryPositionRange
}

// WordCount returns the number of words the span covers.
func (m MatchSpan) WordCount() int {
	return m.LastWordIdx - m.FirstWordIdx + 1
}

// FindMatches walks tokens once, trying phrases before single words/prefixes
// at every cursor position (spec.md §4.C's Scan -> InPhrase -> Emit state
// machine, spelled out explicitly rather than hidden in iterator adaptors).
// The result is naturally ordered by token/word position (invariant 1): the
// cursor only moves forward, so each emitted span starts no earlier than the
// last. Downstream best-interval selection uses each match's QPos field for
// its uniqueness scoring, but walks the slice itself in this token order.
func FindMatches(text string, tokens []Token, mw *MatchingWords) []MatchSpan {
	if mw.Empty() {
		return nil
	}

	var matches []MatchSpan
	cursor := newTokenCursor(tokens)

	for !cursor.done() {
		if span, next, ok := tryPhrases(cursor, mw, tokens); ok {
			matches = append(matches, span)
			cursor = next
			continue
		}

		tok, tokenIdx, wordIdx, ok := cursor.nextWord()
		if !ok {
			break
		}

		if span, ok := tryWords(text, tok, tokenIdx, wordIdx, mw); ok {
			matches = append(matches, span)
		}
	}

	return matches
}

// tryPhrases attempts every phrase in the table from a speculative clone of
// cursor, returning the first full match and the cursor positioned just
// past it. No backtracking over already-emitted matches.
func tryPhrases(cursor tokenCursor, mw *MatchingWords, tokens []Token) (MatchSpan, tokenCursor, bool) {
	for _, phrase := range mw.phrases {
		clone := cursor.clone()

		firstTokenIdx := -1
		firstWordIdx := -1
		lastTokenIdx := -1
		lastWordIdx := -1
		matched := true

		for _, slot := range phrase.PhraseSlots {
			tok, tokenIdx, wordIdx, ok := clone.nextWord()
			if !ok {
				matched = false
				break
			}

			slotMatches := false
			if slot.Stopword {
				slotMatches = tok.IsStopword
			} else {
				slotMatches = tok.Lemma == slot.Word
			}

			if !slotMatches {
				matched = false
				break
			}

			if firstTokenIdx == -1 {
				firstTokenIdx = tokenIdx
				firstWordIdx = wordIdx
			}
			lastTokenIdx = tokenIdx
			lastWordIdx = wordIdx
		}

		if !matched || len(phrase.PhraseSlots) == 0 {
			continue
		}

		byteLen := tokens[lastTokenIdx].ByteEnd - tokens[firstTokenIdx].ByteStart
		charCount := tokens[lastTokenIdx].CharEnd - tokens[firstTokenIdx].CharStart

		span := MatchSpan{
			Kind:          MatchPhrase,
			FirstTokenIdx: firstTokenIdx,
			LastTokenIdx:  lastTokenIdx,
			FirstWordIdx:  firstWordIdx,
			LastWordIdx:   lastWordIdx,
			ByteLen:       byteLen,
			CharCount:     charCount,
			QPos:          phrase.QPos,
		}
		return span, clone, true
	}

	return MatchSpan{}, cursor, false
}

// tryWords attempts every word/prefix entry, in the table's precomputed
// order, against a single already-consumed token.
func tryWords(text string, tok Token, tokenIdx, wordIdx int, mw *MatchingWords) (MatchSpan, bool) {
	for _, entry := range mw.words {
		for _, word := range entry.Words {
			if entry.Kind == TermPrefix {
				if !hasPrefix(tok.Lemma, word) {
					continue
				}
				// The matched token's own surface text (not the query word's)
				// is what highlighting slices, so its prefix byte length must
				// come from the token's own runes: diacritic folding can make
				// a lemma's rune count diverge from the source text it folded
				// from, and a multi-byte source rune has no fixed byte width.
				byteLen := runePrefixByteLen(text[tok.ByteStart:tok.ByteEnd], entry.OriginalCharCount)
				return MatchSpan{
					Kind:          MatchWord,
					FirstTokenIdx: tokenIdx,
					LastTokenIdx:  tokenIdx,
					FirstWordIdx:  wordIdx,
					LastWordIdx:   wordIdx,
					ByteLen:       byteLen,
					CharCount:     entry.OriginalCharCount,
					QPos:          entry.QPos,
				}, true
			}

			if tok.Lemma == word {
				return MatchSpan{
					Kind:          MatchWord,
					FirstTokenIdx: tokenIdx,
					LastTokenIdx:  tokenIdx,
					FirstWordIdx:  wordIdx,
					LastWordIdx:   wordIdx,
					ByteLen:       tok.ByteLen(),
					CharCount:     tok.CharLen(),
					QPos:          entry.QPos,
				}, true
			}
		}
	}

	return MatchSpan{}, false
}

func hasPrefix(lemma, prefix string) bool {
	if len(prefix) > len(lemma) {
		return false
	}
	return lemma[:len(prefix)] == prefix
}

// runePrefixByteLen returns the byte length of the first n runes of s,
// gracefully truncating to s's full length if n exceeds its rune count
// (spec.md §9: the highlighted length is the original, unstemmed query
// term's char count, applied to the matched token's own source bytes).
func runePrefixByteLen(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
