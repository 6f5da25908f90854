package highlight

import (
	"strings"
	"unicode"
)

// queryTerm is one whitespace- or quote-delimited unit of a raw query
// string, before being resolved into a LocatedQueryTerm.
type queryTerm struct {
	phrase bool
	words  []string
	prefix bool
}

// parseQueryTerms splits a raw query string into terms: a double-quoted run
// becomes a phrase term (its words in order), a bare word ending in `*`
// becomes a prefix term, anything else is an exact word term. This is the
// query-string syntax spec.md leaves to an external collaborator; it exists
// here only so the engine is runnable end to end (spec.md's own matching-term
// construction starts one step later, from LocatedQueryTerm).
func parseQueryTerms(raw string) []queryTerm {
	runes := []rune(raw)
	var terms []queryTerm
	i := 0

	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}

		if runes[i] == '"' {
			i++
			start := i
			for i < len(runes) && runes[i] != '"' {
				i++
			}
			words := strings.Fields(string(runes[start:i]))
			if i < len(runes) {
				i++ // consume closing quote
			}
			if len(words) > 0 {
				terms = append(terms, queryTerm{phrase: true, words: words})
			}
			continue
		}

		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) && runes[i] != '"' {
			i++
		}
		word := string(runes[start:i])
		prefix := strings.HasSuffix(word, "*")
		if prefix {
			word = strings.TrimSuffix(word, "*")
		}
		if word != "" {
			terms = append(terms, queryTerm{words: []string{word}, prefix: prefix})
		}
	}

	return terms
}

// CompileQuery resolves a raw query string into a MatchingWords table,
// normalizing every word through tok the same way result text is normalized
// so lemmas compare equal (spec.md §4.B's table, built from a concrete
// source instead of an abstract LocatedQueryTerm list).
func CompileQuery(raw string, tok *EngineTokenizer) *MatchingWords {
	terms := parseQueryTerms(raw)
	located := make([]LocatedQueryTerm, 0, len(terms))
	pos := 0
	in := newInterner()

	for _, qt := range terms {
		if qt.phrase {
			slots := make([]PhraseSlot, len(qt.words))
			for i, w := range qt.words {
				lemma := in.intern(tok.normalize(w))
				slots[i] = PhraseSlot{Word: lemma, Stopword: isStopword(lemma)}
			}
			width := len(slots)
			located = append(located, LocatedQueryTerm{
				PhraseDerivations: [][]PhraseSlot{slots},
				OriginalWord:      strings.Join(qt.words, " "),
				Positions:         QueryPositionRange{Start: uint16(pos), End: uint16(pos + width - 1)},
			})
			pos += width
			continue
		}

		lemma := in.intern(tok.normalize(qt.words[0]))
		located = append(located, LocatedQueryTerm{
			WordDerivations: []string{lemma},
			IsPrefix:        qt.prefix,
			OriginalWord:    qt.words[0],
			Positions:       QueryPositionRange{Start: uint16(pos), End: uint16(pos)},
		})
		pos++
	}

	return NewMatchingWords(located)
}
