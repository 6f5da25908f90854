package highlight

// Token is a single lexical unit produced by a Tokenizer. ByteEnd and
// CharEnd are exclusive.
type Token struct {
	Lemma       string
	ByteStart   int
	ByteEnd     int
	CharStart   int
	CharEnd     int
	IsSeparator bool
	IsStopword  bool
}

// ByteLen returns the number of bytes the token occupies in the source text.
func (t Token) ByteLen() int {
	return t.ByteEnd - t.ByteStart
}

// CharLen returns the number of characters the token occupies in the source text.
func (t Token) CharLen() int {
	return t.CharEnd - t.CharStart
}

// tokenCursor is a cloneable-by-value position in a token slice, tracking
// both the token index (every token, including separators) and the word
// index (non-separator tokens only). Phrase matching speculatively advances
// a copy of the cursor and discards it on mismatch, so cloning must be O(1);
// a plain struct copy gives that for free.
type tokenCursor struct {
	tokens    []Token
	tokenIdx  int
	wordIdx   int
	wordIdxOK bool // whether wordIdx has been initialized by at least one word
}

func newTokenCursor(tokens []Token) tokenCursor {
	return tokenCursor{tokens: tokens, tokenIdx: 0}
}

// clone returns an independent copy of the cursor; cheap because tokenCursor
// holds no pointers into mutable state beyond the shared, read-only slice.
func (c tokenCursor) clone() tokenCursor {
	return c
}

// done reports whether the cursor has walked off the end of the token slice.
func (c tokenCursor) done() bool {
	return c.tokenIdx >= len(c.tokens)
}

// nextWord advances the cursor past separators to the next non-separator
// token, returning it along with its token index and word index. Ok is
// false once the cursor is exhausted.
func (c *tokenCursor) nextWord() (tok Token, tokenIdx, wordIdx int, ok bool) {
	for c.tokenIdx < len(c.tokens) {
		t := c.tokens[c.tokenIdx]
		idx := c.tokenIdx
		c.tokenIdx++

		if t.IsSeparator {
			continue
		}

		if c.wordIdxOK {
			c.wordIdx++
		} else {
			c.wordIdx = 0
			c.wordIdxOK = true
		}

		return t, idx, c.wordIdx, true
	}

	return Token{}, 0, 0, false
}
