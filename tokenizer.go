package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gse"
	snowballeng "github.com/kljensen/snowball/english"
	"golang.org/x/text/unicode/norm"
)

// Locale selects how Tokenize splits text into words. English relies on
// Unicode letter/number boundaries (spaces already delimit words); locales
// without whitespace-delimited words route through a segmenter instead.
type Locale int

const (
	LocaleEnglish Locale = iota
	LocaleSegmented
)

// Config holds the tokenizer pipeline's tunables, generalized from the
// teacher's AnalyzerConfig to also carry the offset-preserving locale
// switch (spec.md's matching terms are defined over lemmas, so stemming and
// stopword handling still apply; they just now happen per-Token instead of
// per-string).
type Config struct {
	MinTokenLength  int
	EnableStemming  bool
	EnableStopwords bool
	Locale          Locale
}

// DefaultConfig returns the standard English analysis configuration,
// matching the teacher's DefaultConfig.
func DefaultConfig() Config {
	return Config{
		MinTokenLength:  2,
		EnableStemming:  true,
		EnableStopwords: true,
		Locale:          LocaleEnglish,
	}
}

// EngineTokenizer turns raw text into the offset-preserving Token sequence
// component C's match finder walks. It generalizes the teacher's
// tokenize/lowercaseFilter/stopwordFilter/stemmerFilter pipeline (analyzer.go)
// from a pipeline of []string transforms into a single pass that keeps each
// token's byte/char span in the source text, since highlighting needs to
// slice the original string rather than reassemble a normalized one.
type EngineTokenizer struct {
	cfg       Config
	segmenter *gse.Segmenter
}

// NewTokenizer builds a tokenizer for cfg. LocaleSegmented lazily loads the
// bundled dictionary the first time it's needed.
func NewTokenizer(cfg Config) *EngineTokenizer {
	return &EngineTokenizer{cfg: cfg}
}

// NewEnglishTokenizer is the common case: default config, English locale.
func NewEnglishTokenizer() *EngineTokenizer {
	return NewTokenizer(DefaultConfig())
}

func (e *EngineTokenizer) segments(text string) []string {
	if e.cfg.Locale == LocaleSegmented {
		if e.segmenter == nil {
			seg := new(gse.Segmenter)
			seg.LoadDict()
			e.segmenter = seg
		}
		return e.segmenter.Cut(text, true)
	}

	return splitWordsAndSeparators(text)
}

// Tokenize implements the Tokenizer interface matcher.go depends on.
func (e *EngineTokenizer) Tokenize(text string) []Token {
	segs := e.segments(text)

	tokens := make([]Token, 0, len(segs))
	byteOffset, charOffset := 0, 0

	for _, seg := range segs {
		byteLen := len(seg)
		charLen := utf8.RuneCountInString(seg)

		tok := Token{
			ByteStart: byteOffset,
			ByteEnd:   byteOffset + byteLen,
			CharStart: charOffset,
			CharEnd:   charOffset + charLen,
		}

		if isWordSegment(seg) {
			tok.Lemma = e.normalize(seg)
			tok.IsStopword = isStopword(tok.Lemma)
		} else {
			tok.IsSeparator = true
		}

		if tok.IsSeparator || len(tok.Lemma) >= e.cfg.MinTokenLength || !e.cfg.EnableStopwords {
			tokens = append(tokens, tok)
		} else {
			// Below the minimum length: keep the span contiguous (so byte
			// offsets never skip text) but fold it into a separator so the
			// match finder's word walk steps over it.
			tok.IsSeparator = true
			tok.Lemma = ""
			tokens = append(tokens, tok)
		}

		byteOffset += byteLen
		charOffset += charLen
	}

	return tokens
}

func (e *EngineTokenizer) normalize(word string) string {
	lower := strings.ToLower(foldDiacritics(word))
	if e.cfg.EnableStemming && e.cfg.Locale == LocaleEnglish {
		return snowballeng.Stem(lower, false)
	}
	return lower
}

// foldDiacritics strips combining marks so accented forms ("Ŵôřlḑôle") match
// their plain-ASCII query terms ("world"): NFKD-decompose each base letter
// from its diacritic, then drop every rune in the Unicode "Mark" category.
func foldDiacritics(word string) string {
	decomposed := norm.NFKD.String(word)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitWordsAndSeparators splits text into contiguous runs of letters/digits
// and runs of everything else, the offset-preserving generalization of the
// teacher's strings.FieldsFunc-based tokenize.
func splitWordsAndSeparators(text string) []string {
	var segs []string
	var b strings.Builder
	inWord := false
	first := true

	flush := func() {
		if b.Len() > 0 {
			segs = append(segs, b.String())
			b.Reset()
		}
	}

	for _, r := range text {
		isWord := unicode.IsLetter(r) || unicode.IsNumber(r)
		if first {
			inWord = isWord
			first = false
		} else if isWord != inWord {
			flush()
			inWord = isWord
		}
		b.WriteRune(r)
	}
	flush()

	return segs
}

func isWordSegment(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

var defaultAnalyzeTokenizer = NewEnglishTokenizer()

// Analyze is the package-level entry point the index and query builder use
// to turn raw text/terms into a normalized word stream, matching the
// teacher's Analyze(text string) []string signature so callers (and the
// kept teacher tests) didn't need to change shape when tokenization grew
// byte/char offsets underneath it.
func Analyze(text string) []string {
	return analyzedWords(defaultAnalyzeTokenizer, text)
}

// analyzedWords reduces a tokenizer's offset-preserving Tokens to the plain
// normalized word stream the BM25 index indexes by position, discarding
// separators and, when stopword filtering is enabled, stopwords (the
// teacher's Analyze() return shape, derived from the same pipeline the
// highlighter's Tokenize now also serves).
func analyzedWords(tok *EngineTokenizer, text string) []string {
	tokens := tok.Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsSeparator || (t.IsStopword && tok.cfg.EnableStopwords) {
			continue
		}
		words = append(words, t.Lemma)
	}
	return words
}

// isStopword reports whether a normalized lemma is a common English
// stopword (spec.md's PhraseSlot.Stopword placeholder matches any token for
// which this is true).
func isStopword(lemma string) bool {
	_, exists := englishStopwords[lemma]
	return exists
}
