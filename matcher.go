package highlight

// FormatOptions carries the per-request highlight/crop request (spec.md
// §4.G). A nil Crop means "no cropping"; Crop pointing at 0 is treated the
// same way (ComputeMatchBounds normalizes it).
type FormatOptions struct {
	Highlight bool
	Crop      *int
}

// Merge combines two format option sets: highlighting is requested if
// either side asks for it, and o's crop budget wins whenever it is set,
// falling back to other's only when o has none (matches.rs's
// FormatOptions::merge: `highlight: a || b, crop: a.or(b)`).
func (o FormatOptions) Merge(other FormatOptions) FormatOptions {
	merged := FormatOptions{Highlight: o.Highlight || other.Highlight, Crop: o.Crop}
	if merged.Crop == nil {
		merged.Crop = other.Crop
	}
	return merged
}

// Tokenizer produces the offset-preserving token sequence a Matcher walks.
// Satisfied by tokenizer.go's EngineTokenizer in this module.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// Builder compiles a query once and hands out Matchers for any number of
// result texts (spec.md §4.G), mirroring the teacher's one-compile,
// many-search split between Index and Query.
type Builder struct {
	tokenizer Tokenizer
	words     *MatchingWords
	delim     Delimiters
}

// NewBuilder constructs a Builder from a pre-compiled matching-term table.
func NewBuilder(tokenizer Tokenizer, words *MatchingWords) *Builder {
	return &Builder{tokenizer: tokenizer, words: words, delim: DefaultDelimiters()}
}

// WithDelimiters overrides the highlight/crop markers used by Matchers this
// Builder subsequently produces.
func (b *Builder) WithDelimiters(delim Delimiters) *Builder {
	b.delim = delim
	return b
}

// BuildMatcher binds the compiled query to one result text. Tokenization and
// match-finding are deferred until the Matcher is actually asked to format,
// since a caller may only need FormatOptions{} (no work at all).
func (b *Builder) BuildMatcher(text string) *Matcher {
	return &Matcher{text: text, tokenizer: b.tokenizer, words: b.words, delim: b.delim}
}

// Matcher binds one result text to a compiled query. Its token and match
// slices are computed once, on first use, and reused across repeated
// Format calls with different FormatOptions.
type Matcher struct {
	text      string
	tokenizer Tokenizer
	words     *MatchingWords

	tokens     []Token
	tokensDone bool

	matches     []MatchSpan
	matchesDone bool

	delim Delimiters
}

// Tokens returns the text's token sequence, computing it on first call.
func (m *Matcher) Tokens() []Token {
	if !m.tokensDone {
		m.tokens = m.tokenizer.Tokenize(m.text)
		m.tokensDone = true
	}
	return m.tokens
}

// Matches returns the matching-term hits over Tokens, computing them on
// first call.
func (m *Matcher) Matches() []MatchSpan {
	if !m.matchesDone {
		m.matches = FindMatches(m.text, m.Tokens(), m.words)
		m.matchesDone = true
	}
	return m.matches
}

// GetMatchBounds resolves match bounds for opts without rendering them,
// spec.md §4.G's get_match_bounds counterpart to Format/get_formatted_text —
// useful to callers that want the highlight/crop byte ranges themselves
// (e.g. to drive their own markup) rather than this package's delimiters.
func (m *Matcher) GetMatchBounds(opts FormatOptions) MatchBounds {
	return ComputeMatchBounds(m.Tokens(), m.Matches(), opts)
}

// Format resolves match bounds for opts and renders the delimited result
// (spec.md §4.G's top-level entry point, gluing components D/E/F together).
func (m *Matcher) Format(opts FormatOptions) string {
	if !opts.Highlight && opts.Crop == nil {
		return m.text
	}

	bounds := ComputeMatchBounds(m.Tokens(), m.Matches(), opts)
	return Format(m.text, bounds, m.delim)
}
