package highlight

// MatchBounds is the output of boundary computation (spec.md §3/§4.E):
// either the verbatim text, or a partition of byte offsets over which
// emission alternates between plain and highlighted segments.
type MatchBounds struct {
	Full bool

	// Formatted fields, meaningful when Full is false.
	HighlightToggle bool
	Indexes         []int
	CropStart       bool
	CropEnd         bool
}

type matchByteRange struct {
	start, end int
}

func matchBytePositionRange(tokens []Token, m MatchSpan) matchByteRange {
	start := tokens[m.FirstTokenIdx].ByteStart
	return matchByteRange{start: start, end: start + m.ByteLen}
}

// extendFirst and extendLast peek at the match just outside [first, last]
// on their side; if that neighbor's byte range overlaps the crop boundary, it
// is pulled into the interval (the "scan one match past the interval"
// behavior spec.md §9 requires, adopted from the fully-expanded draft of
// the original match-bounds module). index is updated in place when the
// neighbor is pulled in.
func extendFirst(tokens []Token, matches []MatchSpan, index *int, cropByteStart int) matchByteRange {
	if *index == 0 {
		return matchBytePositionRange(tokens, matches[*index])
	}

	neighbor := matchBytePositionRange(tokens, matches[*index-1])
	if cropByteStart < neighbor.end {
		*index--
		return neighbor
	}
	return matchBytePositionRange(tokens, matches[*index])
}

func extendLast(tokens []Token, matches []MatchSpan, index *int, cropByteEnd int) matchByteRange {
	if *index == len(matches)-1 {
		return matchBytePositionRange(tokens, matches[*index])
	}

	neighbor := matchBytePositionRange(tokens, matches[*index+1])
	if neighbor.start < cropByteEnd {
		*index++
		return neighbor
	}
	return matchBytePositionRange(tokens, matches[*index])
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// buildMatchBounds assembles the ordered byte-offset list for the matches in
// [firstIdx, lastIdx], clamped to [cropByteStart, cropByteEnd] (spec.md
// §4.E's "Boundary list").
func buildMatchBounds(tokens []Token, matches []MatchSpan, firstIdx, lastIdx, cropByteStart, cropByteEnd int, isCropped bool) MatchBounds {
	firstRange := extendFirst(tokens, matches, &firstIdx, cropByteStart)
	firstStart := max(firstRange.start, cropByteStart)

	lastRange := firstRange
	if firstIdx != lastIdx {
		lastRange = extendLast(tokens, matches, &lastIdx, cropByteEnd)
	}
	lastEnd := min(lastRange.end, cropByteEnd)

	selectedLen := lastIdx - firstIdx + 1
	leadingPlain := cropByteStart != firstStart
	trailingPlain := cropByteEnd != lastEnd

	var indexes []int
	if leadingPlain {
		indexes = append(indexes, cropByteStart)
	}

	indexes = append(indexes, firstStart)

	if selectedLen > 1 {
		indexes = append(indexes, firstRange.end)
	}

	if selectedLen > 2 {
		for i := firstIdx + 1; i < lastIdx; i++ {
			r := matchBytePositionRange(tokens, matches[i])
			indexes = append(indexes, r.start, r.end)
		}
	}

	if selectedLen > 1 {
		indexes = append(indexes, lastRange.start)
	}

	indexes = append(indexes, lastEnd)

	if trailingPlain {
		indexes = append(indexes, cropByteEnd)
	}

	return MatchBounds{
		HighlightToggle: !leadingPlain,
		Indexes:         indexes,
		CropStart:       isCropped && cropByteStart != 0,
		CropEnd:         isCropped && cropByteEnd != tokens[len(tokens)-1].ByteEnd,
	}
}

// cropTokenIndexes expands outward from [firstTokenIdx, lastTokenIdx],
// counting words (not separator tokens), until cropSize words have been
// consumed or both ends hit the text boundary. Expansion is forward-first:
// the whole remaining word budget is satisfied from the forward side before
// any of it is spent backward, and only falls back to the backward side once
// the forward side runs out of room (spec.md §4.E's crop-byte derivation).
func cropTokenIndexes(tokens []Token, firstTokenIdx, lastTokenIdx, wordsInInterval, cropSize int) (indexBackward, indexForward int) {
	indexBackward = firstTokenIdx
	indexForward = lastTokenIdx
	remaining := cropSize - wordsInInterval

	for remaining > 0 && indexForward < len(tokens)-1 {
		indexForward++
		if !tokens[indexForward].IsSeparator {
			remaining--
		}
	}
	// Land on the separator just past the last consumed word rather than on
	// the word itself, so cropByteBounds's ByteStart of that separator is the
	// word's own end. Skipped when the budget ran out against the text
	// boundary instead (remaining > 0) or we're already sitting at it.
	if remaining <= 0 && indexForward < len(tokens)-1 && !tokens[indexForward].IsSeparator {
		indexForward++
	}

	for remaining > 0 && indexBackward > 0 {
		indexBackward--
		if !tokens[indexBackward].IsSeparator {
			remaining--
		}
	}
	if remaining <= 0 && indexBackward > 0 && !tokens[indexBackward].IsSeparator {
		indexBackward--
	}

	return indexBackward, indexForward
}

func cropByteBounds(tokens []Token, indexBackward, indexForward int) (cropByteStart, cropByteEnd int) {
	if indexBackward == 0 {
		cropByteStart = tokens[0].ByteStart
	} else {
		cropByteStart = tokens[indexBackward].ByteEnd
	}

	if indexForward == len(tokens)-1 {
		cropByteEnd = tokens[len(tokens)-1].ByteEnd
	} else {
		cropByteEnd = tokens[indexForward].ByteStart
	}

	return cropByteStart, cropByteEnd
}

// matchesAndCropBounds resolves the best match interval and its surrounding
// crop window in one step, since the crop window's width depends on the
// interval's own word count.
func matchesAndCropBounds(tokens []Token, matches []MatchSpan, cropSize int) (firstIdx, lastIdx, cropByteStart, cropByteEnd int) {
	interval := BestMatchInterval(matches, cropSize)
	firstIdx, lastIdx = interval[0], interval[1]

	first := matches[firstIdx]
	last := matches[lastIdx]
	wordsInInterval := last.LastWordIdx - first.FirstWordIdx + 1

	indexBackward, indexForward := cropTokenIndexes(tokens, first.FirstTokenIdx, last.LastTokenIdx, wordsInInterval, cropSize)
	cropByteStart, cropByteEnd = cropByteBounds(tokens, indexBackward, indexForward)

	return firstIdx, lastIdx, cropByteStart, cropByteEnd
}

// cropTokenIndexForward counts cropSize words forward from the very start of
// the text (no token is pre-counted, unlike cropTokenIndexes's two-sided
// expansion from an already-matched interval).
func cropTokenIndexForward(tokens []Token, cropSize int) int {
	indexForward := -1
	remaining := cropSize

	for remaining > 0 && indexForward < len(tokens)-1 {
		indexForward++
		if !tokens[indexForward].IsSeparator {
			remaining--
		}
	}
	if remaining <= 0 && indexForward < len(tokens)-1 && !tokens[indexForward].IsSeparator {
		indexForward++
	}

	return indexForward
}

// cropBoundsNoMatches handles §4.E's "No-match crop": no query term matched
// anything, but a crop budget was requested. Takes the leading cropSize
// words from the start of the text.
func cropBoundsNoMatches(tokens []Token, cropSize int) MatchBounds {
	indexForward := cropTokenIndexForward(tokens, cropSize)

	var cropByteEnd int
	if indexForward == len(tokens)-1 {
		cropByteEnd = tokens[len(tokens)-1].ByteEnd
	} else {
		cropByteEnd = tokens[indexForward].ByteStart
	}

	return MatchBounds{
		HighlightToggle: false,
		Indexes:         []int{0, cropByteEnd},
		CropEnd:         cropByteEnd != tokens[len(tokens)-1].ByteEnd,
	}
}

// ComputeMatchBounds implements the component E dispatch of spec.md §4.E/§7:
// crop with no matches, crop+highlight, crop without highlight, and
// highlight-only (no crop) each resolve to a distinct, explicit case.
func ComputeMatchBounds(tokens []Token, matches []MatchSpan, opts FormatOptions) MatchBounds {
	if len(tokens) == 0 {
		return MatchBounds{Full: true}
	}

	cropSize := opts.Crop
	if cropSize != nil && *cropSize == 0 {
		cropSize = nil
	}

	if cropSize != nil {
		if len(matches) == 0 {
			return cropBoundsNoMatches(tokens, *cropSize)
		}

		firstIdx, lastIdx, cropByteStart, cropByteEnd := matchesAndCropBounds(tokens, matches, *cropSize)

		if opts.Highlight {
			return buildMatchBounds(tokens, matches, firstIdx, lastIdx, cropByteStart, cropByteEnd, true)
		}

		lastByteEnd := tokens[len(tokens)-1].ByteEnd
		return MatchBounds{
			HighlightToggle: false,
			Indexes:         []int{cropByteStart, cropByteEnd},
			CropStart:       cropByteStart != 0,
			CropEnd:         cropByteEnd != lastByteEnd,
		}
	}

	if opts.Highlight && len(matches) > 0 {
		lastByteEnd := tokens[len(tokens)-1].ByteEnd
		return buildMatchBounds(tokens, matches, 0, len(matches)-1, 0, lastByteEnd, false)
	}

	return MatchBounds{Full: true}
}
