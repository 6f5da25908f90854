package highlight

import "sort"

// score is the lexicographic tuple compared to pick the best match
// interval: [uniqueness, distance, order]. Higher wins in every position;
// ties broken by whichever came first (strict > in the caller).
type score struct {
	uniqueness int
	distance   int
	order      int
}

// greaterThan reports whether s is strictly better than other.
func (s score) greaterThan(other score) bool {
	if s.uniqueness != other.uniqueness {
		return s.uniqueness > other.uniqueness
	}
	if s.distance != other.distance {
		return s.distance > other.distance
	}
	return s.order > other.order
}

// scoreInterval computes the score of matches[first:last+1] per spec.md
// §4.D: uniqueness is the sum of widths of distinct, merged query-position
// ranges; distance is the negative sum of capped inter-match word gaps
// (phrase-internal gaps always cost 1); order counts matches, with each
// phrase's internal gaps also contributing +1.
func scoreInterval(matches []MatchSpan) score {
	var s score
	s.order = len(matches)

	qps := make([]QueryPositionRange, 0, len(matches))

	for i, m := range matches {
		lastWordPos := m.LastWordIdx
		if m.Kind == MatchPhrase {
			gaps := m.LastWordIdx - m.FirstWordIdx
			s.order += gaps
			s.distance -= gaps
		}

		if i+1 < len(matches) {
			next := matches[i+1]
			gap := next.FirstWordIdx - lastWordPos
			if gap > 7 {
				gap = 7
			}
			s.distance -= gap
		}

		qps = append(qps, m.QPos)
	}

	// Sweep the query-position ranges in start order, merging overlaps.
	sort.Slice(qps, func(a, b int) bool { return qps[a].Start < qps[b].Start })

	var rangeStart, rangeEnd uint16
	haveRange := false

	for _, qp := range qps {
		if !haveRange {
			rangeStart, rangeEnd = qp.Start, qp.End
			haveRange = true
		} else if qp.Start > rangeEnd {
			s.uniqueness += int(rangeEnd-rangeStart) + 1
			rangeStart, rangeEnd = qp.Start, qp.End
		} else if qp.End > rangeEnd {
			rangeEnd = qp.End
		}
	}

	if haveRange {
		s.uniqueness += int(rangeEnd-rangeStart) + 1
	}

	return s
}

// BestMatchInterval chooses the contiguous [first, last] range of matches
// (indices into matches) maximizing scoreInterval under the constraint that
// the interval spans at most cropSize words (spec.md §4.D). Matches must
// already be sorted by token/word position (FindMatches's output order);
// each match's own QPos field carries its query position for scoreInterval's
// uniqueness tally, so the slice itself never needs reordering.
func BestMatchInterval(matches []MatchSpan, cropSize int) [2]int {
	if len(matches) == 0 {
		return [2]int{0, 0}
	}

	type candidate struct {
		first, last int
		sc          score
		has         bool
	}
	var best candidate

	save := func(first, last int) {
		sc := scoreInterval(matches[first : last+1])
		if !best.has || sc.greaterThan(best.sc) {
			best = candidate{first: first, last: last, sc: sc, has: true}
		}
	}

	left := 0
	leftFirstWord := matches[left].FirstWordIdx

	for r, next := range matches {
		nextLastWord := next.LastWordIdx

		if nextLastWord-leftFirstWord >= cropSize {
			if r != 0 {
				save(left, r-1)
			}

			for {
				if left == len(matches)-1 {
					break
				}
				left++
				leftFirstWord = matches[left].FirstWordIdx

				if leftFirstWord > nextLastWord || nextLastWord-leftFirstWord < cropSize {
					break
				}
			}
		}
	}

	last := len(matches) - 1
	if left != last || matches[left].WordCount() < cropSize {
		save(left, last)
	}

	if !best.has {
		return [2]int{0, 0}
	}
	return [2]int{best.first, best.last}
}
