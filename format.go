package highlight

import "strings"

// Delimiters configures the strings interleaved into the formatted output:
// a prefix/suffix pair around every highlighted span, and a marker inserted
// wherever the crop window cut off surrounding text (spec.md §4.F).
type Delimiters struct {
	HighlightPrefix string
	HighlightSuffix string
	CropMarker      string
}

// DefaultDelimiters matches spec.md §2's worked examples: <em>/</em> tags
// and an ellipsis crop marker.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		HighlightPrefix: "<em>",
		HighlightSuffix: "</em>",
		CropMarker:      "…",
	}
}

// Format renders text according to bounds, interleaving highlight
// delimiters and crop markers (spec.md §4.F's "get_formatted_text" loop,
// spelled out as an explicit alternation rather than iterator adaptors).
func Format(text string, bounds MatchBounds, delim Delimiters) string {
	if bounds.Full {
		return text
	}

	var b strings.Builder

	if bounds.CropStart {
		b.WriteString(delim.CropMarker)
	}

	highlighted := bounds.HighlightToggle
	prev := bounds.Indexes[0]

	for _, idx := range bounds.Indexes[1:] {
		segment := text[prev:idx]

		if highlighted {
			b.WriteString(delim.HighlightPrefix)
			b.WriteString(segment)
			b.WriteString(delim.HighlightSuffix)
		} else {
			b.WriteString(segment)
		}

		highlighted = !highlighted
		prev = idx
	}

	if bounds.CropEnd {
		b.WriteString(delim.CropMarker)
	}

	return b.String()
}
