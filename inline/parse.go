// Package inline parses a single line of lightly marked-up text into a
// marker-stripped text buffer plus a flat, byte-indexed, possibly
// overlapping list of style spans.
//
// `*` is both an emphasis delimiter (*italic*, **bold**, ***bold
// italic***) and a legal literal; markers may be adjacent
// ("***bold***text**more**"), nested ("**outer *inner* outer**"), or
// malformed (an unmatched run, which survives as literal asterisks).
// Escapes `\*` and `\\` collapse to single code points without disturbing
// the byte indexing used by spans.
//
// Parse is a pure function: it does no I/O, never blocks, and owns all of
// its transient state, so many goroutines may call it concurrently over
// distinct input with no coordination.
package inline

import "github.com/huydao/mdspan/span"

// Parse converts one line of markdown-flavored text into its stripped text
// and style spans. Every input produces a valid result: there is no error
// return. An input containing the literal escapedAsterisk sentinel is
// accepted, but RestoreAsterisks can no longer distinguish that byte from
// one produced by escape processing.
func Parse(line string) (text string, spans []span.Span) {
	esc := preprocessEscapes(line)
	events := matchMarkers(esc.clean)

	isMarker, mapping := markersGlobalMapping(esc.clean, events)
	adjustMarkerStartBytes(events, mapping)

	final := stripMarkers(esc.clean, isMarker)
	spans = generateSpans(events, final)

	return final, spans
}
