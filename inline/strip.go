package inline

import (
	"sort"
	"unicode/utf8"

	"github.com/sanity-io/litter"

	"github.com/huydao/mdspan/span"
)

// markersGlobalMapping marks every byte occupied by an opening or closing
// marker in clean, and builds a many-to-one mapping from clean byte offsets
// to the offsets they will occupy once marker bytes are removed.
func markersGlobalMapping(clean string, events []markerEvent) (isMarker []bool, mapping []int) {
	isMarker = make([]bool, len(clean))
	for _, e := range events {
		for i := e.opening.startByte; i < e.opening.startByte+e.opening.count; i++ {
			isMarker[i] = true
		}
		for i := e.closing.startByte; i < e.closing.startByte+e.closing.count; i++ {
			isMarker[i] = true
		}
	}

	mapping = make([]int, len(clean)+1)
	out := 0
	for i := 0; i < len(clean); i++ {
		mapping[i] = out
		if !isMarker[i] {
			out++
		}
	}
	mapping[len(clean)] = out

	return isMarker, mapping
}

// stripMarkers copies every non-marker rune of clean into the final text,
// respecting UTF-8 boundaries. escapedAsterisk code points pass through
// unchanged.
func stripMarkers(clean string, isMarker []bool) string {
	var out []byte
	i := 0
	for i < len(clean) {
		if !isMarker[i] {
			_, size := utf8.DecodeRuneInString(clean[i:])
			out = append(out, clean[i:i+size]...)
			i += size
		} else {
			i++
		}
	}
	return string(out)
}

// adjustMarkerStartBytes rewrites every event's opening/closing startByte
// through mapping, which must have been built over the same clean buffer
// the events were matched against.
func adjustMarkerStartBytes(events []markerEvent, mapping []int) {
	for i := range events {
		o := events[i].opening.startByte
		if o < 0 || o >= len(mapping) {
			panic("inline: marker start byte out of range: " + litter.Sdump(events[i]))
		}
		events[i].opening.startByte = mapping[o]

		c := events[i].closing.startByte
		if c < 0 || c >= len(mapping) {
			panic("inline: marker start byte out of range: " + litter.Sdump(events[i]))
		}
		events[i].closing.startByte = mapping[c]
	}
}

// generateSpans produces the final flat, sorted span list: one styled span
// per event, plus Normal spans filling every gap between and around them.
// Nested events never rewind the cursor, so an outer Bold span and an inner
// Italic span both survive instead of the inner span reopening a Normal gap.
func generateSpans(events []markerEvent, finalText string) []span.Span {
	styled := make([]span.Span, 0, len(events))
	for _, e := range events {
		styled = append(styled, span.New(e.opening.startByte, e.closing.startByte, e.opening.count))
	}
	sort.SliceStable(styled, func(i, j int) bool { return styled[i].Start < styled[j].Start })

	all := make([]span.Span, 0, 2*len(styled)+1)
	cursor := 0
	for _, s := range styled {
		if cursor < s.Start {
			all = append(all, span.NormalSpan(cursor, s.Start))
		}
		all = append(all, s)
		if s.End > cursor {
			cursor = s.End
		}
	}
	if cursor < len(finalText) {
		all = append(all, span.NormalSpan(cursor, len(finalText)))
	}
	return all
}
