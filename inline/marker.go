package inline

import "sort"

// marker is an opening or closing delimiter: a run of 1 or 2 `*` bytes
// starting at startByte in the buffer it was found in. Width-3 runs are
// always decomposed into a width-2 and a width-1 marker before either one
// becomes part of a markerEvent.
type marker struct {
	count     int
	startByte int
}

// markerEvent is a matched (opening, closing) pair; both markers always
// share the same count.
type markerEvent struct {
	opening marker
	closing marker
}

// matchMarkers scans clean byte by byte and partitions runs of `*` into
// opening/closing pairs using a stack-based policy: an exact-width opener
// on the stack closes a same-width run outright; otherwise the run is
// partitioned into 2-then-1 width atoms, preferring to match the top of
// the stack. Unmatched openers left on the stack at the end are discarded;
// their asterisks survive as literal bytes in the caller's output.
//
// The returned events are sorted by opening.startByte.
func matchMarkers(clean string) []markerEvent {
	var events []markerEvent
	var stack []marker

	i := 0
	for i < len(clean) {
		if clean[i] != '*' {
			i++
			continue
		}

		count := 1
		for i+count < len(clean) && clean[i+count] == '*' {
			count++
		}

		if pos := topIndexWithCount(stack, count); pos != -1 {
			opening := stack[pos]
			stack = append(stack[:pos], stack[pos+1:]...)
			events = append(events, markerEvent{opening: opening, closing: marker{count: count, startByte: i}})
			i += count
			continue
		}

		remaining := count
		j := i
		for remaining > 0 {
			thisCount := 2
			if len(stack) > 0 {
				pref := stack[len(stack)-1].count
				switch {
				case pref <= remaining:
					thisCount = pref
				case remaining >= 2:
					thisCount = 2
				default:
					thisCount = 1
				}
			} else if remaining < 2 {
				thisCount = 1
			}

			if pos := topIndexWithCount(stack, thisCount); pos != -1 {
				opening := stack[pos]
				stack = append(stack[:pos], stack[pos+1:]...)
				events = append(events, markerEvent{opening: opening, closing: marker{count: thisCount, startByte: j}})
			} else {
				stack = append(stack, marker{count: thisCount, startByte: j})
			}

			j += thisCount
			remaining -= thisCount
		}

		i += count
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].opening.startByte < events[b].opening.startByte
	})
	return events
}

// topIndexWithCount returns the index of the most recently pushed marker on
// stack with the given count, or -1 if none matches.
func topIndexWithCount(stack []marker, count int) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].count == count {
			return i
		}
	}
	return -1
}
