package smallstr

import "github.com/rivo/uniseg"

// Grapheme-cluster helpers for editor-style callers. A grapheme cluster is
// a user-perceived character and may span several runes (combining marks,
// emoji ZWJ sequences, regional indicators). These are read and trim
// conveniences over the byte view; they add no storage invariants.

// GraphemeCount returns the number of grapheme clusters in the content.
// O(Len).
func (s *String) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.String())
}

// Width returns the content's width in terminal cells, as a renderer would
// draw it on a monospace grid.
func (s *String) Width() int {
	return uniseg.StringWidth(s.String())
}

// PopGrapheme removes the last grapheme cluster and returns it. Unlike Pop
// it may remove several runes at once, so a combining sequence or emoji
// comes off whole. It returns false if the String is empty. O(Len): cluster
// boundaries can only be found by scanning forward.
func (s *String) PopGrapheme() (string, bool) {
	if s.n == 0 {
		return "", false
	}

	rest := s.String()
	state := -1
	start := 0
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if len(rest) == 0 {
			break
		}
		start += len(cluster)
	}
	s.n = start
	return cluster, true
}
