package labels

import "strings"

const separator = ","

// Split parses expr into its canonical labels.
// Each comma separated piece is trimmed, then loses one leading '[' and one
// trailing ']' (trimming again after each). Pieces that end up empty are
// dropped. Order and duplicates are preserved.
func Split(expr string) []string {
	var out []string
	for piece := range strings.SplitSeq(expr, separator) {
		if label, ok := normalize(piece); ok {
			out = append(out, label)
		}
	}
	return out
}

// First returns the first canonical label of expr, or "" if there is none.
func First(expr string) string {
	for piece := range strings.SplitSeq(expr, separator) {
		if label, ok := normalize(piece); ok {
			return label
		}
	}
	return ""
}

// Equal reports whether two label expressions name the same label: either
// they are identical, or their first canonical labels match.
func Equal(a, b string) bool {
	return a == b || First(a) == First(b)
}

// normalize strips whitespace and one level of bracket decoration.
func normalize(piece string) (string, bool) {
	label := strings.TrimSpace(piece)
	if label == "" {
		return "", false
	}

	if rest, ok := strings.CutPrefix(label, "["); ok {
		label = strings.TrimSpace(rest)
		if label == "" {
			return "", false
		}
	}

	if rest, ok := strings.CutSuffix(label, "]"); ok {
		label = strings.TrimSpace(rest)
		if label == "" {
			return "", false
		}
	}

	return label, true
}
