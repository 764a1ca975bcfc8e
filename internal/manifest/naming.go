package manifest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// segmentPattern matches one boundary character followed by a run of
// characters that are not boundary characters.
var segmentPattern = regexp.MustCompile(`[A-Z0-9_-][^A-Z0-9_-]+`)

// SplitSegments cuts ref into segments. Each match of segmentPattern is a segment,
// as is each non-empty stretch of text between matches. An uppercase run such as
// "ABC" in "ABCDef" therefore stays a single segment ("ABC", "Def").
func SplitSegments(ref string) []string {
	var segments []string
	last := 0
	for _, m := range segmentPattern.FindAllStringIndex(ref, -1) {
		if m[0] > last {
			segments = append(segments, ref[last:m[0]])
		}
		segments = append(segments, ref[m[0]:m[1]])
		last = m[1]
	}
	if last < len(ref) {
		segments = append(segments, ref[last:])
	}
	return segments
}

// NormalizeSegment drops '-' and '_' and uppercases the first character.
// The remaining characters keep their case.
func NormalizeSegment(segment string) string {
	stripped := strings.NewReplacer("-", "", "_", "").Replace(segment)
	r, size := utf8.DecodeRuneInString(stripped)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + stripped[size:]
}

// SplitReference separates the prefix token from the normalized base name.
// ok is false when ref has no segments at all.
func SplitReference(ref string) (prefix, baseName string, ok bool) {
	segments := SplitSegments(ref)
	if len(segments) == 0 {
		return "", "", false
	}

	var b strings.Builder
	for _, s := range segments[1:] {
		b.WriteString(NormalizeSegment(s))
	}
	return segments[0], b.String(), true
}
