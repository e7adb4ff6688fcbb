package query

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// is "listen" an anagram of "silent"
	anagramPair = regexp.MustCompile(`(?i)\bis\s+["']?(\p{L}+)["']?\s+an\s+anagram\s+of\s+["']?(\p{L}+)["']?`)

	// which of the following is an anagram of listen: enlist, google, inlets
	anagramChoice = regexp.MustCompile(`(?i)\banagrams?\s+of\s+["']?(\p{L}+)["']?\s*[:?]?\s*(.*)$`)
)

// answerAnagram handles the two supported question shapes. A yes/no
// question about a pair answers Yes or No; a multiple-choice question
// answers the candidates that are anagrams of the target.
func answerAnagram(in *input) string {
	if m := anagramPair.FindStringSubmatch(in.raw); m != nil {
		if IsAnagram(m[1], m[2]) {
			return "Yes"
		}
		return "No"
	}

	m := anagramChoice.FindStringSubmatch(in.raw)
	if m == nil {
		return AnagramConfusion
	}

	target := m[1]
	candidates := splitCandidates(m[2])
	if len(candidates) == 0 {
		return AnagramConfusion
	}

	var hits []string
	for _, c := range candidates {
		// A word is not an anagram of itself.
		if IsAnagram(target, c) && !strings.EqualFold(target, c) {
			hits = append(hits, c)
		}
	}
	if len(hits) == 0 {
		return "None of the words are anagrams of " + target + "."
	}
	return strings.Join(hits, ", ")
}

// splitCandidates splits a comma or "or" separated list of words.
func splitCandidates(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	var words []string
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool { return !unicode.IsLetter(r) })
		if w == "" || strings.EqualFold(w, "or") || strings.EqualFold(w, "and") {
			continue
		}
		words = append(words, w)
	}
	return words
}
