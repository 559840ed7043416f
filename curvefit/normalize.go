package curvefit

import "strings"

// NormalizeClaim canonicalizes a caller-supplied complexity string
// into one of the fixed candidate classes: whitespace-agnostic,
// aliasing Θ/Ω to O, and unicode superscripts (n², n³) to the ASCII
// n^2/n^3 forms used throughout this codebase's BigO rendering.
// Returns false if the claim doesn't match any canonical class.
func NormalizeClaim(claim string) (Class, bool) {
	s := strings.Join(strings.Fields(claim), " ")
	s = strings.ReplaceAll(s, "Θ", "O")
	s = strings.ReplaceAll(s, "Ω", "O")
	s = strings.ReplaceAll(s, "θ", "O")
	s = strings.ReplaceAll(s, "n²", "n^2")
	s = strings.ReplaceAll(s, "n³", "n^3")
	s = strings.ReplaceAll(s, " ", "")

	for _, c := range candidateClasses {
		if canonicalKey(string(c)) == canonicalKey(s) {
			return c, true
		}
	}
	return "", false
}

func canonicalKey(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
