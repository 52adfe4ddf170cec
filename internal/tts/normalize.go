package tts

import (
	"sort"
	"strings"
)

// symbolWords maps mathematical and symbolic notation to pronounceable words.
// Applied longest-match-first so multi-character symbols ("<=", "gcd") are not
// shadowed by their single-character prefixes.
var symbolWords = map[string]string{
	"=":  " equals ",
	"+":  " plus ",
	"-":  " minus ",
	"−":  " minus ",
	"*":  " times ",
	"×":  " times ",
	"·":  " times ",
	"/":  " divided by ",
	"÷":  " divided by ",
	"^":  " to the power of ",
	"±":  " plus or minus ",
	"(":  " open parenthesis ",
	")":  " close parenthesis ",
	"[":  " open bracket ",
	"]":  " close bracket ",
	"{":  " open brace ",
	"}":  " close brace ",
	"<":  " less than ",
	">":  " greater than ",
	"≤":  " less than or equal to ",
	"≥":  " greater than or equal to ",
	"<=": " less than or equal to ",
	">=": " greater than or equal to ",
	"≠":  " not equal to ",
	"≈":  " approximately equal to ",
	"≡":  " congruent to ",
	"∝":  " proportional to ",
	"√":  " square root of ",
	"∑":  " sum of ",
	"∏":  " product of ",
	"∫":  " integral of ",
	"∞":  " infinity ",
	"∂":  " partial ",
	"∇":  " nabla ",
	"π":  " pi ",
	"θ":  " theta ",
	"λ":  " lambda ",
	"μ":  " mu ",
	"α":  " alpha ",
	"β":  " beta ",
	"γ":  " gamma ",
	"δ":  " delta ",
	"φ":  " phi ",
	"ϕ":  " phi ",
	"σ":  " sigma ",
	"ω":  " omega ",
	"ε":  " epsilon ",
	"η":  " eta ",
	"κ":  " kappa ",
	"ν":  " nu ",
	"ρ":  " rho ",
	"τ":  " tau ",
	"ξ":  " xi ",
	"ζ":  " zeta ",
	"ψ":  " psi ",
	"χ":  " chi ",
	"Ω":  " omega ",
	"Σ":  " sigma ",
	"Γ":  " gamma ",
	"Δ":  " delta ",
	"Φ":  " phi ",
	"Λ":  " lambda ",
	"Θ":  " theta ",
	"Ψ":  " psi ",
	"Π":  " pi ",
	"∈":  " element of ",
	"∉":  " not an element of ",
	"⊂":  " subset of ",
	"⊆":  " subset or equal to ",
	"⊄":  " not a subset of ",
	"⊇":  " superset or equal to ",
	"∪":  " union ",
	"∩":  " intersection ",
	"∧":  " and ",
	"∨":  " or ",
	"⇒":  " implies ",
	"→":  " implies ",
	"↔":  " if and only if ",
	"⇔":  " if and only if ",
	"|":  " divides ",
	"∣":  " divides ",
	"∤":  " does not divide ",
	"…":  " and so on ",
	"ℕ":  " natural numbers ",
	"ℤ":  " integers ",
	"ℚ":  " rational numbers ",
	"ℝ":  " real numbers ",
	"ℂ":  " complex numbers ",
	"_":  " sub ",

	"gcd": " greatest common divisor ",
	"deg": " degrees ",
	"mod": " modulo ",
}

var orderedSymbols = func() []string {
	keys := make([]string, 0, len(symbolWords))
	for k := range symbolWords {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// MathToWords expands mathematical notation into speakable words and
// collapses the resulting whitespace.
func MathToWords(text string) string {
	for _, sym := range orderedSymbols {
		text = strings.ReplaceAll(text, sym, symbolWords[sym])
	}
	return strings.Join(strings.Fields(text), " ")
}
