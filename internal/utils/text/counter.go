// Package text provides small text helpers shared by the text-generation backends.
package text

// CountRunes counts Unicode characters rather than bytes, so Portuguese
// accents and emoji in model output are counted once each.
//
//	CountRunes("Padaria")   // 7
//	CountRunes("Avaliação") // 9
func CountRunes(text string) int {
	return len([]rune(text))
}
