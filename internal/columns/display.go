package columns

import "strings"

// DisplayName converts a raw column name into its header label: underscores
// become spaces and each word is capitalized. Pure presentation; the raw
// name stays the lookup key everywhere else.
func DisplayName(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
