// Package snake converts member names to environment key conventions.
package snake

import (
	"strings"
	"unicode"
)

// Screaming converts a camelCase or PascalCase name to
// SCREAMING_SNAKE_CASE. Acronym runs stay together.
// Examples:
//   - "apiKey" → "API_KEY"
//   - "buildNumber" → "BUILD_NUMBER"
//   - "databaseURL" → "DATABASE_URL"
//   - "identifier" → "IDENTIFIER"
func Screaming(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
