package flow

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinNameParts фамилия и имя
const MinNameParts = 2

// FormatName приводит каждое слово к виду "Иванов". false, если слов меньше двух.
func FormatName(input string) (string, bool) {
	parts := strings.Fields(input)
	if len(parts) < MinNameParts {
		return "", false
	}

	caser := cases.Title(language.Russian)
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, " "), true
}
