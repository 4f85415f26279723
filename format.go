package pdfcompare

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

// formatCount renders n with thousands separators, e.g. 12,345.
func formatCount(n int) string {
	return numbers.Sprintf("%d", n)
}

// maxNameWidth is the width of the file name column in the summary table.
const maxNameWidth = 50

// truncateName shortens names longer than maxNameWidth runes to
// maxNameWidth-3 runes followed by "...".
func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= maxNameWidth {
		return name
	}
	runes := []rune(name)
	return string(runes[:maxNameWidth-3]) + "..."
}

func rule(ch string, width int) string {
	return strings.Repeat(ch, width)
}
