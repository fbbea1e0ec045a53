// Package phrase assembles spoken announcement fragments.
package phrase

import (
	"fmt"
	"strings"
)

// Pluralize returns the plural form of word when n != 1. Words already
// ending in "s", "x", "z", "sh" or "ch" take "es"; a consonant followed
// by "y" becomes "ies"; everything else appends "s".
func Pluralize(word string, n int) string {
	if n == 1 || word == "" {
		return word
	}
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "sh"),
		strings.HasSuffix(lower, "ch"):
		return word + "es"
	case strings.HasSuffix(lower, "y") && len(word) >= 2 && !isVowel(rune(lower[len(lower)-2])):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// CountNoun renders a count plus its pluralized noun, e.g. "3 tiles".
func CountNoun(n int, word string) string {
	return fmt.Sprintf("%d %s", n, Pluralize(word, n))
}

// JoinClauses joins the non-empty parts with commas.
func JoinClauses(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
