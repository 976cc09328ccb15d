package renderer

import (
	"strings"
	"unicode"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

type CharacterSet string

const (
	CharacterSetDigit        CharacterSet = "digit"
	CharacterSetLetter       CharacterSet = "letter"
	CharacterSetAlphanumeric CharacterSet = "alphanumeric"
	CharacterSetEmoji        CharacterSet = "emoji"
	CharacterSetMixed        CharacterSet = "mixed"
)

// GetCharacterSet classifies label, first match wins: digit, letter,
// alphanumeric, emoji, mixed.
func GetCharacterSet(label string) CharacterSet {
	if label == "" {
		return CharacterSetMixed
	}
	switch {
	case all(label, isASCIIDigit):
		return CharacterSetDigit
	case all(label, isASCIILetter):
		return CharacterSetLetter
	case all(label, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }):
		return CharacterSetAlphanumeric
	case isEmojiOnly(label):
		return CharacterSetEmoji
	}
	return CharacterSetMixed
}

func all(s string, f func(rune) bool) bool {
	for _, r := range s {
		if !f(r) {
			return false
		}
	}
	return true
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isEmojiOnly checks every grapheme cluster is a single emoji.
func isEmojiOnly(s string) bool {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if !gomoji.ContainsEmoji(cluster) || strings.TrimSpace(gomoji.RemoveEmojis(cluster)) != "" {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// graphemes splits s into user perceived characters.
func graphemes(s string) []string {
	var res []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		res = append(res, gr.Str())
	}
	return res
}
