package wordcount

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of word characters. Apostrophes may appear inside a word but never
// at its start or end, so "don't" is one word and "'quoted'" is "quoted".
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_']*[\p{L}\p{N}_]|[\p{L}\p{N}_]`)

// Tokenize splits a line of text into lower-case words.
func Tokenize(line string) []string {
	words := wordPattern.FindAllString(line, -1)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return words
}
