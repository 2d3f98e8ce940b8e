// Package moderation provides optional banned-word censoring of message
// bodies. It is off unless the server is configured with a word list; the
// wire format of delivered messages is unchanged either way, only the body
// characters are replaced.
package moderation

import (
	"bufio"
	"os"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"chat-core/errors"
)

// Censor matches banned words with an Aho-Corasick automaton over a
// normalized view of the text (lowercased, leet-speak folded, punctuation
// and spacing stripped) and stars out the matching characters in the
// original message.
type Censor struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// LoadWords reads one banned word per line, ignoring blanks.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return words, nil
}

func New(words []string, replacement rune) (*Censor, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if folded, _ := fold([]rune(word)); len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{machine: machine, replacement: replacement}, nil
}

// Apply replaces every banned span in text and reports whether anything
// matched.
func (c *Censor) Apply(text string) (string, bool) {
	original := []rune(text)
	folded, origin := fold(original)
	if len(folded) == 0 {
		return text, false
	}

	terms := c.machine.MultiPatternSearch(folded, false)
	if len(terms) == 0 {
		return text, false
	}

	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(origin) {
			continue
		}
		// Star out everything between the first and last matched rune of
		// the original text, separators included.
		for i := origin[start]; i <= origin[end-1]; i++ {
			original[i] = c.replacement
		}
	}
	return string(original), true
}

// fold lowercases and de-leets the input, dropping punctuation, symbols and
// spaces. origin maps each folded rune back to its index in the input.
func fold(input []rune) (folded []rune, origin []int) {
	for i, r := range input {
		r = deleet(r)
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		origin = append(origin, i)
	}
	return folded, origin
}

// deleet maps common substitution characters back to their letter.
func deleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	default:
		return r
	}
}
