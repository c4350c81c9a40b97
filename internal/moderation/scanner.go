package moderation

import (
	"bufio"
	"os"
	"strings"
)

// Scanner checks service text against a fixed forbidden-word list. The list
// is loaded once at startup and never mutated afterwards, so Scan is safe for
// concurrent use without locking.
type Scanner struct {
	words []string
}

// NewScanner builds a scanner from the built-in vocabulary plus, when
// wordsFile is non-empty, one extra word per line from that file.
func NewScanner(wordsFile string) (*Scanner, error) {
	words := make([]string, len(defaultWords))
	copy(words, defaultWords)

	if wordsFile != "" {
		f, err := os.Open(wordsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			w := strings.ToLower(strings.TrimSpace(sc.Text()))
			if w == "" || strings.HasPrefix(w, "#") {
				continue
			}
			words = append(words, w)
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	return &Scanner{words: words}, nil
}

// NewScannerFromWords is used by tests to pin the vocabulary.
func NewScannerFromWords(words []string) *Scanner {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		lowered = append(lowered, strings.ToLower(w))
	}
	return &Scanner{words: lowered}
}

// Scan case-folds the given fragments, joins them with a space and returns
// every forbidden word found as a substring, in list order.
func (s *Scanner) Scan(fragments ...string) []string {
	text := strings.ToLower(strings.Join(fragments, " "))

	var found []string
	for _, w := range s.words {
		if strings.Contains(text, w) {
			found = append(found, w)
		}
	}
	return found
}
